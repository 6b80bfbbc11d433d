package reel

import (
	"testing"
	"time"
)

func TestNewTranscriptResultFullText(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{
			name: "ordered segments",
			segments: []Segment{
				{Start: 0, End: time.Second, Text: "hello"},
				{Start: time.Second, End: 2 * time.Second, Text: "world"},
			},
			want: "hello world",
		},
		{
			name: "out of order segments are sorted by start",
			segments: []Segment{
				{Start: 3 * time.Second, Text: "last"},
				{Start: time.Second, Text: "first"},
				{Start: 2 * time.Second, Text: "middle"},
			},
			want: "first middle last",
		},
		{
			name: "whitespace is collapsed",
			segments: []Segment{
				{Start: 0, Text: "  hello\n\tthere  "},
				{Start: time.Second, Text: "again "},
			},
			want: "hello there again",
		},
		{
			name:     "empty sequence yields empty string",
			segments: nil,
			want:     "",
		},
		{
			name: "blank segment text is dropped",
			segments: []Segment{
				{Start: 0, Text: "   "},
				{Start: time.Second, Text: "kept"},
			},
			want: "kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTranscriptResult("ABC123", "base", tt.segments)
			if got.FullText != tt.want {
				t.Errorf("FullText = %q, want %q", got.FullText, tt.want)
			}
			for i := 1; i < len(got.Segments); i++ {
				if got.Segments[i].Start < got.Segments[i-1].Start {
					t.Errorf("segments not ordered by start at index %d", i)
				}
			}
		})
	}
}

func TestPipelineRunHasAnyResult(t *testing.T) {
	tests := []struct {
		name string
		run  PipelineRun
		want bool
	}{
		{"empty run", PipelineRun{}, false},
		{"caption only", PipelineRun{Caption: "scraped text"}, true},
		{"frames only", PipelineRun{Capture: &CaptureSession{Frames: []FrameRecord{{}}}}, true},
		{"empty capture session", PipelineRun{Capture: &CaptureSession{}}, false},
		{"video only", PipelineRun{Media: &MediaAsset{VideoPath: "videos/x.mp4"}}, true},
		{"transcript only", PipelineRun{Transcript: &TranscriptResult{FullText: "hi"}}, true},
		{"empty transcript", PipelineRun{Transcript: &TranscriptResult{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run.HasAnyResult(); got != tt.want {
				t.Errorf("HasAnyResult() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetStage(t *testing.T) {
	run := PipelineRun{}
	run.SetStage(StageCapture, StagePartial, "40 of 60 frames")

	got, ok := run.Stages[StageCapture]
	if !ok {
		t.Fatal("stage not recorded")
	}
	if got.Status != StagePartial || got.Reason != "40 of 60 frames" {
		t.Errorf("unexpected stage result: %+v", got)
	}
}
