package reel

import (
	"sort"
	"strings"
	"time"
)

// FrameRecord is one screenshot captured during the capture loop. Never
// mutated after creation; Index ordering is chronological.
type FrameRecord struct {
	Index      int       `json:"index"`
	CapturedAt time.Time `json:"captured_at"`
	Path       string    `json:"path"`
}

// CaptureSession is the outcome of one screenshot capture loop. Owned
// exclusively by the loop until it returns.
type CaptureSession struct {
	PostID         string        `json:"post_id"`
	Interval       time.Duration `json:"interval_ns"`
	MaxDuration    time.Duration `json:"max_duration_ns"`
	StartedAt      time.Time     `json:"started_at"`
	ScheduledTicks int           `json:"scheduled_ticks"`
	Frames         []FrameRecord `json:"frames"`
	// Degraded is set when the loop exited early because the page became
	// unreachable twice in a row.
	Degraded bool `json:"degraded"`
}

// MediaAsset tracks the downloaded video and the audio derived from it.
// AudioPath stays empty until extraction succeeds; it is never set without a
// prior successful download.
type MediaAsset struct {
	PostID    string `json:"post_id"`
	VideoPath string `json:"video_path"`
	AudioPath string `json:"audio_path,omitempty"`
}

// Segment is one timestamped span of transcribed speech.
type Segment struct {
	Start time.Duration `json:"start_ns"`
	End   time.Duration `json:"end_ns"`
	Text  string        `json:"text"`
}

// TranscriptResult is the normalized speech-to-text output. Immutable once
// produced.
type TranscriptResult struct {
	PostID   string    `json:"post_id"`
	Segments []Segment `json:"segments"`
	FullText string    `json:"full_text"`
	Model    string    `json:"model"`
}

// NewTranscriptResult orders segments by start time and derives FullText as
// the space-joined concatenation of segment texts, with each segment's
// original whitespace collapsed to single spaces.
func NewTranscriptResult(postID, model string, segments []Segment) *TranscriptResult {
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})

	var texts []string
	for _, s := range segments {
		if t := strings.Join(strings.Fields(s.Text), " "); t != "" {
			texts = append(texts, t)
		}
	}

	return &TranscriptResult{
		PostID:   postID,
		Segments: segments,
		FullText: strings.Join(texts, " "),
		Model:    model,
	}
}

// Stage names used as keys in PipelineRun.Stages.
const (
	StageCapture       = "capture"
	StageAcquisition   = "acquisition"
	StageTranscription = "transcription"
	StageInsights      = "insights"
)

// StageStatus tags the outcome of one pipeline stage.
type StageStatus string

const (
	StageOK      StageStatus = "ok"
	StagePartial StageStatus = "partial"
	StageFailed  StageStatus = "failed"
	StageSkipped StageStatus = "skipped"
)

// StageResult is the uniform per-stage record the controller merges. Reason
// carries the failure or skip explanation, empty on full success.
type StageResult struct {
	Status StageStatus `json:"status"`
	Reason string      `json:"reason,omitempty"`
}

// PipelineRun aggregates the results of one invocation. Every field except
// RunID, PostID and URL is optional: partial stage failures still produce a
// valid, serializable run.
type PipelineRun struct {
	RunID       string                 `json:"run_id"`
	PostID      string                 `json:"post_id"`
	URL         string                 `json:"url"`
	StartedAt   time.Time              `json:"started_at"`
	CompletedAt time.Time              `json:"completed_at"`
	Caption     string                 `json:"caption,omitempty"`
	Capture     *CaptureSession        `json:"capture,omitempty"`
	Media       *MediaAsset            `json:"media,omitempty"`
	Transcript  *TranscriptResult      `json:"transcript,omitempty"`
	Stages      map[string]StageResult `json:"stages"`
}

// SetStage records the outcome of a stage.
func (r *PipelineRun) SetStage(name string, status StageStatus, reason string) {
	if r.Stages == nil {
		r.Stages = make(map[string]StageResult)
	}
	r.Stages[name] = StageResult{Status: status, Reason: reason}
}

// HasAnyResult reports whether at least one stage produced a non-empty
// artifact. Drives the process exit status.
func (r *PipelineRun) HasAnyResult() bool {
	if r.Caption != "" {
		return true
	}
	if r.Capture != nil && len(r.Capture.Frames) > 0 {
		return true
	}
	if r.Media != nil && r.Media.VideoPath != "" {
		return true
	}
	if r.Transcript != nil && r.Transcript.FullText != "" {
		return true
	}
	return false
}
