package transcribe

import (
	"testing"
	"time"
)

func TestParseSRT(t *testing.T) {
	content := `1
00:00:00,000 --> 00:00:02,500
Hello there

2
00:00:02,500 --> 00:00:05,000
this spans
two lines

3
00:00:05,000 --> 00:00:06,200
goodbye
`

	segments, err := parseSRT(content)
	if err != nil {
		t.Fatalf("parseSRT() error = %v", err)
	}
	if len(segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(segments))
	}

	if segments[0].Start != 0 || segments[0].End != 2500*time.Millisecond {
		t.Errorf("segment 0 timing = %v -> %v", segments[0].Start, segments[0].End)
	}
	if segments[1].Text != "this spans two lines" {
		t.Errorf("multi-line text = %q", segments[1].Text)
	}
	if segments[2].Start != 5*time.Second {
		t.Errorf("segment 2 start = %v, want 5s", segments[2].Start)
	}
}

func TestParseSRTWithoutIndexLines(t *testing.T) {
	content := `00:00:00,000 --> 00:00:01,000
first

00:00:01,000 --> 00:00:02,000
second
`

	segments, err := parseSRT(content)
	if err != nil {
		t.Fatalf("parseSRT() error = %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(segments))
	}
	if segments[0].Text != "first" || segments[1].Text != "second" {
		t.Errorf("unexpected texts: %q, %q", segments[0].Text, segments[1].Text)
	}
}

func TestParseSRTHourTimestamps(t *testing.T) {
	content := `1
01:02:03,450 --> 01:02:04,000
long recording
`

	segments, err := parseSRT(content)
	if err != nil {
		t.Fatalf("parseSRT() error = %v", err)
	}
	want := time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond
	if segments[0].Start != want {
		t.Errorf("start = %v, want %v", segments[0].Start, want)
	}
}

func TestParseSRTMalformedTiming(t *testing.T) {
	content := `1
not a timing line
some text
`

	if _, err := parseSRT(content); err == nil {
		t.Error("parseSRT() should reject malformed timing lines")
	}
}

func TestParseSRTEmpty(t *testing.T) {
	segments, err := parseSRT("")
	if err != nil {
		t.Fatalf("parseSRT() error = %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("segments = %d, want 0", len(segments))
	}
}

func TestParseSRTSkipsTextlessBlocks(t *testing.T) {
	content := `1
00:00:00,000 --> 00:00:01,000

2
00:00:01,000 --> 00:00:02,000
kept
`

	segments, err := parseSRT(content)
	if err != nil {
		t.Fatalf("parseSRT() error = %v", err)
	}
	if len(segments) != 1 || segments[0].Text != "kept" {
		t.Errorf("unexpected segments: %+v", segments)
	}
}
