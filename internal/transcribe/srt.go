package transcribe

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// 00:01:02,345 --> 00:01:04,000
var reSrtTiming = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})[,.](\d{3})`)

// parseSRT converts SRT subtitle content into segments. Blocks are separated
// by blank lines: an index line, a timing line, then one or more text lines
// which get joined by single spaces.
func parseSRT(content string) ([]reel.Segment, error) {
	var segments []reel.Segment

	blocks := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		// The index line is optional in practice; skip it when present.
		i := 0
		if _, err := strconv.Atoi(lines[0]); err == nil {
			i = 1
		}
		if i >= len(lines) {
			continue
		}

		m := reSrtTiming.FindStringSubmatch(lines[i])
		if m == nil {
			return nil, fmt.Errorf("malformed timing line: %q", lines[i])
		}

		start := srtTimestamp(m[1], m[2], m[3], m[4])
		end := srtTimestamp(m[5], m[6], m[7], m[8])
		text := strings.Join(lines[i+1:], " ")
		if text == "" {
			continue
		}

		segments = append(segments, reel.Segment{Start: start, End: end, Text: text})
	}

	return segments, nil
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// srtTimestamp builds a duration from pre-validated digit groups.
func srtTimestamp(h, m, s, ms string) time.Duration {
	hh, _ := strconv.Atoi(h)
	mm, _ := strconv.Atoi(m)
	ss, _ := strconv.Atoi(s)
	msec, _ := strconv.Atoi(ms)
	return time.Duration(hh)*time.Hour +
		time.Duration(mm)*time.Minute +
		time.Duration(ss)*time.Second +
		time.Duration(msec)*time.Millisecond
}
