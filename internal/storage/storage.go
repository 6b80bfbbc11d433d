package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// Layout owns the per-post output tree:
//
//	<base>/screenshots/<id>/<seq>.png
//	<base>/videos/<id>.<ext>
//	<base>/audio/<id>.mp3
//	<base>/transcripts/<id>.json|.txt|.docx|_summary.md
//
// Each stage writes only inside its own subdirectory.
type Layout struct {
	BaseDir string
}

// NewLayout creates a Layout rooted at baseDir.
func NewLayout(baseDir string) *Layout {
	return &Layout{BaseDir: baseDir}
}

func (l *Layout) ScreenshotDir(postID string) string {
	return filepath.Join(l.BaseDir, "screenshots", postID)
}

func (l *Layout) VideoDir() string {
	return filepath.Join(l.BaseDir, "videos")
}

func (l *Layout) AudioPath(postID string) string {
	return filepath.Join(l.BaseDir, "audio", postID+".mp3")
}

func (l *Layout) TranscriptJSONPath(postID string) string {
	return filepath.Join(l.BaseDir, "transcripts", postID+".json")
}

func (l *Layout) TranscriptTextPath(postID string) string {
	return filepath.Join(l.BaseDir, "transcripts", postID+".txt")
}

func (l *Layout) TranscriptDocxPath(postID string) string {
	return filepath.Join(l.BaseDir, "transcripts", postID+".docx")
}

func (l *Layout) SummaryPath(postID string) string {
	return filepath.Join(l.BaseDir, "transcripts", postID+"_summary.md")
}

// Bootstrap creates the full directory tree for a post before any stage
// runs. Failure here is fatal for the run.
func (l *Layout) Bootstrap(postID string) error {
	dirs := []string{
		l.ScreenshotDir(postID),
		l.VideoDir(),
		filepath.Join(l.BaseDir, "audio"),
		filepath.Join(l.BaseDir, "transcripts"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// SaveRun finalizes the run to disk: the structured record as JSON and the
// transcript full text as a newline-terminated plain file. Runs with partial
// or absent results still serialize.
func (l *Layout) SaveRun(run *reel.PipelineRun) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	if err := os.WriteFile(l.TranscriptJSONPath(run.PostID), data, 0644); err != nil {
		return fmt.Errorf("write run json: %w", err)
	}

	fullText := ""
	if run.Transcript != nil {
		fullText = run.Transcript.FullText
	}
	if err := os.WriteFile(l.TranscriptTextPath(run.PostID), []byte(fullText+"\n"), 0644); err != nil {
		return fmt.Errorf("write transcript text: %w", err)
	}

	return nil
}
