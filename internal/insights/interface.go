package insights

import (
	"context"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// Insights produces the optional post-transcription artifacts: a docx export
// of the transcript and an LLM-generated summary. Neither affects the
// pipeline's exit status.
type Insights interface {
	// ExportDocx writes the transcript (and scraped caption, when present)
	// as a styled document.
	ExportDocx(run *reel.PipelineRun, outputPath string) error

	// Summarize asks the model for a markdown summary of the transcript and
	// writes it to outputPath. Requires CanSummarize.
	Summarize(ctx context.Context, run *reel.PipelineRun, outputPath string) error

	// CanSummarize reports whether any API key is configured.
	CanSummarize() bool
}
