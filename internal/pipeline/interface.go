package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// Pipeline runs the full extraction for one post URL: concurrent screenshot
// capture and media acquisition, then transcription, then finalization.
type Pipeline interface {
	// Run returns an error only for the two fatal cases: an underivable
	// post identifier or a failed output bootstrap. Every other failure is
	// recorded on the returned PipelineRun, which is always serialized to
	// disk before Run returns.
	Run(ctx context.Context, url string) (*reel.PipelineRun, error)
}
