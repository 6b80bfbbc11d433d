package capture

import (
	"context"

	"github.com/nguyentantai21042004/reelscribe/internal/browser"
	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// Loop drives fixed-interval screenshot acquisition for a bounded duration.
type Loop interface {
	// Run captures frames into dir until the schedule is exhausted, the page
	// becomes unreachable, or ctx is cancelled. It always returns the
	// session with whatever frames were captured; it never discards them.
	Run(ctx context.Context, sess browser.Session, dir string) *reel.CaptureSession
}
