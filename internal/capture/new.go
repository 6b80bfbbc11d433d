package capture

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

type implLoop struct {
	postID      string
	interval    time.Duration
	maxDuration time.Duration
	ticks       int
	logger      logger.Logger
}

// New builds a capture loop. The interval must be positive and the duration
// non-zero; both are rejected here, before any tick is scheduled.
func New(postID string, interval, maxDuration time.Duration, log logger.Logger) (Loop, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: capture interval must be positive, got %s", reel.ErrConfiguration, interval)
	}
	if maxDuration <= 0 {
		return nil, fmt.Errorf("%w: capture duration must be positive, got %s", reel.ErrConfiguration, maxDuration)
	}

	// A duration shorter than one interval still yields a single frame.
	ticks := int(maxDuration / interval)
	if ticks == 0 {
		ticks = 1
	}

	return &implLoop{
		postID:      postID,
		interval:    interval,
		maxDuration: maxDuration,
		ticks:       ticks,
		logger:      log,
	}, nil
}
