package capture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/browser"
	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// consecutiveDeadLimit is how many back-to-back unreachable checks end the
// loop early with the session marked degraded.
const consecutiveDeadLimit = 2

// Run executes the capture schedule. Ticks are scheduled against absolute
// boundaries (start + i*interval) so capture latency never accumulates into
// interval drift. A failed tick is logged and skipped; only a dead page or
// cancellation ends the loop before the schedule is exhausted.
func (l *implLoop) Run(ctx context.Context, sess browser.Session, dir string) *reel.CaptureSession {
	cs := &reel.CaptureSession{
		PostID:         l.postID,
		Interval:       l.interval,
		MaxDuration:    l.maxDuration,
		StartedAt:      time.Now().UTC(),
		ScheduledTicks: l.ticks,
	}

	l.logger.Info(ctx, "[%s] capture loop: %d ticks every %s", l.postID, l.ticks, l.interval)

	dead := 0
	for i := 0; i < l.ticks; i++ {
		boundary := cs.StartedAt.Add(time.Duration(i) * l.interval)
		if !sleepUntil(ctx, boundary) {
			l.logger.Warn(ctx, "[%s] capture cancelled after %d frame(s)", l.postID, len(cs.Frames))
			return cs
		}

		if !sess.Alive(ctx) {
			dead++
			l.logger.Warn(ctx, "[%s] page unreachable at tick %d (%d consecutive)", l.postID, i, dead)
			if dead >= consecutiveDeadLimit {
				cs.Degraded = true
				l.logger.Warn(ctx, "[%s] capture degraded: page unreachable", l.postID)
				return cs
			}
			continue
		}
		dead = 0

		img, err := sess.Screenshot(ctx)
		if err != nil {
			l.logger.Warn(ctx, "[%s] tick %d skipped: %v", l.postID,
				i, fmt.Errorf("%w: %v", reel.ErrCaptureTick, err))
			continue
		}

		seq := len(cs.Frames)
		path := filepath.Join(dir, fmt.Sprintf("%02d.png", seq))
		if err := os.WriteFile(path, img, 0644); err != nil {
			l.logger.Warn(ctx, "[%s] tick %d skipped: %v", l.postID,
				i, fmt.Errorf("%w: write frame: %v", reel.ErrCaptureTick, err))
			continue
		}

		cs.Frames = append(cs.Frames, reel.FrameRecord{
			Index:      seq,
			CapturedAt: time.Now().UTC(),
			Path:       path,
		})
		l.logger.Debug(ctx, "[%s] frame %02d captured", l.postID, seq)
	}

	l.logger.Info(ctx, "[%s] capture loop done: %d of %d frames", l.postID, len(cs.Frames), l.ticks)
	return cs
}

// sleepUntil blocks until the absolute boundary or cancellation. Reports
// false when ctx was cancelled.
func sleepUntil(ctx context.Context, boundary time.Time) bool {
	wait := time.Until(boundary)
	if wait <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
