package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// fakeSession implements browser.Session for loop tests. Behavior per tick is
// controlled through the hook functions.
type fakeSession struct {
	shots     int
	aliveFn   func(tick int) bool
	shotErrFn func(tick int) error
	onShot    func(tick int)
}

func (f *fakeSession) Navigate(ctx context.Context, url string) error { return nil }

func (f *fakeSession) Screenshot(ctx context.Context) ([]byte, error) {
	tick := f.shots
	f.shots++
	if f.onShot != nil {
		f.onShot(tick)
	}
	if f.shotErrFn != nil {
		if err := f.shotErrFn(tick); err != nil {
			return nil, err
		}
	}
	return []byte(fmt.Sprintf("png-%d", tick)), nil
}

func (f *fakeSession) CaptionText(ctx context.Context) (string, error) { return "", nil }

func (f *fakeSession) Alive(ctx context.Context) bool {
	if f.aliveFn != nil {
		return f.aliveFn(f.shots)
	}
	return true
}

func (f *fakeSession) Close() error { return nil }

func newTestLoop(t *testing.T, interval, maxDuration time.Duration) Loop {
	t.Helper()
	l, err := New("ABC123", interval, maxDuration, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l
}

func TestNewRejectsInvalidInterval(t *testing.T) {
	tests := []struct {
		name        string
		interval    time.Duration
		maxDuration time.Duration
	}{
		{"zero interval", 0, time.Minute},
		{"negative interval", -time.Second, time.Minute},
		{"zero duration", time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("ABC123", tt.interval, tt.maxDuration, logger.New("error"))
			if !errors.Is(err, reel.ErrConfiguration) {
				t.Errorf("New() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestRunCapturesScheduledFrameCount(t *testing.T) {
	dir := t.TempDir()
	loop := newTestLoop(t, 10*time.Millisecond, 50*time.Millisecond)

	cs := loop.Run(context.Background(), &fakeSession{}, dir)

	if cs.ScheduledTicks != 5 {
		t.Fatalf("ScheduledTicks = %d, want 5", cs.ScheduledTicks)
	}
	if len(cs.Frames) != 5 {
		t.Fatalf("frames = %d, want 5", len(cs.Frames))
	}
	if cs.Degraded {
		t.Error("healthy session should not be degraded")
	}

	for i, fr := range cs.Frames {
		if fr.Index != i {
			t.Errorf("frame %d has index %d", i, fr.Index)
		}
		want := filepath.Join(dir, fmt.Sprintf("%02d.png", i))
		if fr.Path != want {
			t.Errorf("frame path = %s, want %s", fr.Path, want)
		}
		if _, err := os.Stat(fr.Path); err != nil {
			t.Errorf("frame file missing: %v", err)
		}
		if i > 0 && fr.CapturedAt.Before(cs.Frames[i-1].CapturedAt) {
			t.Errorf("frame %d captured before frame %d", i, i-1)
		}
	}
}

func TestRunSingleFrameWhenDurationBelowInterval(t *testing.T) {
	loop := newTestLoop(t, 20*time.Millisecond, 10*time.Millisecond)

	cs := loop.Run(context.Background(), &fakeSession{}, t.TempDir())

	if len(cs.Frames) != 1 {
		t.Errorf("frames = %d, want 1", len(cs.Frames))
	}
}

func TestRunSkipsFailedTickAndContinues(t *testing.T) {
	sess := &fakeSession{
		shotErrFn: func(tick int) error {
			if tick == 1 {
				return errors.New("screenshot blew up")
			}
			return nil
		},
	}
	dir := t.TempDir()
	loop := newTestLoop(t, 10*time.Millisecond, 40*time.Millisecond)

	cs := loop.Run(context.Background(), sess, dir)

	if len(cs.Frames) != 3 {
		t.Fatalf("frames = %d, want 3 (one tick skipped)", len(cs.Frames))
	}
	// File names stay contiguous regardless of skipped ticks.
	for i, fr := range cs.Frames {
		if fr.Index != i {
			t.Errorf("frame %d has index %d", i, fr.Index)
		}
	}
	if cs.Degraded {
		t.Error("a skipped tick must not degrade the session")
	}
}

func TestRunDegradesAfterTwoConsecutiveDeadChecks(t *testing.T) {
	dead := 0
	sess := &fakeSession{
		aliveFn: func(shots int) bool {
			if shots >= 2 {
				dead++
				return false
			}
			return true
		},
	}
	loop := newTestLoop(t, 10*time.Millisecond, 100*time.Millisecond)

	cs := loop.Run(context.Background(), sess, t.TempDir())

	if !cs.Degraded {
		t.Fatal("session should be degraded")
	}
	if len(cs.Frames) != 2 {
		t.Errorf("frames = %d, want 2 captured before degradation", len(cs.Frames))
	}
	if dead != 2 {
		t.Errorf("dead checks = %d, want exactly 2 before exit", dead)
	}
}

func TestRunCancellationPreservesCapturedFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sess := &fakeSession{
		onShot: func(tick int) {
			if tick == 2 {
				cancel()
			}
		},
	}
	loop := newTestLoop(t, 10*time.Millisecond, 200*time.Millisecond)

	cs := loop.Run(ctx, sess, t.TempDir())

	if len(cs.Frames) != 3 {
		t.Fatalf("frames = %d, want 3 (captured before cancellation)", len(cs.Frames))
	}
	for _, fr := range cs.Frames {
		if _, err := os.Stat(fr.Path); err != nil {
			t.Errorf("cancelled run discarded frame %02d: %v", fr.Index, err)
		}
	}
	if sess.shots > 3 {
		t.Errorf("screenshots after cancellation: %d total shots", sess.shots)
	}
}
