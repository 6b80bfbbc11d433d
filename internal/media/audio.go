package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// ExtractAudio converts the video's audio track to a mono mp3 at the
// configured sample rate, the shape the transcription engine expects.
func (a *implAcquirer) ExtractAudio(ctx context.Context, videoPath, audioPath string) error {
	if _, err := os.Stat(videoPath); err != nil {
		return fmt.Errorf("%w: video unreadable: %v", reel.ErrExtraction, err)
	}

	a.logger.Info(ctx, "extracting audio: %s -> %s", filepath.Base(videoPath), filepath.Base(audioPath))

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", strconv.Itoa(a.cfg.FFmpeg.SampleRate),
		"-ac", "1",
		"-codec:a", "libmp3lame",
		"-q:a", "2",
		"-y",
		audioPath,
	}

	if _, err := a.executor.Execute(ctx, a.cfg.FFmpeg.BinaryPath, args...); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: extraction aborted: %v", reel.ErrCancelled, err)
		}
		// ffmpeg fails outright when the container has no audio stream.
		return fmt.Errorf("%w: %v", reel.ErrExtraction, err)
	}

	info, err := os.Stat(audioPath)
	if err != nil {
		return fmt.Errorf("%w: no audio output produced", reel.ErrExtraction)
	}
	if info.Size() == 0 {
		_ = os.Remove(audioPath)
		return fmt.Errorf("%w: empty audio output", reel.ErrExtraction)
	}

	return nil
}
