package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// yt-dlp messages that mean the post will never yield a video, no matter how
// often we retry.
var noVideoMarkers = []string{
	"no video formats",
	"there is no video in this post",
	"no video could be found",
}

var permanentMarkers = []string{
	"unsupported url",
	"404",
	"not available",
	"private",
	"requested format is not available",
}

// Download runs yt-dlp with a per-post output template. Transient failures
// get up to the configured number of attempts with linear backoff; permanent
// ones fail immediately.
func (a *implAcquirer) Download(ctx context.Context, url, destDir, postID string) (string, error) {
	template := filepath.Join(destDir, postID+".%(ext)s")

	var lastErr error
	for attempt := 1; attempt <= a.attempts; attempt++ {
		if attempt > 1 {
			// Linear backoff: attempt n waits (n-1) * backoff.
			if !sleepWithContext(ctx, time.Duration(attempt-1)*a.backoff) {
				return "", fmt.Errorf("%w: download aborted", reel.ErrCancelled)
			}
			a.logger.Info(ctx, "[%s] download retry %d/%d", postID, attempt, a.attempts)
		}

		path, err := a.runYtDlp(ctx, url, template, destDir, postID)
		if err == nil {
			a.logger.Info(ctx, "[%s] video downloaded: %s", postID, path)
			return path, nil
		}

		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: download aborted: %v", reel.ErrCancelled, err)
		}

		msg := strings.ToLower(err.Error())
		for _, marker := range noVideoMarkers {
			if strings.Contains(msg, marker) {
				return "", fmt.Errorf("%w: %s", reel.ErrUnsupportedContent, url)
			}
		}
		for _, marker := range permanentMarkers {
			if strings.Contains(msg, marker) {
				return "", fmt.Errorf("%w: %v", reel.ErrDownload, err)
			}
		}

		a.logger.Warn(ctx, "[%s] download attempt %d failed: %v", postID, attempt, err)
		lastErr = err
	}

	return "", fmt.Errorf("%w: %d attempts exhausted: %v", reel.ErrDownload, a.attempts, lastErr)
}

func (a *implAcquirer) runYtDlp(ctx context.Context, url, template, destDir, postID string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, a.cfg.YtDlp.DownloadTimeout())
	defer cancel()

	args := []string{
		"--no-warnings",
		"--no-playlist",
		"-o", template,
		url,
	}
	if _, err := a.executor.Execute(runCtx, a.cfg.YtDlp.BinaryPath, args...); err != nil {
		return "", err
	}

	return locateDownload(destDir, postID)
}

// locateDownload finds the file yt-dlp produced; the extension is chosen by
// the extractor, not by us. A missing or zero-byte file is a download
// failure.
func locateDownload(destDir, postID string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(destDir, postID+".*"))
	if err != nil {
		return "", fmt.Errorf("glob output file: %w", err)
	}

	var path string
	for _, m := range matches {
		// yt-dlp leaves .part files behind on interrupted transfers.
		if strings.HasSuffix(m, ".part") {
			continue
		}
		path = m
		break
	}
	if path == "" {
		return "", fmt.Errorf("no output file for %s", postID)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat output file: %w", err)
	}
	if info.Size() == 0 {
		_ = os.Remove(path)
		return "", fmt.Errorf("zero-byte download: %s", path)
	}

	return path, nil
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
