package media

import (
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/pkg/executor"
)

type implAcquirer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
	attempts int
	backoff  time.Duration
}

// New creates an Acquirer backed by the configured yt-dlp and ffmpeg
// binaries.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Acquirer {
	return &implAcquirer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
		attempts: cfg.YtDlp.Attempts,
		backoff:  cfg.YtDlp.RetryBackoff(),
	}
}
