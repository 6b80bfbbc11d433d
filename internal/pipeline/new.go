package pipeline

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/browser"
	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/insights"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/internal/media"
	"github.com/nguyentantai21042004/reelscribe/internal/storage"
	"github.com/nguyentantai21042004/reelscribe/internal/transcribe"
)

// SessionFactory opens a fresh browser session. Injected so tests never
// launch a real browser.
type SessionFactory func(ctx context.Context) (browser.Session, error)

type implPipeline struct {
	cfg         *config.Config
	layout      *storage.Layout
	newSession  SessionFactory
	acquirer    media.Acquirer
	transcriber transcribe.Transcriber
	insights    insights.Insights
	logger      logger.Logger

	interval    time.Duration
	maxDuration time.Duration
}

// New wires the pipeline controller from its stage implementations.
func New(
	cfg *config.Config,
	layout *storage.Layout,
	newSession SessionFactory,
	acquirer media.Acquirer,
	transcriber transcribe.Transcriber,
	ins insights.Insights,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		layout:      layout,
		newSession:  newSession,
		acquirer:    acquirer,
		transcriber: transcriber,
		insights:    ins,
		logger:      log,
		interval:    cfg.Capture.Interval(),
		maxDuration: cfg.Capture.MaxDuration(),
	}
}
