package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"

	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

type implSession struct {
	cfg         config.BrowserConfig
	logger      logger.Logger
	browserCtx  context.Context
	allocCancel context.CancelFunc
	ctxCancel   context.CancelFunc
}

// New launches a Chrome instance and returns a Session bound to a fresh tab.
// The flags mirror what short-form video sites tolerate: automation markers
// disabled, a desktop user agent, a fixed viewport.
func New(ctx context.Context, cfg config.BrowserConfig, log logger.Logger) (Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(cfg.ViewportWidth, cfg.ViewportHeight),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, ctxCancel := chromedp.NewContext(allocCtx)

	// Force the browser process to start now so launch failures surface here
	// instead of on the first capture tick.
	if err := chromedp.Run(browserCtx); err != nil {
		ctxCancel()
		allocCancel()
		return nil, fmt.Errorf("%w: launch browser: %v", reel.ErrNavigation, err)
	}

	return &implSession{
		cfg:         cfg,
		logger:      log,
		browserCtx:  browserCtx,
		allocCancel: allocCancel,
		ctxCancel:   ctxCancel,
	}, nil
}
