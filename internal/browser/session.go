package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// Caption containers observed on post pages, most specific first. The last
// entries are broad fallbacks.
const captionJS = `(() => {
	const selectors = [
		'div[data-visualcompletion="caption-text"]',
		'span[data-lexical-text="true"]',
		'div._a9zs',
		'div._a9zm',
		'article div._ae5q',
		'div.caption-container',
		'span.caption',
	];
	for (const selector of selectors) {
		const elements = document.querySelectorAll(selector);
		if (elements && elements.length > 0) {
			return Array.from(elements).map(el => el.textContent).join(' ');
		}
	}
	return '';
})()`

// Dismisses cookie banners and login prompts by clicking buttons with known
// labels. Returns how many were clicked; failures are irrelevant.
const dismissJS = `(() => {
	const labels = ['Accept', 'Accept All', 'Allow', 'Not Now', 'Continue', 'Close'];
	let clicked = 0;
	for (const btn of document.querySelectorAll('button, [role="button"]')) {
		const text = (btn.textContent || '').trim();
		if (labels.some(l => text === l)) {
			btn.click();
			clicked++;
		}
	}
	return clicked;
})()`

func (s *implSession) Navigate(ctx context.Context, url string) error {
	navCtx, cancel := context.WithTimeout(s.browserCtx, s.cfg.NavTimeout())
	defer cancel()

	err := chromedp.Run(navCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", reel.ErrNavigation, url, err)
	}

	s.dismissOverlays(navCtx)
	return nil
}

// dismissOverlays clicks away cookie/login dialogs. Best-effort: a post can
// be captured behind a banner, just less cleanly.
func (s *implSession) dismissOverlays(ctx context.Context) {
	var clicked int
	dctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := chromedp.Run(dctx, chromedp.Evaluate(dismissJS, &clicked)); err != nil {
		s.logger.Debug(ctx, "overlay dismissal skipped: %v", err)
		return
	}
	if clicked > 0 {
		s.logger.Debug(ctx, "dismissed %d overlay button(s)", clicked)
		// Give the page a moment to settle after the dialogs go away.
		_ = chromedp.Run(dctx, chromedp.Sleep(time.Second))
	}
}

func (s *implSession) Screenshot(ctx context.Context) ([]byte, error) {
	shotCtx, cancel := context.WithTimeout(s.browserCtx, 10*time.Second)
	defer cancel()

	var buf []byte
	if err := chromedp.Run(shotCtx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	return buf, nil
}

func (s *implSession) CaptionText(ctx context.Context) (string, error) {
	qCtx, cancel := context.WithTimeout(s.browserCtx, 10*time.Second)
	defer cancel()

	var text string
	if err := chromedp.Run(qCtx, chromedp.Evaluate(captionJS, &text)); err != nil {
		return "", fmt.Errorf("query caption text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (s *implSession) Alive(ctx context.Context) bool {
	if s.browserCtx.Err() != nil {
		return false
	}

	aliveCtx, cancel := context.WithTimeout(s.browserCtx, 5*time.Second)
	defer cancel()

	var state string
	err := chromedp.Run(aliveCtx, chromedp.Evaluate("document.readyState", &state))
	return err == nil && state != ""
}

func (s *implSession) Close() error {
	s.ctxCancel()
	s.allocCancel()
	return nil
}
