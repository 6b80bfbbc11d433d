package browser

import "context"

// Session is the narrow capability set the pipeline needs from a rendered
// page: navigate, query caption text, take a viewport screenshot. The capture
// loop owns the session for the run's duration and must Close it on exit.
type Session interface {
	// Navigate loads the post URL, waiting up to the configured timeout for
	// the document to become ready. Cookie banners and login prompts are
	// dismissed best-effort after load.
	Navigate(ctx context.Context, url string) error

	// Screenshot captures the current viewport as PNG bytes.
	Screenshot(ctx context.Context) ([]byte, error)

	// CaptionText returns any caption text scraped from the post DOM, or ""
	// when none of the known caption containers are present.
	CaptionText(ctx context.Context) (string, error)

	// Alive reports whether the page still responds to script evaluation.
	Alive(ctx context.Context) bool

	// Close tears down the page and the browser process behind it.
	Close() error
}
