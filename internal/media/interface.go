package media

import "context"

// Acquirer resolves a post URL to a local video file and derives an audio
// file from it. The two operations are sequential dependent states: audio
// extraction only makes sense after a successful download.
type Acquirer interface {
	// Download fetches the post's video into destDir named <postID>.<ext>
	// and returns the resulting path. Transient network failures are retried
	// a bounded number of times with linear backoff; unsupported URLs and
	// image-only posts are not.
	Download(ctx context.Context, url, destDir, postID string) (string, error)

	// ExtractAudio derives a mono audio file at the configured sample rate
	// from videoPath, writing it to audioPath.
	ExtractAudio(ctx context.Context, videoPath, audioPath string) error
}
