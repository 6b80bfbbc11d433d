package reel

import "errors"

// Sentinel errors for each failure mode of the pipeline. Stage code wraps
// them with fmt.Errorf("%w: ...") so callers can classify with errors.Is.
var (
	// ErrInvalidURL means no post identifier could be derived from the input
	// URL. Fatal: nothing runs without an identifier.
	ErrInvalidURL = errors.New("invalid post url")

	// ErrConfiguration means an invalid interval or duration. Fatal, raised
	// before any tick is scheduled.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrNavigation means the target page did not respond within the
	// navigation timeout.
	ErrNavigation = errors.New("navigation failed")

	// ErrCaptureTick marks a single failed screenshot tick. Non-fatal: the
	// capture loop skips the tick and continues.
	ErrCaptureTick = errors.New("capture tick failed")

	// ErrDownload means the video could not be downloaded (network failure,
	// unsupported URL, or a zero-byte result).
	ErrDownload = errors.New("video download failed")

	// ErrUnsupportedContent means the post exists but carries no video asset
	// (image-only post). Never retried.
	ErrUnsupportedContent = errors.New("post has no video content")

	// ErrExtraction means the downloaded video was unreadable or contained
	// no audio stream.
	ErrExtraction = errors.New("audio extraction failed")

	// ErrTranscription means the speech-to-text engine failed on the audio
	// file or its output could not be parsed.
	ErrTranscription = errors.New("transcription failed")

	// ErrCancelled records an in-flight stage aborted by the run-level
	// cancellation signal.
	ErrCancelled = errors.New("operation cancelled")
)
