package transcribe

import (
	"context"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// Transcriber converts an audio file into an ordered transcript.
type Transcriber interface {
	// Transcribe runs the speech-to-text engine on audioPath with the given
	// model selector and returns normalized, start-ordered segments.
	Transcribe(ctx context.Context, postID, audioPath, model string) (*reel.TranscriptResult, error)
}
