package executor

import "context"

// Executor runs external binaries (yt-dlp, ffmpeg, whisper). Tests substitute
// a fake so no stage ever shells out during the suite.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
