package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// Model selectors accepted by the whisper engine, trading accuracy against
// latency. Any of them satisfies the same output contract.
var knownModels = map[string]bool{
	"tiny":   true,
	"base":   true,
	"small":  true,
	"medium": true,
	"large":  true,
}

// Transcribe runs whisper on the audio file, asking for SRT output next to
// the audio, then parses it into ordered segments. The intermediate SRT file
// is removed afterwards; the structured result is what gets persisted.
func (t *implTranscriber) Transcribe(ctx context.Context, postID, audioPath, model string) (*reel.TranscriptResult, error) {
	if !knownModels[model] {
		return nil, fmt.Errorf("%w: unknown model %q", reel.ErrTranscription, model)
	}

	modelPath := filepath.Join(t.cfg.Whisper.ModelDir, "ggml-"+model+".bin")
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "[%s] transcribing with model %s (%d threads)", postID, model, t.cfg.Whisper.Threads)

	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-osrt",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: transcription aborted: %v", reel.ErrCancelled, err)
		}
		return nil, fmt.Errorf("%w: %v", reel.ErrTranscription, err)
	}

	srtPath := outputPrefix + ".srt"
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return nil, fmt.Errorf("%w: engine produced no output: %v", reel.ErrTranscription, err)
	}
	defer func() {
		if err := os.Remove(srtPath); err != nil {
			t.logger.Warn(ctx, "[%s] failed to clean up %s: %v", postID, srtPath, err)
		}
	}()

	segments, err := parseSRT(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reel.ErrTranscription, err)
	}

	result := reel.NewTranscriptResult(postID, model, segments)
	t.logger.Info(ctx, "[%s] transcription done: %d segment(s)", postID, len(result.Segments))
	return result, nil
}
