package insights

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

const summaryPrompt = `You are analyzing a short-form video post. Below are the spoken transcript and the post caption (either may be empty).

Write a concise markdown summary:
- One-line heading describing the topic
- Key points in the order they appear
- Keep quotes short; preserve technical terms verbatim
- End with a "Notes" section only if something needs emphasis

Caption:
---
%s
---

Transcript:
---
%s
---`

// Summarize sends the transcript to Gemini and writes the markdown result.
func (s *implInsights) Summarize(ctx context.Context, run *reel.PipelineRun, outputPath string) error {
	if !s.CanSummarize() {
		return fmt.Errorf("no API keys configured")
	}

	fullText := ""
	if run.Transcript != nil {
		fullText = run.Transcript.FullText
	}
	if fullText == "" && run.Caption == "" {
		return fmt.Errorf("nothing to summarize")
	}

	summary, err := s.callGemini(ctx, fmt.Sprintf(summaryPrompt, run.Caption, fullText))
	if err != nil {
		return err
	}

	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		run.PostID,
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(summary),
	)

	if err := os.WriteFile(outputPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	s.logger.Info(ctx, "[%s] summary written: %s", run.PostID, outputPath)
	return nil
}

// callGemini sends the prompt and returns the response text. Rotates API
// keys on 429 / quota errors.
func (s *implInsights) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "key %d rate limited, rotating", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			return text.String(), nil
		}

		return "", fmt.Errorf("empty response from model")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implInsights) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
