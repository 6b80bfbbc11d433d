package insights

import (
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
)

type implInsights struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// New creates an Insights that rotates through the supplied Gemini API keys.
// An empty key list disables summarization; docx export still works.
func New(apiKeys []string, model string, log logger.Logger) Insights {
	return &implInsights{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

func (s *implInsights) CanSummarize() bool {
	return len(s.apiKeys) > 0
}
