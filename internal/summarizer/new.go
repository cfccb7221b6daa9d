package summarizer

import (
	"sync"

	"google.golang.org/genai"

	"github.com/arkdev/voicenotes/internal/logger"
)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger

	mu      sync.Mutex
	clients map[string]*genai.Client
}

// New creates a Summarizer that rotates through the supplied Gemini API
// keys on quota errors. Clients are constructed lazily, one per key, and
// cached for the lifetime of the process.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
		clients: make(map[string]*genai.Client),
	}
}
