package pipeline

import (
	"github.com/arkdev/voicenotes/internal/logger"
	"github.com/arkdev/voicenotes/internal/store"
	"github.com/arkdev/voicenotes/internal/summarizer"
	"github.com/arkdev/voicenotes/internal/transcriber"
)

type implPipeline struct {
	audioDir    string
	store       store.Store
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a Pipeline that stores raw audio under audioDir.
func New(audioDir string, st store.Store, tr transcriber.Transcriber, sm summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		audioDir:    audioDir,
		store:       st,
		transcriber: tr,
		summarizer:  sm,
		logger:      log,
	}
}
