package transcriber

import (
	"sync"

	"github.com/arkdev/voicenotes/internal/config"
	"github.com/arkdev/voicenotes/internal/logger"
	"github.com/arkdev/voicenotes/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger

	initOnce sync.Once
	initErr  error
}

// New creates a Transcriber driving the whisper.cpp binary. The binary and
// model are checked lazily on first use and the result is cached for the
// lifetime of the process.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
