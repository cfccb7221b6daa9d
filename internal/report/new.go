package report

import (
	"github.com/arkdev/voicenotes/internal/logger"
)

type implEmitter struct {
	templatePath string
	logger       logger.Logger
}

// New creates an Emitter reading its text skeleton from templatePath.
func New(templatePath string, log logger.Logger) Emitter {
	return &implEmitter{
		templatePath: templatePath,
		logger:       log,
	}
}
