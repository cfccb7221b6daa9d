package session

import (
	"sync"
	"time"

	"github.com/arkdev/voicenotes/internal/logger"
	"github.com/arkdev/voicenotes/internal/report"
	"github.com/arkdev/voicenotes/internal/store"
)

type implManager struct {
	store        store.Store
	emitter      report.Emitter
	documentsDir string
	logger       logger.Logger
	now          func() time.Time

	mu     sync.Mutex
	states map[int64]State
}

// New creates a Manager writing rendered documents under documentsDir.
func New(st store.Store, em report.Emitter, documentsDir string, log logger.Logger) Manager {
	return &implManager{
		store:        st,
		emitter:      em,
		documentsDir: documentsDir,
		logger:       log,
		now:          time.Now,
		states:       make(map[int64]State),
	}
}
