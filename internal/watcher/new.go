package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/arkdev/voicenotes/internal/logger"
)

// New creates a Watcher on inboundDir with concurrency control.
func New(inboundDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboundDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		inboundDir: inboundDir,
		handler:    handler,
		logger:     log,
		watcher:    watcher,
		semaphore:  make(chan struct{}, maxConcurrent),
	}, nil
}
