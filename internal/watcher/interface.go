package watcher

import "context"

// Watcher monitors the inbound directory for dropped voice notes.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one inbound audio file.
type EventHandler func(ctx context.Context, filePath string) error
