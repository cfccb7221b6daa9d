package store

import "time"

type implStore struct {
	path string
	now  func() time.Time
}

// New creates a Store backed by the JSON file at path. The file does not
// need to exist; it is created on the first save.
func New(path string) Store {
	return &implStore{
		path: path,
		now:  time.Now,
	}
}
