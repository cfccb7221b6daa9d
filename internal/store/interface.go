package store

import "errors"

// ErrRecordNotFound is returned when a record id does not exist for a user.
var ErrRecordNotFound = errors.New("record not found")

// Store persists users and their voice records. Every operation re-reads
// the backing file before acting, so no call depends on in-memory state
// from a prior call. Single-writer process assumed.
type Store interface {
	Load() UserMap
	Save(users UserMap) error
	GetOrCreateUser(userID int64, name string) (*User, error)
	AppendRecord(userID int64, audioPath, rawText, summaryText string) (Record, error)
	ListRecords(userID int64) []Record
	RecentRecords(userID int64, limit int) []Record
	GetRecord(userID, recordID int64) (Record, error)
	ReplaceSummary(userID, recordID int64, newText string) error
}
