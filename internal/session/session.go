package session

import (
	"errors"
	"time"
)

// Step tags the per-user conversation state.
type Step int

const (
	// StepIdle means no interaction is in flight.
	StepIdle Step = iota
	// StepAwaitingText means a record is selected and the next text
	// message replaces its summary.
	StepAwaitingText
)

// State is the explicit per-user state value: the current step plus the
// payload bound when a record was selected.
type State struct {
	Step     Step
	RecordID int64
	Summary  string
}

// Option is one selectable entry in a record listing.
type Option struct {
	RecordID  int64
	CreatedAt time.Time
	Label     string
}

// Selection is the context surfaced to the user after picking a record.
type Selection struct {
	RecordID   int64
	RawExcerpt string
	Summary    string
}

// Result is the outcome of a confirmed edit: the updated summary and the
// rendered document artifact.
type Result struct {
	RecordID     int64
	Summary      string
	DocumentPath string
}

// ErrNoRecords is returned when a listing is requested for a user with no
// records yet.
var ErrNoRecords = errors.New("no records")

// ErrNoSelection is returned when text is submitted with no record bound
// in the session.
var ErrNoSelection = errors.New("no record selected")
