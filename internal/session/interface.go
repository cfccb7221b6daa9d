package session

import "context"

// Manager drives the record-selection and summary-edit flow. All state is
// transient and per-user; every operation returns the session to a
// well-defined step. Safe for concurrent use across users.
type Manager interface {
	// ListOptions returns up to ten of the user's most recent records as
	// selectable options, newest first. ErrNoRecords when there are none.
	ListOptions(userID int64) ([]Option, error)

	// Select binds a record to the session and returns its editing
	// context. An unknown record id clears the session and returns
	// store.ErrRecordNotFound.
	Select(userID, recordID int64) (Selection, error)

	// SubmitText replaces the bound record's summary with the trimmed
	// text, renders the report document, and returns the session to idle.
	SubmitText(ctx context.Context, userID int64, text string) (Result, error)

	// Cancel abandons a pending edit without touching stored data.
	Cancel(userID int64)

	// Reset clears any pending state; used by the back-to-menu
	// navigation from any step.
	Reset(userID int64)

	// StateOf reports the user's current session state.
	StateOf(userID int64) State
}
