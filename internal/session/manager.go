package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Listings show at most this many records.
	listLimit = 10

	labelExcerptLen = 30
	rawExcerptLen   = 100
)

// ListOptions renders the user's recent records as selectable options.
// Listing is a query, not a state transition.
func (m *implManager) ListOptions(userID int64) ([]Option, error) {
	records := m.store.RecentRecords(userID, listLimit)
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	options := make([]Option, 0, len(records))
	for _, rec := range records {
		options = append(options, Option{
			RecordID:  rec.ID,
			CreatedAt: rec.CreatedAt,
			Label:     fmt.Sprintf("%s - %s...", rec.CreatedAt.Format("02.01 15:04"), excerpt(rec.SummaryText, labelExcerptLen)),
		})
	}
	return options, nil
}

// Select binds the record to the session. A second selection by the same
// user overwrites any pending one.
func (m *implManager) Select(userID, recordID int64) (Selection, error) {
	rec, err := m.store.GetRecord(userID, recordID)
	if err != nil {
		m.Reset(userID)
		return Selection{}, err
	}

	m.mu.Lock()
	m.states[userID] = State{
		Step:     StepAwaitingText,
		RecordID: rec.ID,
		Summary:  rec.SummaryText,
	}
	m.mu.Unlock()

	return Selection{
		RecordID:   rec.ID,
		RawExcerpt: excerpt(rec.RawText, rawExcerptLen),
		Summary:    rec.SummaryText,
	}, nil
}

// SubmitText confirms the edit: replace the summary, render the document,
// return to idle. The session is cleared whether or not rendering succeeds.
func (m *implManager) SubmitText(ctx context.Context, userID int64, text string) (Result, error) {
	text = strings.TrimSpace(text)

	m.mu.Lock()
	st := m.states[userID]
	delete(m.states, userID)
	m.mu.Unlock()

	if st.Step != StepAwaitingText {
		return Result{}, ErrNoSelection
	}

	if err := m.store.ReplaceSummary(userID, st.RecordID, text); err != nil {
		return Result{}, err
	}
	m.logger.Info(ctx, "Summary of record %d replaced for user %d", st.RecordID, userID)

	if err := os.MkdirAll(m.documentsDir, 0755); err != nil {
		return Result{}, fmt.Errorf("create documents dir: %w", err)
	}

	docPath := filepath.Join(m.documentsDir, fmt.Sprintf("report_%d.docx", st.RecordID))
	if err := m.emitter.Render(ctx, text, m.now(), docPath); err != nil {
		return Result{}, fmt.Errorf("render document: %w", err)
	}
	m.logger.Info(ctx, "Document created: %s", docPath)

	return Result{
		RecordID:     st.RecordID,
		Summary:      text,
		DocumentPath: docPath,
	}, nil
}

// Cancel abandons the pending edit. Stored data is untouched.
func (m *implManager) Cancel(userID int64) {
	m.Reset(userID)
}

// Reset clears pending session context from any step.
func (m *implManager) Reset(userID int64) {
	m.mu.Lock()
	delete(m.states, userID)
	m.mu.Unlock()
}

// StateOf reports the current session state; users with no pending edit
// are idle.
func (m *implManager) StateOf(userID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[userID]
}

func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return text
}
