package store

import "time"

// Record is one captured voice note and its derived text.
// RawText is the transcription output and is never edited;
// SummaryText starts as the generated summary and may be
// replaced wholesale by the user.
type Record struct {
	ID          int64     `json:"id"`
	AudioPath   string    `json:"audio_path"`
	RawText     string    `json:"raw_text"`
	SummaryText string    `json:"summary_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// User holds a display name and the user's records in creation order.
type User struct {
	Name    string   `json:"username"`
	Records []Record `json:"records"`
}

// UserMap maps string user ids to users. Absence of an id means the
// user never interacted, not that they were deleted.
type UserMap map[string]*User

// document is the persisted top-level shape of the data file.
type document struct {
	Users UserMap `json:"users"`
}
