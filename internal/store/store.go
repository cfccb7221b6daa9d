package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Load reads the backing file and returns the full user map. A missing or
// unparsable file yields an empty map; corruption is treated as a fresh
// start, never surfaced as an error.
func (s *implStore) Load() UserMap {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return UserMap{}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return UserMap{}
	}
	if doc.Users == nil {
		return UserMap{}
	}
	return doc.Users
}

// Save rewrites the backing file wholesale with the given user map.
func (s *implStore) Save(users UserMap) error {
	if users == nil {
		users = UserMap{}
	}
	data, err := json.MarshalIndent(document{Users: users}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// GetOrCreateUser returns the user for userID, creating and persisting an
// empty one on first interaction.
func (s *implStore) GetOrCreateUser(userID int64, name string) (*User, error) {
	users := s.Load()
	key := userKey(userID)

	if u, ok := users[key]; ok {
		return u, nil
	}

	u := &User{Name: name, Records: []Record{}}
	users[key] = u
	if err := s.Save(users); err != nil {
		return nil, err
	}
	return u, nil
}

// AppendRecord creates a record for userID and persists it. The id is
// seeded from the creation timestamp and bumped past the user's current
// maximum, so ids stay unique even under rapid successive creation.
func (s *implStore) AppendRecord(userID int64, audioPath, rawText, summaryText string) (Record, error) {
	users := s.Load()
	key := userKey(userID)

	u, ok := users[key]
	if !ok {
		u = &User{Records: []Record{}}
		users[key] = u
	}

	createdAt := s.now()
	id := createdAt.Unix()
	for _, r := range u.Records {
		if r.ID >= id {
			id = r.ID + 1
		}
	}

	rec := Record{
		ID:          id,
		AudioPath:   audioPath,
		RawText:     rawText,
		SummaryText: summaryText,
		CreatedAt:   createdAt,
	}
	u.Records = append(u.Records, rec)

	if err := s.Save(users); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ListRecords returns the user's records in creation order. Unknown users
// get an empty list.
func (s *implStore) ListRecords(userID int64) []Record {
	users := s.Load()
	u, ok := users[userKey(userID)]
	if !ok {
		return nil
	}
	return u.Records
}

// RecentRecords returns up to limit records ordered by descending creation
// time. The sort is stable, so records sharing a creation instant keep a
// consistent order within one call.
func (s *implStore) RecentRecords(userID int64, limit int) []Record {
	records := s.ListRecords(userID)

	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// GetRecord looks up a record by id. Returns ErrRecordNotFound when the
// user or the id is unknown.
func (s *implStore) GetRecord(userID, recordID int64) (Record, error) {
	for _, r := range s.ListRecords(userID) {
		if r.ID == recordID {
			return r, nil
		}
	}
	return Record{}, ErrRecordNotFound
}

// ReplaceSummary overwrites the summary text of one record. The new text
// fully replaces the old value.
func (s *implStore) ReplaceSummary(userID, recordID int64, newText string) error {
	users := s.Load()
	u, ok := users[userKey(userID)]
	if !ok {
		return ErrRecordNotFound
	}

	for i := range u.Records {
		if u.Records[i].ID == recordID {
			u.Records[i].SummaryText = newText
			return s.Save(users)
		}
	}
	return ErrRecordNotFound
}

func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
