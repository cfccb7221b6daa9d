package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *implStore {
	t.Helper()
	return &implStore{
		path: filepath.Join(t.TempDir(), "records.json"),
		now:  time.Now,
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	users := s.Load()
	if users == nil {
		t.Fatal("Load() returned nil map")
	}
	if len(users) != 0 {
		t.Errorf("Load() = %d users, want 0", len(users))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json {"},
		{"empty file", ""},
		{"wrong shape", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			if err := os.WriteFile(s.path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			users := s.Load()
			if len(users) != 0 {
				t.Errorf("Load() = %d users, want 0 for corrupt state", len(users))
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetOrCreateUser(42, "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AppendRecord(42, "audio/a.ogg", "raw text", "summary text"); err != nil {
		t.Fatal(err)
	}

	before, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}

	// A no-op load/save cycle must leave the file content-equivalent.
	if err := s.Save(s.Load()); err != nil {
		t.Fatal(err)
	}

	after, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Errorf("save(load()) changed file content:\nbefore: %s\nafter: %s", before, after)
	}
}

func TestGetOrCreateUser(t *testing.T) {
	s := newTestStore(t)

	u, err := s.GetOrCreateUser(7, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if u.Name != "bob" {
		t.Errorf("Name = %q, want %q", u.Name, "bob")
	}

	// Second call must not reset the user.
	if _, err := s.AppendRecord(7, "a.ogg", "raw", "sum"); err != nil {
		t.Fatal(err)
	}
	u, err = s.GetOrCreateUser(7, "other-name")
	if err != nil {
		t.Fatal(err)
	}
	if u.Name != "bob" {
		t.Errorf("Name = %q, want original %q", u.Name, "bob")
	}
	if len(u.Records) != 1 {
		t.Errorf("Records = %d, want 1", len(u.Records))
	}
}

func TestAppendRecordUniqueIDs(t *testing.T) {
	s := newTestStore(t)
	fixed := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	// Same clock instant for every append: ids must still be unique
	// and strictly increasing.
	var ids []int64
	for i := 0; i < 5; i++ {
		rec, err := s.AppendRecord(1, "a.ogg", "raw", "sum")
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, rec.ID)
	}

	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Errorf("ids not strictly increasing: %v", ids)
			break
		}
	}
	if ids[0] != fixed.Unix() {
		t.Errorf("first id = %d, want %d", ids[0], fixed.Unix())
	}
}

func TestAppendRecordScopedPerUser(t *testing.T) {
	s := newTestStore(t)
	fixed := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	r1, err := s.AppendRecord(1, "a.ogg", "raw", "sum")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := s.AppendRecord(2, "b.ogg", "raw", "sum")
	if err != nil {
		t.Fatal(err)
	}

	// Id uniqueness is per user; two users may share an id.
	if r1.ID != r2.ID {
		t.Errorf("ids %d and %d, want equal for independent users at same instant", r1.ID, r2.ID)
	}
}

func TestGetRecord(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.AppendRecord(1, "a.ogg", "raw", "sum")
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.GetRecord(1, rec.ID)
	if err != nil {
		t.Fatalf("GetRecord() error = %v", err)
	}
	if got.RawText != "raw" || got.SummaryText != "sum" {
		t.Errorf("GetRecord() = %+v", got)
	}

	_, err = s.GetRecord(1, rec.ID+999)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("GetRecord() error = %v, want ErrRecordNotFound", err)
	}

	_, err = s.GetRecord(99, rec.ID)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("GetRecord() for unknown user error = %v, want ErrRecordNotFound", err)
	}
}

func TestReplaceSummary(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.AppendRecord(1, "a.ogg", "raw", "old summary")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.ReplaceSummary(1, rec.ID, "new text"); err != nil {
		t.Fatalf("ReplaceSummary() error = %v", err)
	}

	got, err := s.GetRecord(1, rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.SummaryText != "new text" {
		t.Errorf("SummaryText = %q, want %q", got.SummaryText, "new text")
	}
	if got.RawText != "raw" {
		t.Errorf("RawText = %q, want unchanged", got.RawText)
	}

	// Overwrite is idempotent, never a merge.
	if err := s.ReplaceSummary(1, rec.ID, "new text"); err != nil {
		t.Fatal(err)
	}
	got, _ = s.GetRecord(1, rec.ID)
	if got.SummaryText != "new text" {
		t.Errorf("SummaryText after repeat = %q, want %q", got.SummaryText, "new text")
	}
}

func TestReplaceSummaryNotFound(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.AppendRecord(1, "a.ogg", "raw", "sum")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.ReplaceSummary(1, rec.ID+1, "x"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("ReplaceSummary() error = %v, want ErrRecordNotFound", err)
	}
	if err := s.ReplaceSummary(2, rec.ID, "x"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("ReplaceSummary() for unknown user error = %v, want ErrRecordNotFound", err)
	}

	// The failed replace must not have touched the stored record.
	got, err := s.GetRecord(1, rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.SummaryText != "sum" {
		t.Errorf("SummaryText = %q, want untouched %q", got.SummaryText, "sum")
	}
}

func TestRecentRecords(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		tick := base.Add(time.Duration(i) * time.Minute)
		s.now = func() time.Time { return tick }
		if _, err := s.AppendRecord(1, "a.ogg", "raw", "sum"); err != nil {
			t.Fatal(err)
		}
	}

	recent := s.RecentRecords(1, 10)
	if len(recent) != 10 {
		t.Fatalf("RecentRecords() = %d entries, want 10", len(recent))
	}

	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Errorf("records not in descending creation order at %d", i)
		}
	}

	// Newest record first.
	if !recent[0].CreatedAt.Equal(base.Add(14 * time.Minute)) {
		t.Errorf("first record CreatedAt = %v, want newest", recent[0].CreatedAt)
	}
}

func TestRecentRecordsEmpty(t *testing.T) {
	s := newTestStore(t)
	if got := s.RecentRecords(1, 10); len(got) != 0 {
		t.Errorf("RecentRecords() = %d entries, want 0", len(got))
	}
}
