package data

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gookit/validate"

	"studylog/internal/models"
)

// ImportResult reports what an import did. Skipped records carry a
// reason each; skipping is the policy, not an error.
type ImportResult struct {
	Added   int
	Skipped []SkippedRecord
}

// SkippedRecord identifies an import record that was not applied.
type SkippedRecord struct {
	Index  int
	Title  string
	Reason string
}

// importRecord is the loosely-typed shape accepted from import files.
// Minutes stays raw so numeric strings and floats coerce instead of
// failing the whole record.
type importRecord struct {
	ID        string          `json:"id"`
	Title     string          `json:"title" validate:"required" message:"required:missing title"`
	Minutes   json.RawMessage `json:"minutes"`
	Date      string          `json:"date" validate:"required" message:"required:missing date"`
	Tags      []string        `json:"tags"`
	Notes     string          `json:"notes"`
	CreatedAt int64           `json:"createdAt"`
	UpdatedAt int64           `json:"updatedAt"`
}

// ExportSessions writes the full session collection to path as a
// pretty-printed JSON array and returns how many sessions it wrote.
func (t *Tracker) ExportSessions(path string) (int, error) {
	sessions := t.Sessions.List()
	raw, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode sessions: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return len(sessions), nil
}

// ImportSessions reads a JSON array of session records from path and
// appends the valid ones. Invalid JSON or a non-array top level fails
// before anything is written. Per-record failures (missing title or
// date, tags not an array, id already present) skip that record only;
// accepted records have their tags merged into the registry by
// case-insensitive display name.
func (t *Tracker) ImportSessions(path string) (*ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("invalid import file: expected a JSON array of sessions")
	}

	existing := make(map[string]struct{})
	for _, s := range t.Sessions.List() {
		existing[s.ID] = struct{}{}
	}

	result := &ImportResult{}
	for i, rec := range records {
		var record importRecord
		if err := json.Unmarshal(rec, &record); err != nil {
			result.skip(i, "", "malformed record")
			continue
		}
		if reason := checkRecord(record); reason != "" {
			result.skip(i, record.Title, reason)
			continue
		}
		if record.ID != "" {
			if _, dup := existing[record.ID]; dup {
				result.skip(i, record.Title, "id already exists")
				continue
			}
		}

		date, err := models.ParseDate(record.Date)
		if err != nil {
			result.skip(i, record.Title, "invalid date")
			continue
		}

		s := models.Session{
			ID:        record.ID,
			Title:     record.Title,
			Minutes:   coerceMinutes(record.Minutes),
			Date:      date,
			Tags:      record.Tags,
			Notes:     record.Notes,
			CreatedAt: record.CreatedAt,
			UpdatedAt: record.UpdatedAt,
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if s.UpdatedAt < s.CreatedAt {
			s.UpdatedAt = s.CreatedAt
		}

		t.Sessions.Add(s)
		existing[s.ID] = struct{}{}
		for _, tag := range s.Tags {
			t.Tags.MergeImported(tag)
		}
		result.Added++
	}

	return result, nil
}

func (r *ImportResult) skip(index int, title, reason string) {
	r.Skipped = append(r.Skipped, SkippedRecord{Index: index, Title: title, Reason: reason})
}

func checkRecord(record importRecord) string {
	v := validate.Struct(&record)
	if !v.Validate() {
		return v.Errors.One()
	}
	// A record without a tags array is rejected outright; an empty
	// array is fine.
	if record.Tags == nil {
		return "tags must be an array"
	}
	return ""
}

// coerceMinutes accepts ints, floats and numeric strings; anything
// else counts as 0, matching how the analytics treat unreadable
// minutes.
func coerceMinutes(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}
	return 0
}
