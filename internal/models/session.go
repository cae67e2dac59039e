package models

import "time"

// Session represents a single logged study session
type Session struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Minutes int      `json:"minutes"`
	Date    Date     `json:"date"`
	Tags    []string `json:"tags"`
	Notes   string   `json:"notes"`

	// Unix milliseconds, matching the export file format.
	// UpdatedAt >= CreatedAt always holds; CreatedAt never changes
	// after creation.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	out := s
	out.Tags = append([]string(nil), s.Tags...)
	return out
}

// LastTouched returns the most recent of UpdatedAt and CreatedAt,
// used for newest-first ordering in list views.
func (s Session) LastTouched() int64 {
	if s.UpdatedAt > s.CreatedAt {
		return s.UpdatedAt
	}
	return s.CreatedAt
}

// NowMillis returns the current time in Unix milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
