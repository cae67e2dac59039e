package data

import (
	"sort"
	"strings"
	"time"

	"studylog/internal/models"
)

// Range selects a date window for session filtering.
type Range string

const (
	RangeAll    Range = "all"
	RangeToday  Range = "today"
	RangeWeek   Range = "7d"
	RangeMonth  Range = "month"
	RangeCustom Range = "custom"
)

// ParseRange validates a range name from the CLI.
func ParseRange(s string) (Range, error) {
	switch Range(strings.ToLower(strings.TrimSpace(s))) {
	case RangeAll, "":
		return RangeAll, nil
	case RangeToday:
		return RangeToday, nil
	case RangeWeek:
		return RangeWeek, nil
	case RangeMonth:
		return RangeMonth, nil
	case RangeCustom:
		return RangeCustom, nil
	}
	return "", &RangeError{Value: s}
}

// RangeError reports an unknown range name.
type RangeError struct{ Value string }

func (e *RangeError) Error() string {
	return "unknown range \"" + e.Value + "\": use all, today, 7d, month or custom"
}

// Filter narrows a session list by free text, required tags and a date
// window. It is view-local state and never persisted.
type Filter struct {
	Query string
	Tags  []string
	Range Range
	Start models.Date
	End   models.Date
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.Query == "" && len(f.Tags) == 0 && (f.Range == "" || f.Range == RangeAll)
}

// Match reports whether a session passes every criterion. Required
// tags use AND semantics and compare by normalized id, so a filter on
// "math" matches a session tagged "Math".
func (f Filter) Match(s models.Session, now time.Time) bool {
	return f.matchQuery(s) && f.matchTags(s) && f.matchRange(s, now)
}

func (f Filter) matchQuery(s models.Session) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	if strings.Contains(strings.ToLower(s.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Notes), q) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (f Filter) matchTags(s models.Session) bool {
	if len(f.Tags) == 0 {
		return true
	}
	have := normalizedSet(s.Tags)
	for _, want := range f.Tags {
		if _, ok := have[models.NormalizeTag(want)]; !ok {
			return false
		}
	}
	return true
}

func (f Filter) matchRange(s models.Session, now time.Time) bool {
	today := models.DateOf(now)
	switch f.Range {
	case "", RangeAll:
		return true
	case RangeToday:
		return s.Date.Equal(today)
	case RangeWeek:
		// Last seven days, future dates included.
		return !s.Date.Before(today.AddDays(-7))
	case RangeMonth:
		return s.Date.Year == today.Year && s.Date.Month == today.Month
	case RangeCustom:
		if f.Start.IsZero() || f.End.IsZero() {
			return true
		}
		return !s.Date.Before(f.Start) && !s.Date.After(f.End)
	}
	return true
}

// Apply filters the sessions and orders the survivors most recently
// touched first, the order the list views use.
func (f Filter) Apply(sessions []models.Session, now time.Time) []models.Session {
	out := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if f.Match(s, now) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastTouched() > out[j].LastTouched()
	})
	return out
}
