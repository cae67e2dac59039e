package models

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date with no time component. It serializes as
// "YYYY-MM-DD", the same form the session export files use.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates a time to its local calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses "YYYY-MM-DD". Longer values (full timestamps) are
// accepted by reading only the date portion.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the date at midnight local time.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Weekday returns the day of week, with time.Sunday == 0.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a. The subtraction happens over UTC
// midnights: local midnights are 23 or 25 hours apart around a DST
// change, which would truncate to the wrong day count.
func DaysBetween(a, b Date) int {
	au := time.Date(a.Year, a.Month, a.Day, 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year, b.Month, b.Day, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
