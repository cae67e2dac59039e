package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"plain date", "2026-09-01", Date{2026, time.September, 1}, false},
		{"surrounding spaces", "  2026-09-01  ", Date{2026, time.September, 1}, false},
		{"full timestamp truncated", "2026-09-01T14:30:00.000Z", Date{2026, time.September, 1}, false},
		{"impossible day", "2026-02-30", Date{}, true},
		{"wrong shape", "01/09/2026", Date{}, true},
		{"empty", "", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateString(t *testing.T) {
	d := Date{2026, time.March, 5}
	assert.Equal(t, "2026-03-05", d.String())
}

func TestDateAddDays(t *testing.T) {
	d := Date{2026, time.January, 31}
	assert.Equal(t, Date{2026, time.February, 1}, d.AddDays(1))
	assert.Equal(t, Date{2025, time.December, 31}, Date{2026, time.January, 1}.AddDays(-1))
}

func TestDateOrdering(t *testing.T) {
	a := Date{2026, time.May, 10}
	b := Date{2026, time.May, 11}
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.True(t, a.Equal(a))
}

func TestDaysBetween(t *testing.T) {
	a := Date{2026, time.August, 30}
	b := Date{2026, time.September, 2}
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDaysBetweenAcrossDSTChange(t *testing.T) {
	// Europe/Berlin springs forward on 2026-03-29: local midnights of
	// the 29th and 30th are only 23 hours apart. The day count must
	// not depend on the process timezone.
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	orig := time.Local
	time.Local = loc
	defer func() { time.Local = orig }()

	springForward := Date{2026, time.March, 29}
	assert.Equal(t, 1, DaysBetween(springForward, Date{2026, time.March, 30}))

	// Fall back on 2026-10-25: 25-hour local day.
	fallBack := Date{2026, time.October, 25}
	assert.Equal(t, 1, DaysBetween(fallBack, Date{2026, time.October, 26}))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := Date{2026, time.September, 1}
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-01"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestSessionLastTouched(t *testing.T) {
	s := Session{CreatedAt: 100, UpdatedAt: 200}
	assert.Equal(t, int64(200), s.LastTouched())

	s = Session{CreatedAt: 300, UpdatedAt: 300}
	assert.Equal(t, int64(300), s.LastTouched())
}

func TestSessionCloneDetachesTags(t *testing.T) {
	s := Session{ID: "a", Tags: []string{"Math"}}
	c := s.Clone()
	c.Tags[0] = "Physics"
	assert.Equal(t, "Math", s.Tags[0])
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "math", NormalizeTag("  Math "))
	assert.Equal(t, "", NormalizeTag("   "))
}
