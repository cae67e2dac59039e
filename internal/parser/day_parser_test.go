package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studylog/internal/models"
)

func TestParseDayAbsoluteFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.Date
	}{
		{"iso", "2026-09-01", models.Date{Year: 2026, Month: time.September, Day: 1}},
		{"slash", "01/09/2026", models.Date{Year: 2026, Month: time.September, Day: 1}},
		{"slash single digits", "5/3/2026", models.Date{Year: 2026, Month: time.March, Day: 5}},
		{"spaces", "  2026-09-01  ", models.Date{Year: 2026, Month: time.September, Day: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDayRelative(t *testing.T) {
	today := models.DateOf(time.Now())

	got, err := ParseDay("today")
	require.NoError(t, err)
	assert.Equal(t, today, got)

	got, err = ParseDay("Yesterday")
	require.NoError(t, err)
	assert.Equal(t, today.AddDays(-1), got)

	got, err = ParseDay("3 days ago")
	require.NoError(t, err)
	assert.Equal(t, today.AddDays(-3), got)

	got, err = ParseDay("1 day ago")
	require.NoError(t, err)
	assert.Equal(t, today.AddDays(-1), got)
}

func TestParseDayErrors(t *testing.T) {
	inputs := []string{
		"",
		"tomorrow",
		"2026-02-30",
		"31/02/2026", // impossible day
		"01/13/2026", // month out of range
		"5000 days ago",
		"next tuesday",
	}
	for _, input := range inputs {
		_, err := ParseDay(input)
		assert.Error(t, err, input)
	}
}
