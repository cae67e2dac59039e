package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studylog/internal/models"
)

func TestMonthGridSeptember2026(t *testing.T) {
	// September 2026 starts on a Tuesday: one leading blank, 30 days.
	cells := MonthGrid(nil, 2026, time.September)
	require.Len(t, cells, 31)

	assert.Equal(t, 0, cells[0].Day)
	assert.Equal(t, 1, cells[1].Day)
	assert.Equal(t, 30, cells[30].Day)
	assert.Equal(t, models.Date{Year: 2026, Month: time.September, Day: 1}, cells[1].Date)
}

func TestMonthGridMondayStartHasNoBlanks(t *testing.T) {
	// June 2026 starts on a Monday.
	cells := MonthGrid(nil, 2026, time.June)
	require.Len(t, cells, 30)
	assert.Equal(t, 1, cells[0].Day)
}

func TestMonthGridSundayStart(t *testing.T) {
	// February 2026 starts on a Sunday: six leading blanks.
	cells := MonthGrid(nil, 2026, time.February)
	require.Len(t, cells, 6+28)
	for i := 0; i < 6; i++ {
		assert.Equal(t, 0, cells[i].Day)
	}
	assert.Equal(t, 1, cells[6].Day)
}

func TestMonthGridLeapFebruary(t *testing.T) {
	cells := MonthGrid(nil, 2028, time.February)
	assert.Equal(t, 29, cells[len(cells)-1].Day)
}

func TestMonthGridMarksQualifyingDays(t *testing.T) {
	active := models.Date{Year: 2026, Month: time.September, Day: 10}
	qualifying := map[models.Date]bool{active: true}

	cells := MonthGrid(qualifying, 2026, time.September)
	for _, c := range cells {
		if c.Day == 10 {
			assert.True(t, c.Active)
		} else {
			assert.False(t, c.Active)
		}
	}
}

func TestMonthGridDecemberRollsYear(t *testing.T) {
	cells := MonthGrid(nil, 2026, time.December)
	assert.Equal(t, 31, cells[len(cells)-1].Day)
}
