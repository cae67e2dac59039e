package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studylog/internal/models"
)

var filterNow = time.Date(2026, time.September, 1, 15, 0, 0, 0, time.Local)

func filterSession(title string, date models.Date, tags ...string) models.Session {
	return models.Session{
		ID:      title,
		Title:   title,
		Minutes: 30,
		Date:    date,
		Tags:    tags,
		Notes:   "",
	}
}

func TestParseRange(t *testing.T) {
	for _, input := range []string{"all", "today", "7d", "month", "custom", "", " Today "} {
		_, err := ParseRange(input)
		assert.NoError(t, err, input)
	}

	_, err := ParseRange("fortnight")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fortnight")
}

func TestFilterQueryMatchesTitleNotesAndTags(t *testing.T) {
	today := models.DateOf(filterNow)
	s := filterSession("Calculus revision", today, "Math")
	s.Notes = "chapter 4 integrals"

	assert.True(t, Filter{Query: "calculus"}.Match(s, filterNow))
	assert.True(t, Filter{Query: "INTEGRALS"}.Match(s, filterNow))
	assert.True(t, Filter{Query: "mat"}.Match(s, filterNow))
	assert.False(t, Filter{Query: "physics"}.Match(s, filterNow))
}

func TestFilterTagsRequireAll(t *testing.T) {
	today := models.DateOf(filterNow)
	s := filterSession("Mock exam", today, "Math", "Exam")

	assert.True(t, Filter{Tags: []string{"math"}}.Match(s, filterNow))
	assert.True(t, Filter{Tags: []string{"math", "EXAM"}}.Match(s, filterNow))
	assert.False(t, Filter{Tags: []string{"math", "reading"}}.Match(s, filterNow))
}

func TestFilterRanges(t *testing.T) {
	today := models.DateOf(filterNow)
	sToday := filterSession("Today", today)
	sThreeDays := filterSession("Three days back", today.AddDays(-3))
	sLastMonth := filterSession("Last month", today.AddDays(-31))

	assert.True(t, Filter{Range: RangeToday}.Match(sToday, filterNow))
	assert.False(t, Filter{Range: RangeToday}.Match(sThreeDays, filterNow))

	assert.True(t, Filter{Range: RangeWeek}.Match(sThreeDays, filterNow))
	assert.False(t, Filter{Range: RangeWeek}.Match(sLastMonth, filterNow))

	assert.True(t, Filter{Range: RangeMonth}.Match(sToday, filterNow))
	assert.False(t, Filter{Range: RangeMonth}.Match(sLastMonth, filterNow))

	custom := Filter{
		Range: RangeCustom,
		Start: today.AddDays(-5),
		End:   today.AddDays(-1),
	}
	assert.True(t, custom.Match(sThreeDays, filterNow))
	assert.False(t, custom.Match(sToday, filterNow))
}

func TestFilterApplyOrdersNewestFirst(t *testing.T) {
	today := models.DateOf(filterNow)
	older := filterSession("Older", today)
	older.CreatedAt = 100
	newer := filterSession("Newer", today)
	newer.CreatedAt = 100
	newer.UpdatedAt = 500

	out := Filter{}.Apply([]models.Session{older, newer}, filterNow)
	require.Len(t, out, 2)
	assert.Equal(t, "Newer", out[0].Title)
	assert.Equal(t, "Older", out[1].Title)
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.True(t, Filter{Range: RangeAll}.IsZero())
	assert.False(t, Filter{Query: "x"}.IsZero())
	assert.False(t, Filter{Tags: []string{"math"}}.IsZero())
	assert.False(t, Filter{Range: RangeToday}.IsZero())
}
