package analytics

import (
	"time"

	"studylog/internal/models"
)

// Cell is one slot of a Monday-start month grid. Day 0 marks a leading
// blank before the 1st; Active flags qualifying days.
type Cell struct {
	Day    int
	Date   models.Date
	Active bool
}

// MonthGrid projects a month onto a 7-column Monday-start grid. The
// active flag uses the same daily-minimum qualification as streaks,
// not the weekly goal.
func MonthGrid(qualifying map[models.Date]bool, year int, month time.Month) []Cell {
	first := models.Date{Year: year, Month: month, Day: 1}
	// Day 0 of the next month is the last day of this one.
	last := models.DateOf(time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local))

	cells := make([]Cell, 0, 42)
	offset := (int(first.Weekday()) + 6) % 7
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= last.Day; d++ {
		date := models.Date{Year: year, Month: month, Day: d}
		cells = append(cells, Cell{Day: d, Date: date, Active: qualifying[date]})
	}
	return cells
}
