package analytics

import (
	"sort"
	"time"

	"studylog/internal/models"
)

// Config holds the user thresholds the engine consumes.
type Config struct {
	WeeklyGoal   int // minutes per week the donut measures against
	DailyMinimum int // minutes a day needs to qualify for streaks
}

// Metrics is the derived bundle the dashboard renders. Everything here
// is a pure function of the session list, the config, today's date and
// the selected week offset.
type Metrics struct {
	TodayMinutes  int
	WeeklyMinutes int
	WeekStart     models.Date
	Chart         [7]int // Monday..Sunday buckets for the selected week
	MostUsedTag   string
	CurrentStreak int
	BestStreak    int
	GoalProgress  float64 // weekly minutes over goal, clamped to [0,1]

	TotalsByDate map[models.Date]int
	Qualifying   map[models.Date]bool
}

// Compute derives the full metrics bundle. weekOffset shifts the
// Monday-start week window in whole weeks, negative for past weeks.
func Compute(sessions []models.Session, cfg Config, today models.Date, weekOffset int) Metrics {
	m := Metrics{
		TotalsByDate: make(map[models.Date]int),
		Qualifying:   make(map[models.Date]bool),
	}

	for _, s := range sessions {
		minutes := s.Minutes
		if minutes < 0 {
			minutes = 0
		}
		m.TotalsByDate[s.Date] += minutes
	}
	for date, total := range m.TotalsByDate {
		if total >= cfg.DailyMinimum {
			m.Qualifying[date] = true
		}
	}

	m.WeekStart = WeekStart(today, weekOffset)
	weekEnd := m.WeekStart.AddDays(7)
	for _, s := range sessions {
		if s.Date.Before(m.WeekStart) || !s.Date.Before(weekEnd) {
			continue
		}
		minutes := s.Minutes
		if minutes < 0 {
			minutes = 0
		}
		m.WeeklyMinutes += minutes
		// Remap Sunday=0 to the last bucket of a Monday-start week.
		m.Chart[(int(s.Date.Weekday())+6)%7] += minutes
	}

	m.TodayMinutes = m.TotalsByDate[today]
	m.MostUsedTag = MostUsedTag(sessions)
	m.CurrentStreak, m.BestStreak = streaks(m.TotalsByDate, cfg.DailyMinimum, today)

	goal := cfg.WeeklyGoal
	denom := goal
	if denom == 0 {
		denom = 1
	}
	capped := m.WeeklyMinutes
	if capped > goal {
		capped = goal
	}
	m.GoalProgress = float64(capped) / float64(denom)

	return m
}

// WeekStart returns the Monday of the week containing today, shifted
// by offset whole weeks.
func WeekStart(today models.Date, offset int) models.Date {
	day := today.Weekday()
	diffToMonday := 1 - int(day)
	if day == time.Sunday {
		diffToMonday = -6
	}
	return today.AddDays(diffToMonday + offset*7)
}

// MostUsedTag counts tag occurrences across all sessions and returns
// the most frequent one. Ties go to the tag first encountered walking
// the sessions in order, which is stable because the repository keeps
// insertion order. Returns "" when no session carries a tag.
func MostUsedTag(sessions []models.Session) string {
	counts := make(map[string]int)
	var firstSeen []string
	for _, s := range sessions {
		for _, tag := range s.Tags {
			if _, seen := counts[tag]; !seen {
				firstSeen = append(firstSeen, tag)
			}
			counts[tag]++
		}
	}

	best := ""
	for _, tag := range firstSeen {
		if best == "" || counts[tag] > counts[best] {
			best = tag
		}
	}
	return best
}

// streaks walks the qualifying dates in ascending order. A run extends
// while each date is exactly one calendar day after the previous; any
// gap resets it. The current streak only exists once today itself
// qualifies; otherwise it is 0 no matter how long the run ending
// yesterday was.
func streaks(totals map[models.Date]int, minimum int, today models.Date) (current, best int) {
	var days []models.Date
	for date, total := range totals {
		if total >= minimum {
			days = append(days, date)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	streak := 0
	var prev models.Date
	for i, date := range days {
		if i == 0 {
			streak = 1
		} else if models.DaysBetween(prev, date) == 1 {
			streak++
		} else {
			streak = 1
		}
		if streak > best {
			best = streak
		}
		prev = date
	}

	if totals[today] < minimum {
		streak = 0
	}
	return streak, best
}
