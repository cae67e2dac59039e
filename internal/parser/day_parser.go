package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"studylog/internal/models"
)

var (
	slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	agoRegex       = regexp.MustCompile(`^(\d+)\s+days?\s+ago$`)
)

// ParseDay parses the date formats the CLI accepts
// Supported formats:
// - YYYY-MM-DD (e.g., "2026-09-01")
// - dd/mm/yyyy (e.g., "01/09/2026")
// - "today", "yesterday"
// - X days ago (e.g., "3 days ago")
func ParseDay(input string) (models.Date, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return models.Date{}, fmt.Errorf("empty date")
	}

	switch input {
	case "today":
		return models.DateOf(time.Now()), nil
	case "yesterday":
		return models.DateOf(time.Now()).AddDays(-1), nil
	}

	if match := agoRegex.FindStringSubmatch(input); len(match) == 2 {
		days, err := strconv.Atoi(match[1])
		if err != nil || days < 0 || days > 3650 {
			return models.Date{}, fmt.Errorf("days ago must be between 0 and 3650")
		}
		return models.DateOf(time.Now()).AddDays(-days), nil
	}

	if match := slashDateRegex.FindStringSubmatch(input); len(match) == 4 {
		day, _ := strconv.Atoi(match[1])
		month, _ := strconv.Atoi(match[2])
		year, _ := strconv.Atoi(match[3])
		if month < 1 || month > 12 {
			return models.Date{}, fmt.Errorf("month must be between 1 and 12")
		}
		date := models.Date{Year: year, Month: time.Month(month), Day: day}
		// Round-trip through time.Date catches impossible days.
		if models.DateOf(date.Time()) != date {
			return models.Date{}, fmt.Errorf("invalid date %q", input)
		}
		return date, nil
	}

	if date, err := models.ParseDate(input); err == nil {
		return date, nil
	}

	return models.Date{}, fmt.Errorf("use YYYY-MM-DD, dd/mm/yyyy, today, yesterday or \"X days ago\"")
}
