package parser

import (
	"regexp"
	"strconv"
	"strings"

	"studylog/internal/models"
)

// ParsedEntry represents a session parsed from quick-entry syntax
type ParsedEntry struct {
	Title   string
	Tags    []string
	Minutes int
	Date    models.Date
	Errors  []string
}

var (
	tagRegex     = regexp.MustCompile(`#([a-zA-Z0-9_,-]+)`)
	minutesRegex = regexp.MustCompile(`\b(\d+)(?:min|m)\b`)
	dateRegex    = regexp.MustCompile(`on:(\S+)`)
)

// ParseEntry extracts session fields from a one-line description.
// Syntax: "Calculus revision #math,exam 45min on:2026-09-01"
//
//	#tag1,tag2  - Tags (comma-separated or individual)
//	45min / 45m - Duration in minutes
//	on:DATE     - Session date (YYYY-MM-DD, dd/mm/yyyy, today,
//	              yesterday, "3 days ago" as on:3-days-ago)
func ParseEntry(input string) ParsedEntry {
	result := ParsedEntry{
		Title:  input,
		Tags:   []string{},
		Errors: []string{},
	}

	// Extract tags (#tag1,tag2 or #tag1 #tag2)
	for _, match := range tagRegex.FindAllStringSubmatch(input, -1) {
		if len(match) > 1 {
			for _, tag := range strings.Split(match[1], ",") {
				tag = strings.TrimSpace(tag)
				if tag != "" {
					result.Tags = append(result.Tags, tag)
				}
			}
		}
	}
	input = tagRegex.ReplaceAllString(input, "")

	// Extract duration (45min or 45m)
	if match := minutesRegex.FindStringSubmatch(input); len(match) > 1 {
		minutes, err := strconv.Atoi(match[1])
		if err != nil || minutes < 1 || minutes > 600 {
			result.Errors = append(result.Errors, "Minutes must be between 1 and 600")
		} else {
			result.Minutes = minutes
		}
		input = minutesRegex.ReplaceAllString(input, "")
	}

	// Extract date (on:2026-09-01, on:today, on:yesterday, ...)
	if match := dateRegex.FindStringSubmatch(input); len(match) > 1 {
		date, err := ParseDay(match[1])
		if err != nil {
			// Relative forms are hyphenated in-line (on:3-days-ago);
			// retry with the hyphens as spaces.
			if d2, err2 := ParseDay(strings.ReplaceAll(match[1], "-", " ")); err2 == nil {
				date = d2
				err = nil
			}
		}
		if err != nil {
			result.Errors = append(result.Errors, "Invalid date '"+match[1]+"': "+err.Error())
		} else {
			result.Date = date
		}
		input = dateRegex.ReplaceAllString(input, "")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.TrimSpace(strings.Join(strings.Fields(input), " "))

	return result
}
