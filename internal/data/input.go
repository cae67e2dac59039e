package data

import (
	"errors"
	"strings"

	"github.com/gookit/validate"

	"studylog/internal/models"
)

// SessionInput carries the user-supplied fields for creating or
// editing a session. Validation mirrors the session form: title at
// least 3 characters trimmed, minutes within a single study day, notes
// capped at 200 characters.
type SessionInput struct {
	Title   string `validate:"required|minLen:3" message:"required:Title is required|minLen:Title must be at least 3 characters long"`
	Minutes int    `validate:"required|min:1|max:600" message:"required:Minutes must be between 1 and 600|min:Minutes must be between 1 and 600|max:Minutes must be between 1 and 600"`
	Date    models.Date
	Tags    []string
	Notes   string `validate:"maxLen:200" message:"maxLen:Notes must be at most 200 characters"`
}

// Normalize trims the title and cleans the tag list: surrounding
// whitespace dropped, empties removed, duplicates (by normalized id)
// collapsed to their first occurrence.
func (in *SessionInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Tags = CleanTags(in.Tags)
}

// Validate checks the input after normalization.
func (in *SessionInput) Validate() error {
	v := validate.Struct(in)
	if !v.Validate() {
		return errors.New(v.Errors.One())
	}
	if in.Date.IsZero() {
		return errors.New("Date is required")
	}
	return nil
}

// CleanTags trims tag names, drops empties and removes duplicates by
// normalized id, keeping first occurrences and their casing.
func CleanTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		id := models.NormalizeTag(tag)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, tag)
	}
	return out
}
