package models

import "strings"

// Tag represents a tag in the taxonomy. ID is the normalized form of
// the name and is the storage key; Name keeps the casing the creator
// typed. Count is the number of active sessions referencing the tag.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// NormalizeTag derives a tag's id from its display name.
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
