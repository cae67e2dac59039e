package models

// BinEntry is a soft-deleted session held in the recycle bin. The
// session is a full snapshot taken at deletion time; DeletedAt is Unix
// milliseconds.
type BinEntry struct {
	Session   Session `json:"session"`
	DeletedAt int64   `json:"deletedAt"`
}
