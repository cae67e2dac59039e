package data

import (
	"fmt"
	"sort"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"studylog/internal/models"
	"studylog/internal/store"
)

// RecycleBin holds soft-deleted sessions for a bounded retention
// window. Entries are keyed by session id; expired entries are dropped
// when the bin is loaded.
type RecycleBin struct {
	store     *store.Store
	log       zerolog.Logger
	repo      *SessionRepository
	entries   map[string]models.BinEntry
	retention time.Duration
	now       func() time.Time
	loaded    bool
}

// NewRecycleBin builds the bin, loads persisted entries and purges
// anything older than the retention window. The filtered view is
// written back immediately so expired entries never reappear.
func NewRecycleBin(st *store.Store, repo *SessionRepository, retention time.Duration, log zerolog.Logger) *RecycleBin {
	b := &RecycleBin{
		store:     st,
		log:       log,
		repo:      repo,
		entries:   make(map[string]models.BinEntry),
		retention: retention,
		now:       time.Now,
	}
	b.load()
	return b
}

func (b *RecycleBin) load() {
	defer func() { b.loaded = true }()

	raw, ok, err := b.store.Get(KeyRecycleBin)
	if err != nil {
		b.log.Warn().Err(err).Msg("failed to read recycle bin, starting empty")
		return
	}
	if !ok {
		return
	}

	var stored map[string]models.BinEntry
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		b.log.Warn().Err(err).Msg("stored recycle bin document is malformed, starting empty")
		return
	}

	cutoff := b.now().UnixMilli() - b.retention.Milliseconds()
	dropped := 0
	for id, entry := range stored {
		if entry.DeletedAt > cutoff {
			b.entries[id] = entry
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		b.log.Info().Int("purged", dropped).Msg("purged expired recycle bin entries")
	}
	b.loaded = true
	b.persist()
}

func (b *RecycleBin) persist() {
	if !b.loaded {
		return
	}
	raw, err := json.Marshal(b.entries)
	if err != nil {
		b.log.Error().Err(err).Msg("failed to encode recycle bin")
		return
	}
	if err := b.store.Put(KeyRecycleBin, string(raw)); err != nil {
		b.log.Error().Err(err).Msg("failed to persist recycle bin")
	}
}

// SendToBin snapshots the session into the bin and removes it from the
// active repository.
func (b *RecycleBin) SendToBin(s models.Session) {
	b.entries[s.ID] = models.BinEntry{
		Session:   s.Clone(),
		DeletedAt: b.now().UnixMilli(),
	}
	b.persist()
	b.repo.Remove(s.ID)
}

// Restore moves the stored snapshot back into the repository and drops
// the bin entry. The snapshot is re-added, not merged: if the id has
// been reused meanwhile the repository ends up with both.
func (b *RecycleBin) Restore(id string) (models.Session, error) {
	entry, ok := b.entries[id]
	if !ok {
		return models.Session{}, fmt.Errorf("no session %q in the recycle bin", id)
	}
	b.repo.Add(entry.Session)
	delete(b.entries, id)
	b.persist()
	return entry.Session, nil
}

// DeletePermanently drops the bin entry. The session is gone for good;
// it was already removed from the repository at soft-delete time.
func (b *RecycleBin) DeletePermanently(id string) (models.Session, error) {
	entry, ok := b.entries[id]
	if !ok {
		return models.Session{}, fmt.Errorf("no session %q in the recycle bin", id)
	}
	delete(b.entries, id)
	b.persist()
	return entry.Session, nil
}

// PurgeAll empties the bin.
func (b *RecycleBin) PurgeAll() {
	b.entries = make(map[string]models.BinEntry)
	if err := b.store.Delete(KeyRecycleBin); err != nil {
		b.log.Error().Err(err).Msg("failed to clear recycle bin")
	}
}

// Get returns the bin entry for the given session id.
func (b *RecycleBin) Get(id string) (models.BinEntry, bool) {
	entry, ok := b.entries[id]
	return entry, ok
}

// List returns the bin entries, most recently deleted first.
func (b *RecycleBin) List() []models.BinEntry {
	out := make([]models.BinEntry, 0, len(b.entries))
	for _, entry := range b.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DeletedAt != out[j].DeletedAt {
			return out[i].DeletedAt > out[j].DeletedAt
		}
		return out[i].Session.ID < out[j].Session.ID
	})
	return out
}

// Len returns the number of entries currently in the bin.
func (b *RecycleBin) Len() int {
	return len(b.entries)
}

// ResolveID resolves a full id or unique prefix against bin entries.
func (b *RecycleBin) ResolveID(idOrPrefix string) (string, error) {
	if _, ok := b.entries[idOrPrefix]; ok {
		return idOrPrefix, nil
	}
	var matches []string
	for id := range b.entries {
		if len(idOrPrefix) > 0 && len(id) >= len(idOrPrefix) && id[:len(idOrPrefix)] == idOrPrefix {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no recycle bin entry matching %q", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("recycle bin id %q is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
}
