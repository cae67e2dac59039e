package data

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"studylog/internal/models"
	"studylog/internal/store"
)

// Tracker bundles the services owning the persisted collections and
// orchestrates the flows that touch more than one of them: tag counts
// follow sessions through create, edit, soft-delete and restore, so a
// count always equals the number of active sessions using the tag.
type Tracker struct {
	Sessions *SessionRepository
	Tags     *TagRegistry
	Bin      *RecycleBin
	Settings *Settings
}

// NewTracker loads every collection from the store. Construction is
// cheap; all state fits in memory.
func NewTracker(st *store.Store, retention time.Duration, log zerolog.Logger) *Tracker {
	repo := NewSessionRepository(st, log)
	return &Tracker{
		Sessions: repo,
		Tags:     NewTagRegistry(st, log),
		Bin:      NewRecycleBin(st, repo, retention, log),
		Settings: NewSettings(st, log),
	}
}

// CreateSession validates the input, registers its tags and appends
// the new session.
func (t *Tracker) CreateSession(in SessionInput) (models.Session, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return models.Session{}, err
	}

	now := models.NowMillis()
	s := models.Session{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Minutes:   in.Minutes,
		Date:      in.Date,
		Tags:      in.Tags,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, tag := range s.Tags {
		t.Tags.AddIfMissing(tag)
		t.Tags.Increment(tag)
	}
	t.Sessions.Add(s)
	return s, nil
}

// UpdateSession validates the input, reconciles tag counts against the
// previous tag set and replaces the stored session. CreatedAt is
// preserved; UpdatedAt moves forward.
func (t *Tracker) UpdateSession(idOrPrefix string, in SessionInput) (models.Session, error) {
	id, err := t.Sessions.ResolveID(idOrPrefix)
	if err != nil {
		return models.Session{}, err
	}
	existing, ok := t.Sessions.Get(id)
	if !ok {
		return models.Session{}, fmt.Errorf("session %q not found", id)
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return models.Session{}, err
	}

	t.Tags.UpdateUsage(existing.Tags, in.Tags)

	updated := existing
	updated.Title = in.Title
	updated.Minutes = in.Minutes
	updated.Date = in.Date
	updated.Tags = in.Tags
	updated.Notes = in.Notes
	updated.UpdatedAt = models.NowMillis()
	if updated.UpdatedAt < updated.CreatedAt {
		updated.UpdatedAt = updated.CreatedAt
	}

	t.Sessions.Update(updated)
	return updated, nil
}

// DeleteSession soft-deletes a session into the recycle bin and
// releases its tag references.
func (t *Tracker) DeleteSession(idOrPrefix string) (models.Session, error) {
	id, err := t.Sessions.ResolveID(idOrPrefix)
	if err != nil {
		return models.Session{}, err
	}
	s, ok := t.Sessions.Get(id)
	if !ok {
		return models.Session{}, fmt.Errorf("session %q not found", id)
	}
	t.Bin.SendToBin(s)
	t.Tags.UpdateUsage(s.Tags, nil)
	return s, nil
}

// RestoreSession brings a binned session back and re-acquires its tag
// references, recreating tags deleted in the meantime.
func (t *Tracker) RestoreSession(idOrPrefix string) (models.Session, error) {
	id, err := t.Bin.ResolveID(idOrPrefix)
	if err != nil {
		return models.Session{}, err
	}
	s, err := t.Bin.Restore(id)
	if err != nil {
		return models.Session{}, err
	}
	t.Tags.UpdateUsage(nil, s.Tags)
	return s, nil
}
