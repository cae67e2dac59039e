package data

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"studylog/internal/models"
	"studylog/internal/store"
)

// SessionRepository owns the active session collection. Sessions are
// kept in memory in insertion order and written back to the store as a
// whole document after every mutation.
type SessionRepository struct {
	store    *store.Store
	log      zerolog.Logger
	sessions []models.Session
	loaded   bool
}

// NewSessionRepository builds the repository and loads the persisted
// sessions. A missing, malformed or empty document leaves the
// repository empty; that is logged, never fatal.
func NewSessionRepository(st *store.Store, log zerolog.Logger) *SessionRepository {
	r := &SessionRepository{store: st, log: log}
	r.load()
	return r
}

func (r *SessionRepository) load() {
	// The loaded flag guards persistence: nothing is written until the
	// stored state has been read, so a failed load can never clobber
	// saved sessions with an empty collection.
	defer func() { r.loaded = true }()

	raw, ok, err := r.store.Get(KeySessions)
	if err != nil {
		r.log.Warn().Err(err).Msg("failed to read sessions, starting empty")
		return
	}
	if !ok {
		return
	}

	var parsed []models.Session
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		r.log.Warn().Err(err).Msg("stored sessions document is malformed, ignoring")
		return
	}
	if len(parsed) == 0 {
		r.log.Debug().Msg("stored sessions document is empty, ignoring")
		return
	}

	r.sessions = parsed
	r.log.Debug().Int("count", len(parsed)).Msg("loaded sessions")
}

func (r *SessionRepository) persist() {
	if !r.loaded {
		return
	}
	raw, err := json.Marshal(r.sessions)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to encode sessions")
		return
	}
	if err := r.store.Put(KeySessions, string(raw)); err != nil {
		r.log.Error().Err(err).Msg("failed to persist sessions")
	}
}

// Add appends a session to the collection.
func (r *SessionRepository) Add(s models.Session) {
	r.sessions = append(r.sessions, s.Clone())
	r.persist()
}

// Update replaces the session with the same id. Unknown ids are a
// no-op.
func (r *SessionRepository) Update(s models.Session) {
	for i := range r.sessions {
		if r.sessions[i].ID == s.ID {
			r.sessions[i] = s.Clone()
			r.persist()
			return
		}
	}
}

// Remove deletes the session with the given id. Unknown ids are a
// no-op.
func (r *SessionRepository) Remove(id string) {
	for i := range r.sessions {
		if r.sessions[i].ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			r.persist()
			return
		}
	}
}

// Get returns the session with the given id.
func (r *SessionRepository) Get(id string) (models.Session, bool) {
	for i := range r.sessions {
		if r.sessions[i].ID == id {
			return r.sessions[i].Clone(), true
		}
	}
	return models.Session{}, false
}

// List returns the sessions in insertion order. The result is a copy;
// mutating it does not touch the repository.
func (r *SessionRepository) List() []models.Session {
	out := make([]models.Session, 0, len(r.sessions))
	for i := range r.sessions {
		out = append(out, r.sessions[i].Clone())
	}
	return out
}

// Len returns the number of active sessions.
func (r *SessionRepository) Len() int {
	return len(r.sessions)
}

// ResolveID resolves a full id or a unique id prefix to a session id,
// so the CLI does not require typing whole UUIDs.
func (r *SessionRepository) ResolveID(idOrPrefix string) (string, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return "", fmt.Errorf("empty session id")
	}

	var matches []string
	for i := range r.sessions {
		id := r.sessions[i].ID
		if id == idOrPrefix {
			return id, nil
		}
		if strings.HasPrefix(id, idOrPrefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no session matching %q", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("session id %q is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
}
