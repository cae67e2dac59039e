package data

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"studylog/internal/models"
	"studylog/internal/store"
)

// DefaultTags are seeded on first load. Stored tags override them by
// id, so renames and accumulated counts survive restarts.
var DefaultTags = []string{"Exam", "Assignment", "Reading", "Revision"}

// TagRegistry owns the tag taxonomy: a mapping from normalized tag id
// to display name and usage count. Counts track how many active
// sessions reference each tag.
type TagRegistry struct {
	store  *store.Store
	log    zerolog.Logger
	tags   map[string]*models.Tag
	order  []string // ids in first-seen order, defaults first
	loaded bool
}

// NewTagRegistry builds the registry, seeds the default tags and
// merges the persisted document on top of them.
func NewTagRegistry(st *store.Store, log zerolog.Logger) *TagRegistry {
	r := &TagRegistry{
		store: st,
		log:   log,
		tags:  make(map[string]*models.Tag),
	}
	r.load()
	return r
}

func (r *TagRegistry) load() {
	defer func() { r.loaded = true }()

	for _, name := range DefaultTags {
		id := models.NormalizeTag(name)
		r.tags[id] = &models.Tag{ID: id, Name: name, Count: 0}
		r.order = append(r.order, id)
	}

	raw, ok, err := r.store.Get(KeyTags)
	if err != nil {
		r.log.Warn().Err(err).Msg("failed to read tags, using defaults")
		return
	}
	if !ok {
		return
	}

	var stored map[string]models.Tag
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		r.log.Warn().Err(err).Msg("stored tags document is malformed, using defaults")
		return
	}

	// Stored entries win over the seeded defaults. Non-default ids are
	// appended in sorted order; the original storage format does not
	// record creation order.
	var extra []string
	for id, tag := range stored {
		t := tag
		if _, isDefault := r.tags[id]; !isDefault {
			extra = append(extra, id)
		}
		r.tags[id] = &t
	}
	sort.Strings(extra)
	r.order = append(r.order, extra...)
}

func (r *TagRegistry) persist() {
	if !r.loaded {
		return
	}
	raw, err := json.Marshal(r.tags)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to encode tags")
		return
	}
	if err := r.store.Put(KeyTags, string(raw)); err != nil {
		r.log.Error().Err(err).Msg("failed to persist tags")
	}
}

// AddIfMissing registers a tag under its normalized id with count 0.
// An existing tag is left untouched, including its display name.
func (r *TagRegistry) AddIfMissing(name string) {
	id := models.NormalizeTag(name)
	if id == "" {
		return
	}
	if _, ok := r.tags[id]; ok {
		return
	}
	r.tags[id] = &models.Tag{ID: id, Name: strings.TrimSpace(name), Count: 0}
	r.order = append(r.order, id)
	r.persist()
}

// Increment bumps the usage count for the tag, creating it first when
// absent.
func (r *TagRegistry) Increment(name string) {
	id := models.NormalizeTag(name)
	if id == "" {
		return
	}
	if _, ok := r.tags[id]; !ok {
		r.AddIfMissing(name)
	}
	r.tags[id].Count++
	r.persist()
}

// Decrement lowers the usage count for the tag, flooring at zero.
// Unknown tags are a no-op.
func (r *TagRegistry) Decrement(name string) {
	id := models.NormalizeTag(name)
	tag, ok := r.tags[id]
	if !ok {
		return
	}
	if tag.Count > 0 {
		tag.Count--
	}
	r.persist()
}

// UpdateUsage reconciles counts when a session's tag set changes:
// tags present before but not after are decremented, tags present
// after but not before are created if needed and incremented. Both
// sides are compared by normalized id, so "Math" and " math " are the
// same tag. Equal sets leave every count untouched.
func (r *TagRegistry) UpdateUsage(oldTags, newTags []string) {
	oldIDs := normalizedSet(oldTags)
	newIDs := normalizedSet(newTags)

	for _, name := range oldTags {
		if _, kept := newIDs[models.NormalizeTag(name)]; !kept {
			r.Decrement(name)
		}
	}
	for _, name := range newTags {
		if _, had := oldIDs[models.NormalizeTag(name)]; !had {
			r.AddIfMissing(name)
			r.Increment(name)
		}
	}
}

func normalizedSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		id := models.NormalizeTag(n)
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// Delete removes a tag from the taxonomy. Tags still referenced by
// active sessions cannot be deleted.
func (r *TagRegistry) Delete(name string) error {
	id := models.NormalizeTag(name)
	tag, ok := r.tags[id]
	if !ok {
		return fmt.Errorf("tag %q not found", strings.TrimSpace(name))
	}
	if tag.Count > 0 {
		return fmt.Errorf("cannot delete %q: tag is in use by %d session(s)", tag.Name, tag.Count)
	}
	delete(r.tags, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.persist()
	return nil
}

// Get returns the tag registered under the normalized form of name.
func (r *TagRegistry) Get(name string) (models.Tag, bool) {
	tag, ok := r.tags[models.NormalizeTag(name)]
	if !ok {
		return models.Tag{}, false
	}
	return *tag, true
}

// List returns the tags in registration order, defaults first.
func (r *TagRegistry) List() []models.Tag {
	out := make([]models.Tag, 0, len(r.order))
	for _, id := range r.order {
		if tag, ok := r.tags[id]; ok {
			out = append(out, *tag)
		}
	}
	return out
}

// MergeImported folds an imported session's tag into the registry,
// matching case-insensitively on display name: a match gets its count
// bumped, anything else becomes a fresh entry with count 1 under a
// generated id. This mirrors the import format of the original
// tracker, which keyed imported tags by random id rather than by
// normalized name.
func (r *TagRegistry) MergeImported(name string) {
	lower := strings.ToLower(name)
	for _, id := range r.order {
		if tag, ok := r.tags[id]; ok && strings.ToLower(tag.Name) == lower {
			tag.Count++
			r.persist()
			return
		}
	}
	id := uuid.NewString()
	r.tags[id] = &models.Tag{ID: id, Name: name, Count: 1}
	r.order = append(r.order, id)
	r.persist()
}

// FormatTagName normalizes free-typed tag input for display the way
// the session form does: first letter upper, rest lower.
func FormatTagName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(first)) + strings.ToLower(name[size:])
}
