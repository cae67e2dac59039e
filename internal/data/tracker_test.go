package data

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studylog/internal/models"
	"studylog/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "studylog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	return NewTracker(newTestStore(t), 7*24*time.Hour, zerolog.Nop())
}

func testInput(title string, tags ...string) SessionInput {
	return SessionInput{
		Title:   title,
		Minutes: 45,
		Date:    models.Date{Year: 2026, Month: time.September, Day: 1},
		Tags:    tags,
	}
}

func TestCreateSession(t *testing.T) {
	tracker := newTestTracker(t)

	s, err := tracker.CreateSession(testInput("Calculus revision", "Math", "Exam"))
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Calculus revision", s.Title)
	assert.Equal(t, 45, s.Minutes)
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)
	assert.Equal(t, 1, tracker.Sessions.Len())

	math, ok := tracker.Tags.Get("math")
	require.True(t, ok)
	assert.Equal(t, 1, math.Count)

	exam, ok := tracker.Tags.Get("exam")
	require.True(t, ok)
	assert.Equal(t, 1, exam.Count)
}

func TestCreateSessionValidation(t *testing.T) {
	tracker := newTestTracker(t)

	tests := []struct {
		name  string
		input SessionInput
	}{
		{"title too short", SessionInput{Title: "ab", Minutes: 30, Date: models.Date{Year: 2026, Month: 9, Day: 1}}},
		{"zero minutes", SessionInput{Title: "Reading", Minutes: 0, Date: models.Date{Year: 2026, Month: 9, Day: 1}}},
		{"minutes over cap", SessionInput{Title: "Reading", Minutes: 601, Date: models.Date{Year: 2026, Month: 9, Day: 1}}},
		{"missing date", SessionInput{Title: "Reading", Minutes: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tracker.CreateSession(tt.input)
			assert.Error(t, err)
		})
	}
	assert.Equal(t, 0, tracker.Sessions.Len())
}

func TestUpdateSessionReconcilesTagCounts(t *testing.T) {
	tracker := newTestTracker(t)

	s, err := tracker.CreateSession(testInput("Linear algebra", "Math"))
	require.NoError(t, err)

	in := testInput("Linear algebra", "Physics")
	_, err = tracker.UpdateSession(s.ID, in)
	require.NoError(t, err)

	math, _ := tracker.Tags.Get("math")
	assert.Equal(t, 0, math.Count)
	physics, ok := tracker.Tags.Get("physics")
	require.True(t, ok)
	assert.Equal(t, 1, physics.Count)
}

func TestUpdateSessionSameTagsDifferentCase(t *testing.T) {
	tracker := newTestTracker(t)

	s, err := tracker.CreateSession(testInput("Essay draft", "History"))
	require.NoError(t, err)

	_, err = tracker.UpdateSession(s.ID, testInput("Essay draft", "history"))
	require.NoError(t, err)

	tag, ok := tracker.Tags.Get("history")
	require.True(t, ok)
	assert.Equal(t, 1, tag.Count)
}

func TestUpdateSessionPreservesCreatedAt(t *testing.T) {
	tracker := newTestTracker(t)

	s, err := tracker.CreateSession(testInput("Chemistry notes"))
	require.NoError(t, err)

	updated, err := tracker.UpdateSession(s.ID, testInput("Chemistry notes v2"))
	require.NoError(t, err)

	assert.Equal(t, s.CreatedAt, updated.CreatedAt)
	assert.GreaterOrEqual(t, updated.UpdatedAt, updated.CreatedAt)
	assert.Equal(t, "Chemistry notes v2", updated.Title)
}

func TestUpdateSessionUnknownID(t *testing.T) {
	tracker := newTestTracker(t)
	_, err := tracker.UpdateSession("missing", testInput("Whatever"))
	assert.Error(t, err)
}

func TestDeleteSessionMovesToBin(t *testing.T) {
	tracker := newTestTracker(t)

	s, err := tracker.CreateSession(testInput("Flashcards", "Revision"))
	require.NoError(t, err)

	deleted, err := tracker.DeleteSession(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, deleted.ID)

	assert.Equal(t, 0, tracker.Sessions.Len())
	assert.Equal(t, 1, tracker.Bin.Len())

	revision, _ := tracker.Tags.Get("revision")
	assert.Equal(t, 0, revision.Count)
}

func TestRestoreSessionReacquiresTags(t *testing.T) {
	tracker := newTestTracker(t)

	s, err := tracker.CreateSession(testInput("Flashcards", "Revision"))
	require.NoError(t, err)
	_, err = tracker.DeleteSession(s.ID)
	require.NoError(t, err)

	restored, err := tracker.RestoreSession(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, restored.ID)

	assert.Equal(t, 1, tracker.Sessions.Len())
	assert.Equal(t, 0, tracker.Bin.Len())

	revision, _ := tracker.Tags.Get("revision")
	assert.Equal(t, 1, revision.Count)
}

func TestRestoreRecreatesDeletedTag(t *testing.T) {
	tracker := newTestTracker(t)

	s, err := tracker.CreateSession(testInput("Vocab drill", "Spanish"))
	require.NoError(t, err)
	_, err = tracker.DeleteSession(s.ID)
	require.NoError(t, err)

	require.NoError(t, tracker.Tags.Delete("Spanish"))

	_, err = tracker.RestoreSession(s.ID)
	require.NoError(t, err)

	tag, ok := tracker.Tags.Get("spanish")
	require.True(t, ok)
	assert.Equal(t, 1, tag.Count)
}

func TestDeleteByUniquePrefix(t *testing.T) {
	tracker := newTestTracker(t)

	s, err := tracker.CreateSession(testInput("Mock exam"))
	require.NoError(t, err)

	_, err = tracker.DeleteSession(s.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, 0, tracker.Sessions.Len())
}

func TestTrackerStatePersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studylog.db")

	st, err := store.Open(path)
	require.NoError(t, err)
	tracker := NewTracker(st, 7*24*time.Hour, zerolog.Nop())
	s, err := tracker.CreateSession(testInput("Persisted", "Math"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = store.Open(path)
	require.NoError(t, err)
	defer st.Close()
	tracker = NewTracker(st, 7*24*time.Hour, zerolog.Nop())

	got, ok := tracker.Sessions.Get(s.ID)
	require.True(t, ok)
	assert.Equal(t, "Persisted", got.Title)

	tag, ok := tracker.Tags.Get("math")
	require.True(t, ok)
	assert.Equal(t, 1, tag.Count)
}
