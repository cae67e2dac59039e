package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "studylog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestStorePutGet(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Put("study_tracker_sessions", `[]`))

	value, ok, err := st.Get("study_tracker_sessions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)
}

func TestStoreGetMissingKey(t *testing.T) {
	st := openTestStore(t)

	value, ok, err := st.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestStorePutReplacesValue(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Put("weeklyGoal", "300"))
	require.NoError(t, st.Put("weeklyGoal", "450"))

	value, ok, err := st.Get("weeklyGoal")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "450", value)
}

func TestStoreDelete(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Put("k", "v"))
	require.NoError(t, st.Delete("k"))

	_, ok, err := st.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is fine.
	assert.NoError(t, st.Delete("k"))
}

func TestStoreCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "studylog.db")
	st, err := Open(path)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Put("k", "v"))
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studylog.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Put("dailyMinimum", "20"))
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()

	value, ok, err := st.Get("dailyMinimum")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "20", value)
}
