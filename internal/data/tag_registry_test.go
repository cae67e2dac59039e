package data

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *TagRegistry {
	t.Helper()
	return NewTagRegistry(newTestStore(t), zerolog.Nop())
}

func TestRegistrySeedsDefaults(t *testing.T) {
	reg := newTestRegistry(t)

	tags := reg.List()
	require.Len(t, tags, len(DefaultTags))
	for i, name := range DefaultTags {
		assert.Equal(t, name, tags[i].Name)
		assert.Equal(t, 0, tags[i].Count)
	}
}

func TestAddIfMissingIsIdempotent(t *testing.T) {
	reg := newTestRegistry(t)

	reg.AddIfMissing("Math")
	reg.Increment("Math")
	reg.AddIfMissing("math") // same normalized id, keeps name and count

	tag, ok := reg.Get("MATH")
	require.True(t, ok)
	assert.Equal(t, "Math", tag.Name)
	assert.Equal(t, 1, tag.Count)
	assert.Len(t, reg.List(), len(DefaultTags)+1)
}

func TestIncrementCreatesWhenAbsent(t *testing.T) {
	reg := newTestRegistry(t)

	reg.Increment("Physics")

	tag, ok := reg.Get("physics")
	require.True(t, ok)
	assert.Equal(t, 1, tag.Count)
}

func TestDecrementFloorsAtZero(t *testing.T) {
	reg := newTestRegistry(t)

	reg.Decrement("Exam")
	tag, _ := reg.Get("exam")
	assert.Equal(t, 0, tag.Count)

	// Decrementing an unknown tag does not create it.
	reg.Decrement("ghost")
	_, ok := reg.Get("ghost")
	assert.False(t, ok)
}

func TestUpdateUsage(t *testing.T) {
	reg := newTestRegistry(t)

	reg.UpdateUsage(nil, []string{"Math", "Exam"})
	math, _ := reg.Get("math")
	exam, _ := reg.Get("exam")
	assert.Equal(t, 1, math.Count)
	assert.Equal(t, 1, exam.Count)

	reg.UpdateUsage([]string{"Math", "Exam"}, []string{"Exam", "Reading"})
	math, _ = reg.Get("math")
	exam, _ = reg.Get("exam")
	reading, _ := reg.Get("reading")
	assert.Equal(t, 0, math.Count)
	assert.Equal(t, 1, exam.Count)
	assert.Equal(t, 1, reading.Count)
}

func TestUpdateUsageIgnoresCaseAndSpacing(t *testing.T) {
	reg := newTestRegistry(t)

	reg.UpdateUsage(nil, []string{"Math"})
	reg.UpdateUsage([]string{"Math"}, []string{" math "})

	tag, _ := reg.Get("math")
	assert.Equal(t, 1, tag.Count)
}

func TestDeleteTagInUse(t *testing.T) {
	reg := newTestRegistry(t)

	reg.Increment("Exam")
	err := reg.Delete("Exam")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in use")

	_, ok := reg.Get("exam")
	assert.True(t, ok)
}

func TestDeleteUnusedTag(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, reg.Delete("Reading"))
	_, ok := reg.Get("reading")
	assert.False(t, ok)
	assert.Len(t, reg.List(), len(DefaultTags)-1)
}

func TestDeleteUnknownTag(t *testing.T) {
	reg := newTestRegistry(t)
	assert.Error(t, reg.Delete("nope"))
}

func TestMergeImportedMatchesByDisplayName(t *testing.T) {
	reg := newTestRegistry(t)

	reg.MergeImported("exam") // matches default "Exam" case-insensitively
	tag, _ := reg.Get("exam")
	assert.Equal(t, 1, tag.Count)
	assert.Equal(t, "Exam", tag.Name)

	reg.MergeImported("Biology") // no match, fresh entry with count 1
	found := false
	for _, tag := range reg.List() {
		if tag.Name == "Biology" {
			found = true
			assert.Equal(t, 1, tag.Count)
			assert.NotEqual(t, "biology", tag.ID) // generated id, not normalized name
		}
	}
	assert.True(t, found)
}

func TestRegistryPersistsRenamesAndCounts(t *testing.T) {
	st := newTestStore(t)

	reg := NewTagRegistry(st, zerolog.Nop())
	reg.Increment("Math")
	reg.Increment("Math")
	reg.Increment("Exam")

	reg = NewTagRegistry(st, zerolog.Nop())
	math, ok := reg.Get("math")
	require.True(t, ok)
	assert.Equal(t, 2, math.Count)
	exam, _ := reg.Get("exam")
	assert.Equal(t, 1, exam.Count)
}

func TestFormatTagName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"math", "Math"},
		{"MATH", "Math"},
		{" mIxEd ", "Mixed"},
		{"", ""},
		{"x", "X"},
		{"édu", "Édu"},
		{"ÉDU", "Édu"},
		{"é", "É"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTagName(tt.input))
	}
}
