package data

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultToZero(t *testing.T) {
	s := NewSettings(newTestStore(t), zerolog.Nop())
	assert.Equal(t, 0, s.WeeklyGoal())
	assert.Equal(t, 0, s.DailyMinimum())
}

func TestSettingsRoundTrip(t *testing.T) {
	s := NewSettings(newTestStore(t), zerolog.Nop())

	require.NoError(t, s.SetWeeklyGoal(300))
	require.NoError(t, s.SetDailyMinimum(20))

	assert.Equal(t, 300, s.WeeklyGoal())
	assert.Equal(t, 20, s.DailyMinimum())
}

func TestSettingsRejectNegative(t *testing.T) {
	s := NewSettings(newTestStore(t), zerolog.Nop())
	assert.Error(t, s.SetWeeklyGoal(-1))
	assert.Error(t, s.SetDailyMinimum(-5))
}

func TestSettingsUnparseableValueReadsAsZero(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Put(KeyWeeklyGoal, "not a number"))

	s := NewSettings(st, zerolog.Nop())
	assert.Equal(t, 0, s.WeeklyGoal())
}
