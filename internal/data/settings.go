package data

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"studylog/internal/store"
)

// Settings exposes the two user-configured thresholds the analytics
// engine consumes. Both are stored as plain strings under their own
// keys and parse to 0 when absent or unreadable.
type Settings struct {
	store *store.Store
	log   zerolog.Logger
}

func NewSettings(st *store.Store, log zerolog.Logger) *Settings {
	return &Settings{store: st, log: log}
}

func (s *Settings) readInt(key string) int {
	raw, ok, err := s.store.Get(key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to read setting, using 0")
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		s.log.Warn().Str("key", key).Str("value", raw).Msg("unparseable setting, using 0")
		return 0
	}
	return n
}

func (s *Settings) writeInt(key string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s must not be negative", key)
	}
	return s.store.Put(key, strconv.Itoa(n))
}

// WeeklyGoal returns the weekly study target in minutes.
func (s *Settings) WeeklyGoal() int {
	return s.readInt(KeyWeeklyGoal)
}

// SetWeeklyGoal stores the weekly study target in minutes.
func (s *Settings) SetWeeklyGoal(minutes int) error {
	return s.writeInt(KeyWeeklyGoal, minutes)
}

// DailyMinimum returns the minutes a day needs before it counts toward
// streaks and calendar highlights.
func (s *Settings) DailyMinimum() int {
	return s.readInt(KeyDailyMinimum)
}

// SetDailyMinimum stores the daily qualification threshold in minutes.
func (s *Settings) SetDailyMinimum(minutes int) error {
	return s.writeInt(KeyDailyMinimum, minutes)
}
