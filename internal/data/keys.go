package data

// Store keys for the persisted documents. The names are carried over
// from the original tracker so existing data and export files keep
// working.
const (
	KeySessions     = "study_tracker_sessions"
	KeyTags         = "study_tracker_tags"
	KeyRecycleBin   = "study_tracker_recyclebin"
	KeyWeeklyGoal   = "weeklyGoal"
	KeyDailyMinimum = "dailyMinimum"
)
