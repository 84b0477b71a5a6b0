package model

// StatsSummary is the read-only dashboard projection. Missing child
// records map to defaults (streak 0, level 1, exp 0), never to errors.
type StatsSummary struct {
	CurrentStreak     int     `json:"currentStreak"`
	LongestStreak     int     `json:"longestStreak"`
	Level             int     `json:"level"`
	Exp               int     `json:"exp"`
	CurrentLevelExp   int     `json:"currentLevelExp"`
	DaysListened      int     `json:"daysListened"`
	SessionsCompleted int     `json:"sessionsCompleted"`
	Accuracy          float64 `json:"accuracy"`
}
