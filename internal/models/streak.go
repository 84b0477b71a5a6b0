package model

import (
	"time"
)

// StreakRecord tracks consecutive listening days for a user.
// LongestStreak is never lower than CurrentStreak, and LastActiveDate
// only ever moves forward.
type StreakRecord struct {
	UserID         string    `json:"userId"`
	CurrentStreak  int       `json:"currentStreak"`
	LongestStreak  int       `json:"longestStreak"`
	LastActiveDate time.Time `json:"lastActiveDate"`
}
