package model

// LeaderboardPoint is the rolling weekly XP snapshot. It has an
// independent lifecycle from ExpRecord: the scheduler zeroes it every
// Monday while lifetime XP keeps growing.
type LeaderboardPoint struct {
	UserID    string `json:"userId"`
	WeeklyExp int    `json:"weeklyExp"`
}

type LeaderboardEntry struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Rank      int    `json:"rank"`
	WeeklyExp int    `json:"weeklyExp"`
}
