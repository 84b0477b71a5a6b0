package model

// ExpRecord is the lifetime experience counter for a user.
// Level is always derived from Exp, never stored.
type ExpRecord struct {
	UserID string `json:"userId"`
	Exp    int    `json:"exp"`
}

// XPResult is returned after an XP award.
type XPResult struct {
	TotalExp        int  `json:"totalExp"`
	Level           int  `json:"level"`
	XPGained        int  `json:"xpGained"`
	IsLevelUp       bool `json:"isLevelUp"`
	CurrentLevelExp int  `json:"currentLevelExp"`
	NextLevelExp    int  `json:"nextLevelExp"`
}
