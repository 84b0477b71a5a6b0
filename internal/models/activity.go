package model

import (
	"time"
)

// DailyActivity marks whether a user had a qualifying listening
// activity on a given calendar day. One logical row per user per day.
type DailyActivity struct {
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	DidListen bool      `json:"didListen"`
}

// ListeningTotals aggregates a user's listening history for the dashboard.
type ListeningTotals struct {
	DaysListened      int `json:"daysListened"`
	SessionsCompleted int `json:"sessionsCompleted"`
	QuizCorrect       int `json:"quizCorrect"`
	QuizAnswered      int `json:"quizAnswered"`
}

// ReminderTarget is one user eligible for the daily reminder email.
type ReminderTarget struct {
	Email    string `json:"email"`
	FullName string `json:"fullname"`
}
