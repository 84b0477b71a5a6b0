package handler

import (
	"net/http"

	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/utils"
)

// Root lists the available routes of the engagement API.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Japanese Listening Trainer API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"engagement": []map[string]string{
				{"method": "POST", "path": "/users/{userId}/streak", "description": "Record today's activity on the streak"},
				{"method": "POST", "path": "/users/{userId}/xp", "description": "Credit experience points"},
				{"method": "POST", "path": "/users/{userId}/listening/complete", "description": "Record a finished listening session"},
				{"method": "GET", "path": "/users/{userId}/stats/dashboard", "description": "Dashboard summary"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard/weekly", "description": "Weekly XP ranking (params: limit)"},
			},
			"ops": []map[string]string{
				{"method": "POST", "path": "/admin/reminders/run", "description": "Run the daily reminder batch now"},
				{"method": "GET", "path": "/health", "description": "Health check"},
			},
		},
	}

	utils.Success(w, routes)
}
