package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/handler"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/logger"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/middleware"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)

	// Engagement
	r.HandleFunc("/users/{userId}/streak", h.UpdateStreak).Methods(http.MethodPost)
	r.HandleFunc("/users/{userId}/xp", h.AddXP).Methods(http.MethodPost)
	r.HandleFunc("/users/{userId}/listening/complete", h.CompleteListening).Methods(http.MethodPost)
	r.HandleFunc("/users/{userId}/stats/dashboard", h.GetDashboardStats).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard/weekly", h.GetWeeklyLeaderboard).Methods(http.MethodGet)

	// Ops
	r.HandleFunc("/admin/reminders/run", h.RunReminders).Methods(http.MethodPost)
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return middleware.CORSMiddleware(r)
}
