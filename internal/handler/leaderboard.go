package handler

import (
	"net/http"
	"strconv"

	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/utils"
)

// GetWeeklyLeaderboard returns the current weekly XP ranking.
func (h *Handler) GetWeeklyLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	entries, err := h.service.WeeklyLeaderboard(r.Context(), limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query leaderboard", err)
		return
	}

	utils.Success(w, entries)
}
