package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/engagement"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/utils"
)

// engagementError maps the engagement error taxonomy onto HTTP codes:
// validation problems are the caller's fault, everything else is ours.
func engagementError(w http.ResponseWriter, msg string, err error) {
	if engagement.IsValidation(err) {
		utils.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	utils.Error(w, http.StatusInternalServerError, msg, err)
}

// UpdateStreak records today's activity on the user's streak.
func (h *Handler) UpdateStreak(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	record, err := h.service.UpdateStreak(r.Context(), userID)
	if err != nil {
		engagementError(w, "could not update streak", err)
		return
	}

	utils.Success(w, record)
}

// AddXP credits experience points to the user.
func (h *Handler) AddXP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	var body struct {
		Amount int `json:"amount"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	result, err := h.service.AddXP(r.Context(), userID, body.Amount)
	if err != nil {
		engagementError(w, "could not add xp", err)
		return
	}

	utils.Success(w, result)
}

// CompleteListening marks today's daily activity and applies the
// streak and XP effects of a finished listening session.
func (h *Handler) CompleteListening(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	var body struct {
		XP int `json:"xp"`
	}
	// Body is optional; an empty one falls back to the default award.
	if r.ContentLength > 0 {
		if err := utils.DecodeJSON(r, &body); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
			return
		}
	}

	result, err := h.service.CompleteListening(r.Context(), userID, body.XP)
	if err != nil {
		engagementError(w, "could not record listening session", err)
		return
	}

	utils.Success(w, result)
}

// GetDashboardStats returns the read-only dashboard summary.
func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	summary, err := h.service.GetDashboardStats(r.Context(), userID)
	if err != nil {
		engagementError(w, "could not fetch dashboard stats", err)
		return
	}

	utils.Success(w, summary)
}
