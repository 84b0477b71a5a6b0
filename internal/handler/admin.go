package handler

import (
	"net/http"

	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/utils"
)

// RunReminders triggers the daily reminder batch manually. The
// scheduler runs the same batch once per day; this endpoint exists for
// operations and testing.
func (h *Handler) RunReminders(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.RunDailyReminders(r.Context(), h.sender)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not run reminder batch", err)
		return
	}

	utils.Success(w, report)
}
