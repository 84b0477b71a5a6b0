package handler

import (
	"net/http"

	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/engagement"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/utils"
)

// Handler groups the HTTP handlers around their injected dependencies.
type Handler struct {
	service *engagement.Service
	sender  engagement.ReminderSender
}

func New(service *engagement.Service, sender engagement.ReminderSender) *Handler {
	return &Handler{service: service, sender: sender}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
