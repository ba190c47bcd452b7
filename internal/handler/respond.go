package handler

import (
	"encoding/json"
	"net/http"

	"github.com/clipworks/video-portal-api/internal/payload"
)

const genericErrorMessage = "Something went wrong. Please try again later."

func (h *Handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response body")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, payload.MessageResponse{Success: false, Message: message})
}

// respondInternal logs the raw error server-side and returns only a generic
// message to the caller.
func (h *Handler) respondInternal(w http.ResponseWriter, err error, context string) {
	h.logger.Error().Err(err).Msg(context)
	h.respondError(w, http.StatusInternalServerError, genericErrorMessage)
}
