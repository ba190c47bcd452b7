package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clipworks/video-portal-api/internal/payload"
	"github.com/clipworks/video-portal-api/internal/usecase"
)

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.auth.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}

		h.respondInternal(w, err, "failed to log in")
		return
	}

	h.respondJSON(w, http.StatusOK, payload.LoginResponse{
		Success:     true,
		UserID:      result.UserID,
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
	})
}
