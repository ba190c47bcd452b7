package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/clipworks/video-portal-api/internal/payload"
	"github.com/clipworks/video-portal-api/internal/usecase"
)

// Profile handles GET /api/v1/users/profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	query := payload.ProfileQuery{UserID: r.URL.Query().Get("userId")}
	if err := h.validate.Struct(query); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.account.Profile(r.Context(), query.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found.")
			return
		}

		h.respondInternal(w, err, "failed to fetch profile")
		return
	}

	h.respondJSON(w, http.StatusOK, payload.ProfileResponse{
		User: payload.ProfileUser{
			UserID: profile.UserID,
			Name:   profile.Name,
			Tokens: profile.Tokens,
		},
	})
}

// TokenHistory handles GET /api/v1/users/tokens.
func (h *Handler) TokenHistory(w http.ResponseWriter, r *http.Request) {
	query := payload.TokenHistoryQuery{UserID: r.URL.Query().Get("userId")}
	if err := h.validate.Struct(query); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	history, err := h.account.TokenHistory(r.Context(), query.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found.")
			return
		}

		h.respondInternal(w, err, "failed to fetch token history")
		return
	}

	h.respondJSON(w, http.StatusOK, payload.TokenHistoryResponse{
		Tokens:       history.Tokens,
		TokenHistory: history.History,
	})
}

// ExecutionTokenSummary handles GET /api/v1/tokens/execution.
func (h *Handler) ExecutionTokenSummary(w http.ResponseWriter, r *http.Request) {
	query := payload.ExecutionSummaryQuery{
		ExecutionID: r.URL.Query().Get("executionId"),
		UserID:      r.URL.Query().Get("userId"),
	}
	if err := h.validate.Struct(query); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.account.ExecutionTokenSummary(r.Context(), query.UserID, query.ExecutionID)
	if err != nil {
		h.respondInternal(w, err, "failed to summarize execution tokens")
		return
	}

	h.respondJSON(w, http.StatusOK, payload.ExecutionSummaryResponse{
		Success:         true,
		TokensUsed:      summary.TokensUsed,
		TokensRemaining: summary.TokensRemaining,
		ClipCount:       summary.ClipCount,
	})
}

// Heartbeat handles POST /api/v1/users/heartbeat.
func (h *Handler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	var req payload.HeartbeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.account.Touch(r.Context(), req.UserID, time.Now()); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found.")
			return
		}

		h.respondInternal(w, err, "failed to update last active")
		return
	}

	h.respondJSON(w, http.StatusOK, payload.MessageResponse{
		Success: true,
		Message: "Last active updated.",
	})
}
