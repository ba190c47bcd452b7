package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clipworks/video-portal-api/internal/payload"
	"github.com/clipworks/video-portal-api/internal/usecase"
	"github.com/clipworks/video-portal-api/shared/scanner"
)

// AdminStats handles GET /api/v1/admin/stats.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context(), time.Now())
	if err != nil {
		h.respondInternal(w, err, "failed to compute admin stats")
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// AdminUserDetail handles GET /api/v1/admin/users/{userId}.
func (h *Handler) AdminUserDetail(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		h.respondError(w, http.StatusBadRequest, "UserID is a required field")
		return
	}

	detail, err := h.admin.UserDetail(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found.")
			return
		}

		h.respondInternal(w, err, "failed to fetch user detail")
		return
	}

	h.respondJSON(w, http.StatusOK, payload.UserDetailResponse{
		Success: true,
		User:    detail,
	})
}

// AdminStorage handles GET /api/v1/admin/storage: a recursive listing of the
// upload root, or of a subdirectory given by the path query parameter.
func (h *Handler) AdminStorage(w http.ResponseWriter, r *http.Request) {
	query := payload.StorageQuery{Path: r.URL.Query().Get("path")}

	// Cleaning against a rooted path confines the listing to the upload root.
	rel := filepath.Clean("/" + query.Path)

	tree, err := scanner.Scan(filepath.Join(h.uploadRoot, rel))
	if err != nil {
		if os.IsNotExist(err) {
			h.respondError(w, http.StatusNotFound, "Directory not found.")
			return
		}

		h.respondInternal(w, err, "failed to scan storage")
		return
	}

	h.respondJSON(w, http.StatusOK, payload.StorageResponse{
		Success: true,
		Tree:    tree,
	})
}
