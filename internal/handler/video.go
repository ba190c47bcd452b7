package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/clipworks/video-portal-api/internal/payload"
	"github.com/clipworks/video-portal-api/internal/usecase"
)

// ActiveJobs handles GET /api/v1/videos/active.
func (h *Handler) ActiveJobs(w http.ResponseWriter, r *http.Request) {
	query := payload.ActiveJobsQuery{UserID: r.URL.Query().Get("userId")}
	if err := h.validate.Struct(query); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	jobs, err := h.video.ActiveJobs(r.Context(), query.UserID)
	if err != nil {
		h.respondInternal(w, err, "failed to list active jobs")
		return
	}

	h.respondJSON(w, http.StatusOK, payload.ActiveJobsResponse{
		Success: true,
		Videos:  jobs,
	})
}

// SoftDelete handles PATCH /api/v1/videos. The file record is flagged
// deleted; its bytes stay on disk.
func (h *Handler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	var req payload.SoftDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.video.SoftDelete(r.Context(), req.FileID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidFileID):
			h.respondError(w, http.StatusBadRequest, "Invalid file id.")
		case errors.Is(err, usecase.ErrFileNotFound):
			h.respondError(w, http.StatusNotFound, "File not found.")
		default:
			h.respondInternal(w, err, "failed to delete file")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, payload.MessageResponse{
		Success: true,
		Message: "File marked as deleted.",
	})
}

// Download handles GET /api/v1/videos/download. Failures return JSON; a hit
// streams the original bytes as a zip attachment.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	query := payload.DownloadQuery{FileID: r.URL.Query().Get("fileId")}
	if err := h.validate.Struct(query); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	download, err := h.video.ResolveDownload(r.Context(), query.FileID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidFileID):
			h.respondError(w, http.StatusBadRequest, "Invalid file id.")
		case errors.Is(err, usecase.ErrFileNotFound):
			h.logger.Warn().Str("file_id", query.FileID).Msg("download requested for unknown file record")
			h.respondError(w, http.StatusNotFound, "File not found.")
		case errors.Is(err, usecase.ErrFileMissing):
			h.logger.Warn().Str("file_id", query.FileID).Msg("download requested but original is missing on disk")
			h.respondError(w, http.StatusNotFound, "File not found.")
		default:
			h.respondInternal(w, err, "failed to resolve download")
		}
		return
	}

	f, err := os.Open(download.Path)
	if err != nil {
		h.respondInternal(w, err, "failed to open original file")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, download.OriginalName))

	if _, err := io.Copy(w, f); err != nil {
		// Headers are already out; nothing left to tell the client.
		h.logger.Error().Err(err).Str("file_id", query.FileID).Msg("download stream interrupted")
	}
}
