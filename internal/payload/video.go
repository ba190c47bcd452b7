package payload

import "github.com/clipworks/video-portal-api/internal/usecase"

type ActiveJobsQuery struct {
	UserID string `validate:"required"`
}

type ActiveJobsResponse struct {
	Success bool                `json:"success"`
	Videos  []usecase.ActiveJob `json:"videos"`
}

type SoftDeleteRequest struct {
	FileID string `json:"fileId" validate:"required"`
}

type DownloadQuery struct {
	FileID string `validate:"required"`
}
