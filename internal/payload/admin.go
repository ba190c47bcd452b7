package payload

import (
	"github.com/clipworks/video-portal-api/internal/usecase"
	"github.com/clipworks/video-portal-api/shared/scanner"
)

type UserDetailResponse struct {
	Success bool                `json:"success"`
	User    *usecase.UserDetail `json:"user"`
}

type StorageQuery struct {
	Path string
}

type StorageResponse struct {
	Success bool            `json:"success"`
	Tree    *scanner.Folder `json:"tree"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
