package payload

import "github.com/clipworks/video-portal-api/internal/model"

// Query-string parameters are bound into these structs before any store
// access; a violation is a BadRequest.

type ProfileQuery struct {
	UserID string `validate:"required"`
}

type ProfileUser struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Tokens int64  `json:"tokens"`
}

type ProfileResponse struct {
	User ProfileUser `json:"user"`
}

type TokenHistoryQuery struct {
	UserID string `validate:"required"`
}

type TokenHistoryResponse struct {
	Tokens       int64                      `json:"tokens"`
	TokenHistory []model.TokenHistoryRecord `json:"tokenHistory"`
}

type ExecutionSummaryQuery struct {
	ExecutionID string `validate:"required"`
	UserID      string `validate:"required"`
}

type ExecutionSummaryResponse struct {
	Success         bool  `json:"success"`
	TokensUsed      int64 `json:"tokensUsed"`
	TokensRemaining int64 `json:"tokensRemaining"`
	ClipCount       int   `json:"clipCount"`
}

type HeartbeatRequest struct {
	UserID string `json:"userId" validate:"required"`
}
