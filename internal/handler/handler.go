package handler

import (
	"github.com/rs/zerolog"

	"github.com/clipworks/video-portal-api/internal/usecase"
	"github.com/clipworks/video-portal-api/shared/validator"
)

// Handler carries the HTTP layer's dependencies. Every endpoint binds its
// parameters into a typed payload, validates, then calls exactly one
// usecase.
type Handler struct {
	logger     zerolog.Logger
	validate   *validator.Validator
	account    usecase.AccountUsecase
	video      usecase.VideoUsecase
	admin      usecase.AdminUsecase
	auth       usecase.AuthUsecase
	uploadRoot string
}

// Dependencies holds everything the handlers need.
type Dependencies struct {
	Logger     zerolog.Logger
	Validator  *validator.Validator
	Account    usecase.AccountUsecase
	Video      usecase.VideoUsecase
	Admin      usecase.AdminUsecase
	Auth       usecase.AuthUsecase
	UploadRoot string
}

// New creates the portal's HTTP handler set.
func New(deps Dependencies) *Handler {
	return &Handler{
		logger:     deps.Logger,
		validate:   deps.Validator,
		account:    deps.Account,
		video:      deps.Video,
		admin:      deps.Admin,
		auth:       deps.Auth,
		uploadRoot: deps.UploadRoot,
	}
}
