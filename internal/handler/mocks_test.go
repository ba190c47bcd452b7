package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/clipworks/video-portal-api/internal/usecase"
)

type MockAccountUsecase struct {
	mock.Mock
}

func (m *MockAccountUsecase) Profile(ctx context.Context, userID string) (*usecase.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Profile), args.Error(1)
}

func (m *MockAccountUsecase) TokenHistory(ctx context.Context, userID string) (*usecase.TokenHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TokenHistory), args.Error(1)
}

func (m *MockAccountUsecase) ExecutionTokenSummary(ctx context.Context, userID, executionID string) (*usecase.ExecutionTokenSummary, error) {
	args := m.Called(ctx, userID, executionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ExecutionTokenSummary), args.Error(1)
}

func (m *MockAccountUsecase) Touch(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

type MockVideoUsecase struct {
	mock.Mock
}

func (m *MockVideoUsecase) ActiveJobs(ctx context.Context, userID string) ([]usecase.ActiveJob, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.ActiveJob), args.Error(1)
}

func (m *MockVideoUsecase) SoftDelete(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockVideoUsecase) ResolveDownload(ctx context.Context, fileID string) (*usecase.Download, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Download), args.Error(1)
}

type MockAdminUsecase struct {
	mock.Mock
}

func (m *MockAdminUsecase) Stats(ctx context.Context, now time.Time) (*usecase.AdminStats, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.AdminStats), args.Error(1)
}

func (m *MockAdminUsecase) UserDetail(ctx context.Context, userID string) (*usecase.UserDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.UserDetail), args.Error(1)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, params usecase.LoginParams) (*usecase.LoginResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LoginResult), args.Error(1)
}

func (m *MockAuthUsecase) VerifySession(ctx context.Context, jti string) error {
	args := m.Called(ctx, jti)
	return args.Error(0)
}
