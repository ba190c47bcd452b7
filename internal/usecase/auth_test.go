package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/clipworks/video-portal-api/internal/model"
	"github.com/clipworks/video-portal-api/shared/auth"
	"github.com/clipworks/video-portal-api/shared/security"
)

func newAuthFixture(t *testing.T, userRepo *MockUserRepository, sessionRepo *MockSessionRepository) AuthUsecase {
	t.Helper()
	jwtAuth := auth.NewJWTAuthenticator("test-secret", "video-portal-api")
	return NewAuthUsecase(userRepo, sessionRepo, jwtAuth, time.Hour)
}

func TestLogin(t *testing.T) {
	hash, err := security.HashPassword("s3cret")
	require.NoError(t, err)

	user := &model.User{UserID: "u-1", Email: "ada@example.com", Password: hash, IsAdmin: true}

	userRepo := &MockUserRepository{}
	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(user, nil)

	sessionRepo := &MockSessionRepository{}
	sessionRepo.On("CreateSession", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
		return s.UserID == "u-1" && s.JTI != ""
	})).Return(&model.Session{UserID: "u-1"}, nil)

	u := newAuthFixture(t, userRepo, sessionRepo)

	result, err := u.Login(context.Background(), LoginParams{Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal(t, "u-1", result.UserID)
	assert.NotEmpty(t, result.AccessToken)
	sessionRepo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := security.HashPassword("s3cret")
	require.NoError(t, err)

	userRepo := &MockUserRepository{}
	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(&model.User{UserID: "u-1", Password: hash}, nil)

	u := newAuthFixture(t, userRepo, &MockSessionRepository{})

	_, err = u.Login(context.Background(), LoginParams{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	u := newAuthFixture(t, userRepo, &MockSessionRepository{})

	_, err := u.Login(context.Background(), LoginParams{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifySession(t *testing.T) {
	t.Run("live session", func(t *testing.T) {
		sessionRepo := &MockSessionRepository{}
		sessionRepo.On("GetByJTI", mock.Anything, "jti-1").
			Return(&model.Session{JTI: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		u := newAuthFixture(t, &MockUserRepository{}, sessionRepo)
		assert.NoError(t, u.VerifySession(context.Background(), "jti-1"))
	})

	t.Run("expired session", func(t *testing.T) {
		sessionRepo := &MockSessionRepository{}
		sessionRepo.On("GetByJTI", mock.Anything, "jti-2").
			Return(&model.Session{JTI: "jti-2", ExpiresAt: time.Now().Add(-time.Minute)}, nil)

		u := newAuthFixture(t, &MockUserRepository{}, sessionRepo)
		assert.ErrorIs(t, u.VerifySession(context.Background(), "jti-2"), ErrSessionExpired)
	})

	t.Run("unknown session", func(t *testing.T) {
		sessionRepo := &MockSessionRepository{}
		sessionRepo.On("GetByJTI", mock.Anything, "jti-3").Return(nil, mongo.ErrNoDocuments)

		u := newAuthFixture(t, &MockUserRepository{}, sessionRepo)
		assert.ErrorIs(t, u.VerifySession(context.Background(), "jti-3"), ErrSessionNotFound)
	})
}
