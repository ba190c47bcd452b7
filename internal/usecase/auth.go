package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/clipworks/video-portal-api/internal/model"
	"github.com/clipworks/video-portal-api/internal/repository"
	"github.com/clipworks/video-portal-api/shared/auth"
	"github.com/clipworks/video-portal-api/shared/security"
)

// AuthUsecase issues server-verified sessions. The portal previously trusted
// a userId kept in browser local storage; every admin route now requires a
// signed token backed by a session document.
type AuthUsecase interface {
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)
	VerifySession(ctx context.Context, jti string) error
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

// LoginResult carries the signed session token and its subject.
type LoginResult struct {
	UserID      string
	AccessToken string
	ExpiresAt   time.Time
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

type authUsecase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtAuth     auth.JWTAuthenticator
	tokenTTL    time.Duration
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtAuth auth.JWTAuthenticator,
	tokenTTL time.Duration,
) AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtAuth:     jwtAuth,
		tokenTTL:    tokenTTL,
	}
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(params.Password, user.Password); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	token, jti, err := u.jwtAuth.GenerateToken(user.UserID, user.IsAdmin, u.tokenTTL)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(u.tokenTTL)
	if _, err := u.sessionRepo.CreateSession(ctx, &model.Session{
		UserID:    user.UserID,
		JTI:       jti,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:      user.UserID,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// VerifySession confirms a token's JTI still maps to a live session.
func (u *authUsecase) VerifySession(ctx context.Context, jti string) error {
	session, err := u.sessionRepo.GetByJTI(ctx, jti)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSessionNotFound
		}

		return err
	}

	if time.Now().After(session.ExpiresAt) {
		return ErrSessionExpired
	}

	return nil
}
