package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/clipworks/video-portal-api/internal/model"
	"github.com/clipworks/video-portal-api/internal/repository"
)

// AccountUsecase defines the read model over user accounts and their token
// accounting.
type AccountUsecase interface {
	Profile(ctx context.Context, userID string) (*Profile, error)
	TokenHistory(ctx context.Context, userID string) (*TokenHistory, error)
	ExecutionTokenSummary(ctx context.Context, userID, executionID string) (*ExecutionTokenSummary, error)
	Touch(ctx context.Context, userID string, at time.Time) error
}

// Profile is the portal profile projection of a user.
type Profile struct {
	UserID string
	Name   string
	Tokens int64
}

// TokenHistory is a user's balance with their full change history.
type TokenHistory struct {
	Tokens  int64
	History []model.TokenHistoryRecord
}

// ExecutionTokenSummary reports the tokens one processing run consumed.
// TokensUsed sums the absolute deltas of the run's negative changes and
// ClipCount is the number of such changes, one per produced clip.
type ExecutionTokenSummary struct {
	TokensUsed      int64
	TokensRemaining int64
	ClipCount       int
}

var ErrUserNotFound = errors.New("user not found")

type accountUsecase struct {
	userRepo         repository.UserRepository
	tokenHistoryRepo repository.TokenHistoryRepository
}

func NewAccountUsecase(
	userRepo repository.UserRepository,
	tokenHistoryRepo repository.TokenHistoryRepository,
) AccountUsecase {
	return &accountUsecase{
		userRepo:         userRepo,
		tokenHistoryRepo: tokenHistoryRepo,
	}
}

func (u *accountUsecase) Profile(ctx context.Context, userID string) (*Profile, error) {
	user, err := u.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	// A user document without a tokens field decodes to a zero balance.
	return &Profile{
		UserID: user.UserID,
		Name:   user.Name,
		Tokens: user.Tokens,
	}, nil
}

func (u *accountUsecase) TokenHistory(ctx context.Context, userID string) (*TokenHistory, error) {
	user, err := u.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	history := user.TokenHistory
	if history == nil {
		records, err := u.tokenHistoryRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		history = records
	}

	if history == nil {
		history = []model.TokenHistoryRecord{}
	}

	return &TokenHistory{Tokens: user.Tokens, History: history}, nil
}

func (u *accountUsecase) ExecutionTokenSummary(
	ctx context.Context,
	userID, executionID string,
) (*ExecutionTokenSummary, error) {
	records, err := u.tokenHistoryRepo.ListConsumedByExecution(ctx, userID, executionID)
	if err != nil {
		return nil, err
	}

	var used int64
	for _, record := range records {
		used += -record.Change
	}

	var remaining int64
	user, err := u.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
	} else {
		remaining = user.Tokens
	}

	return &ExecutionTokenSummary{
		TokensUsed:      used,
		TokensRemaining: remaining,
		ClipCount:       len(records),
	}, nil
}

// Touch marks the user as active now. The write is a single-document $set,
// so concurrent touches need no coordination beyond the store's own
// per-document atomicity.
func (u *accountUsecase) Touch(ctx context.Context, userID string, at time.Time) error {
	matched, err := u.userRepo.TouchLastActive(ctx, userID, at)
	if err != nil {
		return err
	}

	if matched == 0 {
		return ErrUserNotFound
	}

	return nil
}
