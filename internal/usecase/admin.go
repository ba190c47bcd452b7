package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/clipworks/video-portal-api/internal/model"
	"github.com/clipworks/video-portal-api/internal/repository"
)

// OnlineWindow is how recently a user must have been active to count as
// online on the admin dashboard.
const OnlineWindow = 15 * time.Minute

// AdminUsecase computes the aggregate dashboard statistics and the per-user
// detail view.
type AdminUsecase interface {
	Stats(ctx context.Context, now time.Time) (*AdminStats, error)
	UserDetail(ctx context.Context, userID string) (*UserDetail, error)
}

// AdminStats are the portal-wide dashboard counters.
type AdminStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	ActiveUsers    int64 `json:"activeUsers"`
	SuspendedUsers int64 `json:"suspendedUsers"`
	OnlineUsers    int64 `json:"onlineUsers"`
	TotalVideos    int64 `json:"totalVideos"`
}

// UserDetail joins a user (password excluded) with their uploads, newest
// first.
type UserDetail struct {
	User  *model.User   `json:"user"`
	Files []FileSummary `json:"files"`
}

// FileSummary is the reduced upload record shown on the admin user page.
type FileSummary struct {
	ID           string    `json:"_id"`
	OriginalName string    `json:"originalName"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type adminUsecase struct {
	userRepo repository.UserRepository
	fileRepo repository.FileRepository
}

func NewAdminUsecase(userRepo repository.UserRepository, fileRepo repository.FileRepository) AdminUsecase {
	return &adminUsecase{
		userRepo: userRepo,
		fileRepo: fileRepo,
	}
}

// Stats aggregates the dashboard counters at the given request time. Online
// means lastActive within OnlineWindow of now.
func (u *adminUsecase) Stats(ctx context.Context, now time.Time) (*AdminStats, error) {
	total, err := u.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	active, err := u.userRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	suspended, err := u.userRepo.CountSuspended(ctx)
	if err != nil {
		return nil, err
	}

	online, err := u.userRepo.CountOnline(ctx, now.Add(-OnlineWindow))
	if err != nil {
		return nil, err
	}

	videos, err := u.fileRepo.TotalClipCount(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		TotalUsers:     total,
		ActiveUsers:    active,
		SuspendedUsers: suspended,
		OnlineUsers:    online,
		TotalVideos:    videos,
	}, nil
}

func (u *adminUsecase) UserDetail(ctx context.Context, userID string) (*UserDetail, error) {
	user, err := u.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	files, err := u.fileRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]FileSummary, 0, len(files))
	for _, file := range files {
		summaries = append(summaries, FileSummary{
			ID:           file.ID.Hex(),
			OriginalName: file.OriginalName,
			Status:       file.Status,
			CreatedAt:    file.CreatedAt,
		})
	}

	return &UserDetail{User: user, Files: summaries}, nil
}
