package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/clipworks/video-portal-api/internal/repository"
)

// activeJobsLimit caps how many unfinished jobs the dashboard polls for.
const activeJobsLimit = 10

// defaultVideoTitle stands in for uploads whose original name was lost.
const defaultVideoTitle = "Untitled Video"

// VideoUsecase covers the job read model, the soft delete and the download
// resolution of uploaded videos.
type VideoUsecase interface {
	ActiveJobs(ctx context.Context, userID string) ([]ActiveJob, error)
	SoftDelete(ctx context.Context, fileID string) error
	ResolveDownload(ctx context.Context, fileID string) (*Download, error)
}

// ActiveJob is the dashboard projection of an unfinished file record.
type ActiveJob struct {
	VideoID       string    `json:"videoId"`
	Status        string    `json:"status"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"createdAt"`
	QueuePosition int       `json:"queuePosition"`
}

// Download is a resolved, verified on-disk original ready to stream.
type Download struct {
	Path         string
	OriginalName string
}

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrFileMissing   = errors.New("file missing on disk")
	ErrInvalidFileID = errors.New("invalid file id")
)

type videoUsecase struct {
	fileRepo   repository.FileRepository
	uploadRoot string
}

// NewVideoUsecase creates a VideoUsecase. uploadRoot is the directory stored
// extract paths are relative to.
func NewVideoUsecase(fileRepo repository.FileRepository, uploadRoot string) VideoUsecase {
	return &videoUsecase{
		fileRepo:   fileRepo,
		uploadRoot: uploadRoot,
	}
}

func (u *videoUsecase) ActiveJobs(ctx context.Context, userID string) ([]ActiveJob, error) {
	files, err := u.fileRepo.ListActiveByUser(ctx, userID, activeJobsLimit)
	if err != nil {
		return nil, err
	}

	jobs := make([]ActiveJob, 0, len(files))
	for _, file := range files {
		title := file.OriginalName
		if title == "" {
			title = defaultVideoTitle
		}

		jobs = append(jobs, ActiveJob{
			VideoID:       file.ID.Hex(),
			Status:        file.Status,
			Title:         title,
			CreatedAt:     file.CreatedAt,
			QueuePosition: file.QueuePosition,
		})
	}

	return jobs, nil
}

// SoftDelete marks the file deleted. Re-deleting an already-deleted file
// still succeeds: the match, not the modification, governs not-found.
func (u *videoUsecase) SoftDelete(ctx context.Context, fileID string) error {
	result, err := u.fileRepo.MarkDeleted(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidObjectID) {
			return ErrInvalidFileID
		}

		return err
	}

	if result.Matched == 0 {
		return ErrFileNotFound
	}

	return nil
}

// ResolveDownload locates the original upload on disk. A missing record and
// a missing file are distinct failures so callers can log them apart.
func (u *videoUsecase) ResolveDownload(ctx context.Context, fileID string) (*Download, error) {
	file, err := u.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFileNotFound
		}
		if errors.Is(err, repository.ErrInvalidObjectID) {
			return nil, ErrInvalidFileID
		}

		return nil, err
	}

	name := file.OriginalName
	if name == "" {
		name = defaultVideoTitle
	}

	path := filepath.Join(u.uploadRoot, file.ExtractPath, file.OriginalName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileMissing
		}

		return nil, err
	}

	return &Download{Path: path, OriginalName: name}, nil
}
