package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/clipworks/video-portal-api/internal/model"
	"github.com/clipworks/video-portal-api/internal/repository"
)

func TestActiveJobs(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	fileID := bson.NewObjectID()

	fileRepo := &MockFileRepository{}
	fileRepo.On("ListActiveByUser", mock.Anything, "u-1", int64(10)).
		Return([]model.ListFile{
			{ID: fileID, Status: model.FileStatusRunning, OriginalName: "holiday.mp4", CreatedAt: createdAt, QueuePosition: 2},
			{ID: bson.NewObjectID(), Status: model.FileStatusQueued, CreatedAt: createdAt.Add(-time.Hour)},
		}, nil)

	u := NewVideoUsecase(fileRepo, t.TempDir())

	jobs, err := u.ActiveJobs(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, fileID.Hex(), jobs[0].VideoID)
	assert.Equal(t, "holiday.mp4", jobs[0].Title)
	assert.Equal(t, model.FileStatusRunning, jobs[0].Status)
	assert.Equal(t, 2, jobs[0].QueuePosition)

	// A record without an original name falls back to the default title.
	assert.Equal(t, "Untitled Video", jobs[1].Title)
}

func TestSoftDelete(t *testing.T) {
	tests := []struct {
		name    string
		result  repository.MarkDeletedResult
		repoErr error
		wantErr error
	}{
		{
			name:   "existing file",
			result: repository.MarkDeletedResult{Matched: 1, Modified: 1},
		},
		{
			// Matching governs not-found; an unmodified match is still success.
			name:   "already deleted file",
			result: repository.MarkDeletedResult{Matched: 1, Modified: 0},
		},
		{
			name:    "unknown file",
			result:  repository.MarkDeletedResult{},
			wantErr: ErrFileNotFound,
		},
		{
			name:    "malformed id",
			repoErr: repository.ErrInvalidObjectID,
			wantErr: ErrInvalidFileID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileRepo := &MockFileRepository{}
			fileRepo.On("MarkDeleted", mock.Anything, mock.Anything).Return(tt.result, tt.repoErr)

			u := NewVideoUsecase(fileRepo, t.TempDir())

			err := u.SoftDelete(context.Background(), "whatever")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveDownload(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "extracts", "run-1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "extracts", "run-1", "holiday.zip"), []byte("zip"), 0o644))

	onDisk := &model.ListFile{
		ID:           bson.NewObjectID(),
		OriginalName: "holiday.zip",
		ExtractPath:  filepath.Join("extracts", "run-1"),
	}

	t.Run("resolves existing file", func(t *testing.T) {
		fileRepo := &MockFileRepository{}
		fileRepo.On("GetByID", mock.Anything, onDisk.ID.Hex()).Return(onDisk, nil)

		u := NewVideoUsecase(fileRepo, root)

		download, err := u.ResolveDownload(context.Background(), onDisk.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "extracts", "run-1", "holiday.zip"), download.Path)
		assert.Equal(t, "holiday.zip", download.OriginalName)
	})

	t.Run("record exists but file is gone", func(t *testing.T) {
		ghost := &model.ListFile{
			ID:           bson.NewObjectID(),
			OriginalName: "gone.zip",
			ExtractPath:  "extracts/run-1",
		}

		fileRepo := &MockFileRepository{}
		fileRepo.On("GetByID", mock.Anything, ghost.ID.Hex()).Return(ghost, nil)

		u := NewVideoUsecase(fileRepo, root)

		_, err := u.ResolveDownload(context.Background(), ghost.ID.Hex())
		assert.ErrorIs(t, err, ErrFileMissing)
	})

	t.Run("record absent", func(t *testing.T) {
		fileRepo := &MockFileRepository{}
		fileRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

		u := NewVideoUsecase(fileRepo, root)

		_, err := u.ResolveDownload(context.Background(), bson.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}
