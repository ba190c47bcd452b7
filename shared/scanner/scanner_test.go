package scanner

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.mp4"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.zip"), []byte("b"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "clips", "run-1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "clips", "run-1", "clip.mp4"), []byte("c"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	folder, err := Scan(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.mp4", "b.zip"}, folder.Files)
	require.Contains(t, folder.Subfolders, "clips")
	require.Contains(t, folder.Subfolders, "empty")

	clips := folder.Subfolders["clips"]
	assert.Empty(t, clips.Files)
	require.Contains(t, clips.Subfolders, "run-1")
	assert.Equal(t, []string{"clip.mp4"}, clips.Subfolders["run-1"].Files)
}

func TestScanOmitsEmptyAttributes(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	folder, err := Scan(root)
	require.NoError(t, err)

	data, err := json.Marshal(folder.Subfolders["empty"])
	require.NoError(t, err)

	// An empty directory serializes to {}: neither files nor subfolders.
	assert.JSONEq(t, `{}`, string(data))

	data, err = json.Marshal(folder)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"files"`)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
