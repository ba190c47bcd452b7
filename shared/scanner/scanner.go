package scanner

import (
	"os"
	"path/filepath"
)

// Folder is the recursive listing of one directory. Empty attributes are
// omitted from JSON rather than serialized as empty collections.
type Folder struct {
	Files      []string           `json:"files,omitempty"`
	Subfolders map[string]*Folder `json:"subfolders,omitempty"`
}

// Scan recursively lists the plain files of dir and, for each subdirectory,
// attaches its own scan under Subfolders. Directory trees are acyclic by
// filesystem contract; symlinks are listed as plain files and not followed.
func Scan(dir string) (*Folder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	folder := &Folder{}
	for _, entry := range entries {
		if !entry.IsDir() {
			folder.Files = append(folder.Files, entry.Name())
			continue
		}

		sub, err := Scan(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		if folder.Subfolders == nil {
			folder.Subfolders = make(map[string]*Folder)
		}
		folder.Subfolders[entry.Name()] = sub
	}

	return folder, nil
}
