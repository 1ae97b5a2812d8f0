package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalSaver writes uploads to a directory served as /uploads.
type LocalSaver struct {
	dir string
}

// NewLocalSaver creates the upload directory if needed.
func NewLocalSaver(dir string) (*LocalSaver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalSaver{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *LocalSaver) Dir() string {
	return s.dir
}

// Save writes data to a temp file and renames it into place, so a crash
// mid-write never leaves a partial file at the public name.
func (s *LocalSaver) Save(_ context.Context, originalName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	name := ObjectName(originalName)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	return "/uploads/" + name, nil
}
