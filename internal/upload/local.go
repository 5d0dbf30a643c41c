package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes uploaded image files to a directory on local disk.
// Stored filenames are opaque (uuid plus the original extension), so the
// filename a client sent never reaches the filesystem.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory uploaded files are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes one multipart file to the store and returns the filename it
// was stored under.
func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	filename := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return filename, nil
}

// Remove deletes a stored file by its filename.
func (s *LocalStore) Remove(filename string) error {
	path, err := s.safeJoin(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// safeJoin resolves filename relative to the store directory and rejects
// directory traversal.
func (s *LocalStore) safeJoin(filename string) (string, error) {
	absBase, err := filepath.Abs(s.dir)
	if err != nil {
		return "", fmt.Errorf("invalid upload directory: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}
