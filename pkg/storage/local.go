package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes resumes to a directory on disk.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) Save(_ context.Context, userID int64, filename string, data []byte) (string, error) {
	key := ResumeKey(userID, filename)
	fullPath := filepath.Join(s.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create resume directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write resume file: %w", err)
	}

	return key, nil
}

func (s *LocalStore) Delete(_ context.Context, path string) error {
	fullPath := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove resume file: %w", err)
	}
	return nil
}
