package storage

import (
	"context"
	"fmt"
	"path/filepath"
)

// ResumeStore persists resume files at a path addressable later.
type ResumeStore interface {
	// Save stores the file and returns the path it is addressable by.
	Save(ctx context.Context, userID int64, filename string, data []byte) (string, error)
	// Delete removes a previously saved file by its path.
	Delete(ctx context.Context, path string) error
}

// ResumeKey derives the storage path for a resume. Files are segregated
// per user so identical filenames from different applicants never collide.
func ResumeKey(userID int64, filename string) string {
	return fmt.Sprintf("resumes/user_%d/%s", userID, filepath.Base(filename))
}
