package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"voiceover-app/internal/domain/artifact"
)

// FileStore keeps each request's artifacts in its own subdirectory of
// a base directory (default output/).
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "output"
	}
	return &FileStore{Dir: dir}
}

// Allocate creates {dir}/{uuid}/ for a new request.
func (fs *FileStore) Allocate() (artifact.ID, string, error) {
	id := uuid.NewString()
	dir := filepath.Join(fs.Dir, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create request dir: %w", err)
	}
	return artifact.ID(id), dir, nil
}

// Resolve maps an ID back to {dir}/{id}/{name}. The ID must parse as a
// UUID so a crafted ID cannot escape the base directory.
func (fs *FileStore) Resolve(id artifact.ID, name string) (string, error) {
	if _, err := uuid.Parse(string(id)); err != nil {
		return "", fmt.Errorf("invalid artifact id %q", id)
	}
	path := filepath.Join(fs.Dir, string(id), name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("artifact %s/%s not found", id, name)
	}
	return path, nil
}
