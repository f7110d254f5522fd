package storage

import (
	"os"
	"path/filepath"
	"testing"

	"voiceover-app/internal/domain/artifact"
)

func TestAllocateAndResolve(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	id, dir, err := fs.Allocate()
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if filepath.Base(dir) != string(id) {
		t.Errorf("dir %s does not end in id %s", dir, id)
	}

	path := filepath.Join(dir, artifact.AudioFile)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := fs.Resolve(id, artifact.AudioFile)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != path {
		t.Errorf("Resolve = %s, want %s", got, path)
	}
}

func TestResolveRejectsBadIDs(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	for _, id := range []string{"", "not-a-uuid", "../../etc/passwd"} {
		if _, err := fs.Resolve(artifact.ID(id), artifact.VideoFile); err == nil {
			t.Errorf("id %q accepted, want error", id)
		}
	}
}

func TestResolveMissingArtifact(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	id, _, err := fs.Allocate()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Resolve(id, artifact.VideoFile); err == nil {
		t.Error("expected error for missing artifact file")
	}
}
