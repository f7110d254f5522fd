package drive

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// Uploader uploads finished artifacts to Google Drive.
type Uploader struct {
	srv *gdrive.Service
}

func NewUploader(srv *gdrive.Service) *Uploader {
	return &Uploader{srv: srv}
}

// UploadFile uploads the file at localPath into the Drive folder
// (folderID, optional). dstFileName overrides the name; empty means
// the base name of localPath. Returns fileID and webViewLink.
func (u *Uploader) UploadFile(ctx context.Context, localPath, dstFileName, folderID string) (string, string, error) {
	if dstFileName == "" {
		dstFileName = filepath.Base(localPath)
	}
	f, err := os.Open(localPath)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	mimeType := mime.TypeByExtension(filepath.Ext(dstFileName))
	if mimeType == "" {
		mimeType = "video/mp4"
	}

	file := &gdrive.File{
		Name:     dstFileName,
		MimeType: mimeType,
	}
	if folderID != "" {
		file.Parents = []string{folderID}
	}

	mediaOpts := []googleapi.MediaOption{googleapi.ChunkSize(2 * 1024 * 1024)}
	created, err := u.srv.Files.Create(file).Context(ctx).Media(f, mediaOpts...).Do()
	if err != nil {
		return "", "", fmt.Errorf("drive upload failed: %w", err)
	}

	got, err := u.srv.Files.Get(created.Id).Fields("id,webViewLink").Context(ctx).Do()
	if err != nil {
		return created.Id, "", nil
	}
	return got.Id, got.WebViewLink, nil
}
