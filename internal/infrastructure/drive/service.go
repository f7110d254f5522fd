package drive

import (
	"context"
	"log"

	"voiceover-app/internal/infrastructure/googleauth"
)

// Service is the handler-facing Drive upload surface. It builds a
// fresh API client per upload from the cached token.
type Service struct {
	ga       *googleauth.GoogleAuth
	folderID string
	debug    bool
}

func NewService(ga *googleauth.GoogleAuth, folderID string, debug bool) *Service {
	return &Service{ga: ga, folderID: folderID, debug: debug}
}

// UploadVideo uploads the finished video and returns its web link.
func (s *Service) UploadVideo(ctx context.Context, localPath string) (string, error) {
	srv, err := s.ga.BuildDriveService(ctx, s.debug)
	if err != nil {
		return "", err
	}
	id, link, err := NewUploader(srv).UploadFile(ctx, localPath, "", s.folderID)
	if err != nil {
		return "", err
	}
	log.Printf("[drive] uploaded: id=%s link=%s", id, link)
	return link, nil
}
