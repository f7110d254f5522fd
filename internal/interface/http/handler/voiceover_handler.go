package handler

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"voiceover-app/internal/domain/artifact"
	"voiceover-app/internal/domain/media"
	"voiceover-app/internal/usecase"
	ucvo "voiceover-app/internal/usecase/voiceover"
)

// DriveUploader pushes a finished artifact to Drive. Optional; nil
// disables the feature.
type DriveUploader interface {
	UploadVideo(ctx context.Context, localPath string) (link string, err error)
}

// VoiceoverHandler bundles dependencies for the generation routes.
type VoiceoverHandler struct {
	uc           usecase.UseCase[ucvo.GenerateVoiceoverInput, ucvo.GenerateVoiceoverOutput]
	store        artifact.Store
	drive        DriveUploader
	defaultVoice string
}

func NewVoiceoverHandler(
	uc usecase.UseCase[ucvo.GenerateVoiceoverInput, ucvo.GenerateVoiceoverOutput],
	store artifact.Store,
	drive DriveUploader,
	defaultVoice string,
) *VoiceoverHandler {
	return &VoiceoverHandler{uc: uc, store: store, drive: drive, defaultVoice: defaultVoice}
}

// Register registers routes to app.
func (h *VoiceoverHandler) Register(app *fiber.App) {
	app.Get("/", h.formPage)
	app.Post("/voiceover", h.generate)
	app.Get("/voiceover/:id/audio", h.downloadAudio)
	app.Get("/voiceover/:id/video", h.downloadVideo)
}

// generateResponse is the JSON reply for a successful generation.
type generateResponse struct {
	ID              string  `json:"id"`
	AudioURL        string  `json:"audioUrl"`
	VideoURL        string  `json:"videoUrl"`
	DurationSeconds float64 `json:"durationSeconds"`
	DriveLink       string  `json:"driveLink,omitempty"`
}

func (h *VoiceoverHandler) generate(c *fiber.Ctx) error {
	text := c.FormValue("text")
	voice := c.FormValue("voice")
	if voice == "" {
		voice = h.defaultVoice
	}
	rate, err := formInt(c, "rate")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "rate must be an integer")
	}
	pitch, err := formInt(c, "pitch")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "pitch must be an integer")
	}

	id, workDir, err := h.store.Allocate()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	visual := media.VisualSource{Kind: media.SourceNone}
	if fh, ferr := c.FormFile("media"); ferr == nil && fh != nil {
		kind, kerr := classifyUpload(fh.Filename)
		if kerr != nil {
			return fiber.NewError(fiber.StatusBadRequest, kerr.Error())
		}
		dst := filepath.Join(workDir, sanitizeFilename(fh.Filename))
		if serr := c.SaveFile(fh, dst); serr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to store upload")
		}
		visual = media.VisualSource{Kind: kind, Path: dst}
	}

	log.Printf("[handler] generate id=%s voice=%s rate=%d pitch=%d visual=%d", id, voice, rate, pitch, visual.Kind)
	out, err := h.uc.Execute(c.Context(), &ucvo.GenerateVoiceoverInput{
		Text:         text,
		Voice:        voice,
		RatePercent:  rate,
		PitchPercent: pitch,
		Visual:       visual,
		WorkDir:      workDir,
	})
	if err != nil {
		return mapUseCaseError(err)
	}

	resp := generateResponse{
		ID:              string(id),
		AudioURL:        "/voiceover/" + string(id) + "/audio",
		VideoURL:        "/voiceover/" + string(id) + "/video",
		DurationSeconds: out.DurationSeconds,
	}

	// Drive upload is best effort; a failure never fails the request.
	if h.drive != nil {
		upCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if link, derr := h.drive.UploadVideo(upCtx, out.VideoPath); derr != nil {
			log.Printf("[drive] upload failed: %v", derr)
		} else {
			resp.DriveLink = link
		}
	}

	return c.JSON(resp)
}

func (h *VoiceoverHandler) downloadAudio(c *fiber.Ctx) error {
	path, err := h.store.Resolve(artifact.ID(c.Params("id")), artifact.AudioFile)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.Download(path, "voiceover_audio.mp3")
}

func (h *VoiceoverHandler) downloadVideo(c *fiber.Ctx) error {
	path, err := h.store.Resolve(artifact.ID(c.Params("id")), artifact.VideoFile)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	c.Set(fiber.HeaderContentType, "video/mp4")
	return c.Download(path, "voiceover_video.mp4")
}

// mapUseCaseError translates the error taxonomy to HTTP statuses.
func mapUseCaseError(err error) error {
	var ie *ucvo.InputError
	if errors.As(err, &ie) {
		return fiber.NewError(fiber.StatusBadRequest, ie.Error())
	}
	var se *ucvo.SynthesisError
	if errors.As(err, &se) {
		return fiber.NewError(fiber.StatusBadGateway, se.Error())
	}
	var ce *ucvo.CompositionError
	if errors.As(err, &ce) {
		return fiber.NewError(fiber.StatusInternalServerError, ce.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

func formInt(c *fiber.Ctx, key string) (int, error) {
	v := c.FormValue(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

var videoExts = map[string]bool{".mp4": true, ".mov": true, ".webm": true}
var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// classifyUpload dispatches on the file extension, as the surrounding
// tooling does. Content sniffing is deliberately not performed.
func classifyUpload(filename string) (media.SourceKind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case videoExts[ext]:
		return media.SourceVideo, nil
	case imageExts[ext]:
		return media.SourceImage, nil
	default:
		return media.SourceNone, errors.New("unsupported media type " + ext + " (want mp4/mov/webm or jpg/jpeg/png)")
	}
}

// sanitizeFilename replaces characters that are invalid in filenames
// and caps the length at 100 runes.
func sanitizeFilename(s string) string {
	if !utf8.ValidString(s) {
		var builder strings.Builder
		for _, r := range s {
			if r != utf8.RuneError {
				builder.WriteRune(r)
			}
		}
		s = builder.String()
	}
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		"\x00", "_",
	)
	safe := replacer.Replace(s)
	runes := []rune(safe)
	if len(runes) > 100 {
		safe = string(runes[:100])
	}
	return strings.TrimSpace(safe)
}
