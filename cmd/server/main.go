package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"voiceover-app/internal/config"
	"voiceover-app/internal/infrastructure/drive"
	"voiceover-app/internal/infrastructure/googleauth"
	ffmpegcomposer "voiceover-app/internal/infrastructure/media/ffmpeg"
	"voiceover-app/internal/infrastructure/storage"
	edgetts "voiceover-app/internal/infrastructure/tts/edge"
	"voiceover-app/internal/interface/http/handler"
	ucvo "voiceover-app/internal/usecase/voiceover"
)

func main() {
	cfg := config.Load()

	synth := edgetts.NewSynthesizer(cfg.TTSEndpoint)
	composer := ffmpegcomposer.NewComposer(cfg.FFmpegBin, cfg.FFprobeBin, cfg.ComposeTimeout)
	store := storage.NewFileStore(cfg.OutputDir)
	uc := ucvo.NewGenerateVoiceover(synth, composer)

	app := fiber.New(fiber.Config{
		BodyLimit: 500 << 20, // uploaded background clips can be large
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Drive upload is optional; a missing credentials file only
	// disables the feature.
	var driveSvc handler.DriveUploader
	if cfg.DriveUploadEnabled {
		ga, err := googleauth.NewGoogleAuth(cfg.CredentialsPath, cfg.TokenPath)
		if err != nil {
			log.Printf("[drive] disabled: %v", err)
		} else {
			driveSvc = drive.NewService(ga, cfg.DriveFolderID, cfg.DriveDebug)
			handler.NewAuthHandler(ga).Register(app)
			log.Printf("[drive] upload enabled, folder=%s", cfg.DriveFolderID)
		}
	}

	handler.NewVoiceoverHandler(uc, store, driveSvc, cfg.DefaultVoice).Register(app)

	log.Printf("server listening on http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
