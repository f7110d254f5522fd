package voiceover

import (
	"context"
	"log"
	"path/filepath"
	"strings"

	"voiceover-app/internal/domain/artifact"
	"voiceover-app/internal/domain/media"
	"voiceover-app/internal/domain/tts"
)

// GenerateVoiceoverInput is input DTO. WorkDir is the per-request
// directory the artifacts are written into.
type GenerateVoiceoverInput struct {
	Text         string
	Voice        string
	RatePercent  int
	PitchPercent int
	Visual       media.VisualSource
	WorkDir      string
}

// GenerateVoiceoverOutput is output DTO.
type GenerateVoiceoverOutput struct {
	AudioPath       string  `json:"audioPath"`
	VideoPath       string  `json:"videoPath"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// GenerateVoiceover implements usecase.UseCase: synthesize narration,
// then compose it over the visual source.
type GenerateVoiceover struct {
	synth    tts.Synthesizer
	composer media.Composer
}

func NewGenerateVoiceover(synth tts.Synthesizer, composer media.Composer) *GenerateVoiceover {
	return &GenerateVoiceover{synth: synth, composer: composer}
}

// Execute runs the two stages in sequence. Any error is terminal for
// the request; no partial artifact is reported back.
func (uc *GenerateVoiceover) Execute(ctx context.Context, in *GenerateVoiceoverInput) (*GenerateVoiceoverOutput, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, &InputError{Err: ErrEmptyText}
	}
	req := tts.Request{
		Text:         in.Text,
		Voice:        in.Voice,
		RatePercent:  in.RatePercent,
		PitchPercent: in.PitchPercent,
	}
	if err := req.Validate(); err != nil {
		return nil, &InputError{Err: err}
	}

	// 1. Synthesize
	audioPath := filepath.Join(in.WorkDir, artifact.AudioFile)
	if err := uc.synth.Synthesize(ctx, req, audioPath); err != nil {
		return nil, &SynthesisError{Err: err}
	}

	// 2. Probe the synthesized track
	audio, err := uc.composer.Probe(ctx, audioPath)
	if err != nil {
		return nil, &CompositionError{Err: err}
	}

	// 3. Compose
	videoPath := filepath.Join(in.WorkDir, artifact.VideoFile)
	video, err := uc.composer.Compose(ctx, audio, in.Visual, videoPath)
	if err != nil {
		return nil, &CompositionError{Err: err}
	}

	log.Printf("[voiceover] generated %s (%.2fs)", video.Path, video.DurationSeconds)
	return &GenerateVoiceoverOutput{
		AudioPath:       audio.Path,
		VideoPath:       video.Path,
		DurationSeconds: video.DurationSeconds,
	}, nil
}
