package tts

import (
	"context"
	"fmt"
	"strings"
)

// Voices are the selectable neural voice presets.
var Voices = []string{
	"en-US-GuyNeural",
	"en-US-JennyNeural",
	"en-GB-LibbyNeural",
	"en-GB-RyanNeural",
	"en-AU-NatashaNeural",
	"en-CA-ClaraNeural",
	"en-IN-PrabhatNeural",
	"en-IN-NeerjaNeural",
}

// Prosody bounds accepted by the synthesis service.
const (
	MinRatePercent  = -40
	MaxRatePercent  = 60
	MinPitchPercent = -20
	MaxPitchPercent = 40
)

// Request is one narration to synthesize.
type Request struct {
	Text         string
	Voice        string
	RatePercent  int
	PitchPercent int
}

// Validate checks the request before any network call is attempted.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("narration text is empty")
	}
	if !ValidVoice(r.Voice) {
		return fmt.Errorf("unknown voice %q", r.Voice)
	}
	if r.RatePercent < MinRatePercent || r.RatePercent > MaxRatePercent {
		return fmt.Errorf("rate %d%% out of range [%d, %d]", r.RatePercent, MinRatePercent, MaxRatePercent)
	}
	if r.PitchPercent < MinPitchPercent || r.PitchPercent > MaxPitchPercent {
		return fmt.Errorf("pitch %d%% out of range [%d, %d]", r.PitchPercent, MinPitchPercent, MaxPitchPercent)
	}
	return nil
}

// ValidVoice reports whether name is one of the presets.
func ValidVoice(name string) bool {
	for _, v := range Voices {
		if v == name {
			return true
		}
	}
	return false
}

// Synthesizer converts a narration request into an audio file.
// Concrete implementation wraps the Edge read-aloud service.
type Synthesizer interface {
	// Synthesize writes the synthesized speech (mp3) to outPath.
	// The call blocks until the service finishes or fails; no retry.
	Synthesize(ctx context.Context, req Request, outPath string) error
}
