package voiceover

import (
	"context"
	"errors"
	"testing"

	"voiceover-app/internal/domain/media"
	"voiceover-app/internal/domain/tts"
)

type fakeSynth struct {
	calls int
	err   error
}

func (f *fakeSynth) Synthesize(ctx context.Context, req tts.Request, outPath string) error {
	f.calls++
	return f.err
}

type fakeComposer struct {
	probeErr   error
	composeErr error
	duration   float64

	gotSource media.VisualSource
}

func (f *fakeComposer) Probe(ctx context.Context, audioPath string) (*media.AudioArtifact, error) {
	if f.probeErr != nil {
		return nil, f.probeErr
	}
	return &media.AudioArtifact{Path: audioPath, DurationSeconds: f.duration}, nil
}

func (f *fakeComposer) Compose(ctx context.Context, audio *media.AudioArtifact, src media.VisualSource, outPath string) (*media.VideoArtifact, error) {
	f.gotSource = src
	if f.composeErr != nil {
		return nil, f.composeErr
	}
	return &media.VideoArtifact{Path: outPath, DurationSeconds: audio.DurationSeconds}, nil
}

func validInput(dir string) *GenerateVoiceoverInput {
	return &GenerateVoiceoverInput{
		Text:    "hello there",
		Voice:   "en-US-GuyNeural",
		Visual:  media.VisualSource{Kind: media.SourceNone},
		WorkDir: dir,
	}
}

func TestExecuteHappyPath(t *testing.T) {
	synth := &fakeSynth{}
	comp := &fakeComposer{duration: 4.2}
	uc := NewGenerateVoiceover(synth, comp)

	out, err := uc.Execute(context.Background(), validInput(t.TempDir()))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.DurationSeconds != 4.2 {
		t.Errorf("duration = %v, want audio duration 4.2", out.DurationSeconds)
	}
	if synth.calls != 1 {
		t.Errorf("synthesizer called %d times, want 1", synth.calls)
	}
}

func TestExecuteRejectsBlankTextBeforeSynthesis(t *testing.T) {
	synth := &fakeSynth{}
	uc := NewGenerateVoiceover(synth, &fakeComposer{duration: 1})

	for _, text := range []string{"", "   ", "\n\t"} {
		in := validInput(t.TempDir())
		in.Text = text
		_, err := uc.Execute(context.Background(), in)
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("text %q: err = %v, want ErrEmptyText", text, err)
		}
		var ie *InputError
		if !errors.As(err, &ie) {
			t.Errorf("text %q: err = %T, want *InputError", text, err)
		}
	}
	if synth.calls != 0 {
		t.Errorf("synthesizer called %d times for blank text, want 0", synth.calls)
	}
}

func TestExecuteRejectsBadVoiceAndRange(t *testing.T) {
	uc := NewGenerateVoiceover(&fakeSynth{}, &fakeComposer{duration: 1})

	bad := []*GenerateVoiceoverInput{
		{Text: "hi", Voice: "klingon"},
		{Text: "hi", Voice: "en-US-GuyNeural", RatePercent: 61},
		{Text: "hi", Voice: "en-US-GuyNeural", PitchPercent: -21},
	}
	for _, in := range bad {
		_, err := uc.Execute(context.Background(), in)
		var ie *InputError
		if !errors.As(err, &ie) {
			t.Errorf("input %+v: err = %v, want *InputError", in, err)
		}
	}
}

func TestExecuteWrapsStageErrors(t *testing.T) {
	synthFail := errors.New("service unreachable")
	_, err := NewGenerateVoiceover(&fakeSynth{err: synthFail}, &fakeComposer{duration: 1}).
		Execute(context.Background(), validInput(t.TempDir()))
	var se *SynthesisError
	if !errors.As(err, &se) || !errors.Is(err, synthFail) {
		t.Errorf("synthesis failure: err = %v, want *SynthesisError wrapping cause", err)
	}

	probeFail := errors.New("zero duration")
	_, err = NewGenerateVoiceover(&fakeSynth{}, &fakeComposer{probeErr: probeFail}).
		Execute(context.Background(), validInput(t.TempDir()))
	var ce *CompositionError
	if !errors.As(err, &ce) {
		t.Errorf("probe failure: err = %v, want *CompositionError", err)
	}

	encodeFail := errors.New("encoder exploded")
	_, err = NewGenerateVoiceover(&fakeSynth{}, &fakeComposer{duration: 1, composeErr: encodeFail}).
		Execute(context.Background(), validInput(t.TempDir()))
	ce = nil
	if !errors.As(err, &ce) || !errors.Is(err, encodeFail) {
		t.Errorf("compose failure: err = %v, want *CompositionError wrapping cause", err)
	}
}

func TestExecuteForwardsVisualSource(t *testing.T) {
	comp := &fakeComposer{duration: 2}
	uc := NewGenerateVoiceover(&fakeSynth{}, comp)

	in := validInput(t.TempDir())
	in.Visual = media.VisualSource{Kind: media.SourceImage, Path: "still.png"}
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	if comp.gotSource.Kind != media.SourceImage || comp.gotSource.Path != "still.png" {
		t.Errorf("composer saw %+v, want the image source", comp.gotSource)
	}
}
