package ffmpeg

import (
	"context"
	"strings"
	"testing"

	"voiceover-app/internal/domain/media"
)

func TestLoopCount(t *testing.T) {
	tests := []struct {
		target, clip float64
		want         int
	}{
		{10, 3, 4},   // 3 full loops leave a gap, a 4th covers it
		{9, 3, 4},    // exact multiple still gets one extra before trim
		{2.5, 4, 1},  // clip longer than target
		{10, 10.5, 1},
		{60, 1, 61},
	}
	for _, tc := range tests {
		if got := loopCount(tc.target, tc.clip); got != tc.want {
			t.Errorf("loopCount(%v, %v) = %d, want %d", tc.target, tc.clip, got, tc.want)
		}
	}
}

func TestVideoArgsShortClipLoops(t *testing.T) {
	args := videoArgs("clip.mp4", 3, "voice.mp3", 10, "out.mp4")
	joined := strings.Join(args, " ")

	// floor(10/3)+1 = 4 plays -> -stream_loop 3
	if !strings.Contains(joined, "-stream_loop 3 -i clip.mp4") {
		t.Errorf("expected looped input, got %s", joined)
	}
	if !strings.Contains(joined, "-t 10.000") {
		t.Errorf("expected trim to audio duration, got %s", joined)
	}
	if !strings.Contains(joined, "scale=-2:720") {
		t.Errorf("expected height normalization, got %s", joined)
	}
	if strings.Contains(joined, "-r ") {
		t.Errorf("video path must keep native frame rate, got %s", joined)
	}
}

func TestVideoArgsLongClipTrimsOnly(t *testing.T) {
	args := videoArgs("clip.mp4", 42, "voice.mp3", 10, "out.mp4")
	joined := strings.Join(args, " ")

	if strings.Contains(joined, "-stream_loop") {
		t.Errorf("clip longer than audio must not loop, got %s", joined)
	}
	if !strings.Contains(joined, "-t 10.000") {
		t.Errorf("expected trim to audio duration, got %s", joined)
	}
}

func TestImageArgs(t *testing.T) {
	args := imageArgs("still.png", "voice.mp3", 7.25, "out.mp4")
	joined := strings.Join(args, " ")

	for _, want := range []string{
		"-loop 1", "-framerate 24", "-i still.png",
		"-t 7.250", "-r 24", "scale=-2:720",
		"-c:v libx264", "-c:a aac",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in %s", want, joined)
		}
	}
}

func TestBlankArgs(t *testing.T) {
	args := blankArgs("voice.mp3", 5, "out.mp4")
	joined := strings.Join(args, " ")

	if !strings.Contains(joined, "color=c=black:s=1280x720:r=24") {
		t.Errorf("expected black 1280x720 placeholder, got %s", joined)
	}
	if !strings.Contains(joined, "-t 5.000") {
		t.Errorf("expected trim to audio duration, got %s", joined)
	}
}

func TestComposeRejectsZeroDurationAudio(t *testing.T) {
	c := NewComposer("", "", 0)
	_, err := c.Compose(context.Background(),
		&media.AudioArtifact{Path: "voice.mp3", DurationSeconds: 0},
		media.VisualSource{Kind: media.SourceNone},
		"out.mp4",
	)
	if err == nil {
		t.Fatal("expected error for zero-duration audio")
	}
}

func TestComposeRejectsUnknownSourceKind(t *testing.T) {
	c := NewComposer("", "", 0)
	_, err := c.Compose(context.Background(),
		&media.AudioArtifact{Path: "voice.mp3", DurationSeconds: 3},
		media.VisualSource{Kind: media.SourceKind(99)},
		"out.mp4",
	)
	if err == nil {
		t.Fatal("expected error for unknown source kind")
	}
}
