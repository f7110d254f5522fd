package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"voiceover-app/internal/domain/media"
)

// Canonical placeholder frame and still-image frame rate.
const (
	blankFrame = "color=c=black:s=1280x720:r=24"
	imageFPS   = "24"
)

// Composer implements media.Composer by shelling out to ffmpeg and
// ffprobe.
type Composer struct {
	ffmpegBin  string
	ffprobeBin string
	timeout    time.Duration
}

// NewComposer creates a Composer. Empty bin paths fall back to the
// binaries on PATH; timeout <= 0 falls back to 10 minutes per encode.
func NewComposer(ffmpegBin, ffprobeBin string, timeout time.Duration) *Composer {
	if ffmpegBin == "" {
		ffmpegBin = "ffmpeg"
	}
	if ffprobeBin == "" {
		ffprobeBin = "ffprobe"
	}
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	return &Composer{ffmpegBin: ffmpegBin, ffprobeBin: ffprobeBin, timeout: timeout}
}

// Probe returns the audio artifact with its container duration.
func (c *Composer) Probe(ctx context.Context, audioPath string) (*media.AudioArtifact, error) {
	dur, err := c.probeDuration(ctx, audioPath)
	if err != nil {
		return nil, err
	}
	if dur <= 0 {
		return nil, fmt.Errorf("audio %s has zero duration", audioPath)
	}
	return &media.AudioArtifact{Path: audioPath, DurationSeconds: dur}, nil
}

// Compose encodes the visual source under the audio track into outPath.
func (c *Composer) Compose(ctx context.Context, audio *media.AudioArtifact, src media.VisualSource, outPath string) (*media.VideoArtifact, error) {
	if audio.DurationSeconds <= 0 {
		return nil, fmt.Errorf("audio %s has zero duration", audio.Path)
	}

	var args []string
	switch src.Kind {
	case media.SourceVideo:
		clipDur, err := c.probeDuration(ctx, src.Path)
		if err != nil {
			return nil, fmt.Errorf("probe visual source: %w", err)
		}
		if clipDur <= 0 {
			return nil, fmt.Errorf("video %s has zero duration", src.Path)
		}
		args = videoArgs(src.Path, clipDur, audio.Path, audio.DurationSeconds, outPath)
	case media.SourceImage:
		args = imageArgs(src.Path, audio.Path, audio.DurationSeconds, outPath)
	case media.SourceNone:
		args = blankArgs(audio.Path, audio.DurationSeconds, outPath)
	default:
		return nil, fmt.Errorf("unknown visual source kind %d", src.Kind)
	}

	log.Printf("[compose] source=%d target=%.3fs out=%s", src.Kind, audio.DurationSeconds, outPath)
	if err := c.runFFmpeg(ctx, args); err != nil {
		// a half-written file is not a valid artifact
		os.Remove(outPath)
		return nil, err
	}
	return &media.VideoArtifact{Path: outPath, DurationSeconds: audio.DurationSeconds}, nil
}

// loopCount is the number of clip copies needed to cover target before
// trimming: floor(target/clip) + 1.
func loopCount(target, clip float64) int {
	return int(math.Floor(target/clip)) + 1
}

// videoArgs loops the clip when it is shorter than the audio, then
// trims the result to exactly the audio duration. The clip's native
// frame rate is kept.
func videoArgs(videoPath string, clipDur float64, audioPath string, target float64, outPath string) []string {
	args := []string{"-y"}
	if clipDur < target {
		// -stream_loop n plays the input n+1 times
		args = append(args, "-stream_loop", strconv.Itoa(loopCount(target, clipDur)-1))
	}
	args = append(args, "-i", videoPath, "-i", audioPath)
	args = append(args, "-t", fmtSec(target))
	args = append(args, "-vf", "scale=-2:720")
	args = append(args, mapAndEncodeArgs()...)
	return append(args, outPath)
}

// imageArgs holds a still frame for the audio duration at 24 fps.
func imageArgs(imagePath, audioPath string, target float64, outPath string) []string {
	args := []string{"-y", "-loop", "1", "-framerate", imageFPS, "-i", imagePath, "-i", audioPath}
	args = append(args, "-t", fmtSec(target))
	args = append(args, "-vf", "scale=-2:720", "-r", imageFPS)
	args = append(args, mapAndEncodeArgs()...)
	return append(args, outPath)
}

// blankArgs paints a black 1280x720 frame for the audio duration.
func blankArgs(audioPath string, target float64, outPath string) []string {
	args := []string{"-y", "-f", "lavfi", "-i", blankFrame, "-i", audioPath}
	args = append(args, "-t", fmtSec(target))
	args = append(args, "-vf", "scale=-2:720")
	args = append(args, mapAndEncodeArgs()...)
	return append(args, outPath)
}

func mapAndEncodeArgs() []string {
	return []string{
		"-map", "0:v:0", "-map", "1:a:0",
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-movflags", "+faststart",
	}
}

func fmtSec(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}

func (c *Composer) runFFmpeg(ctx context.Context, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.ffmpegBin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("ffmpeg timed out after %v", c.timeout)
		}
		return fmt.Errorf("ffmpeg: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

func (c *Composer) probeDuration(ctx context.Context, path string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.ffprobeBin,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	s := strings.TrimSpace(string(out))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	if sec < 0 {
		return 0, fmt.Errorf("negative duration for %s", path)
	}
	return sec, nil
}
