package media

import "context"

// SourceKind tags the visual source variant.
type SourceKind int

const (
	// SourceNone means no upload; the composer paints a black frame.
	SourceNone SourceKind = iota
	// SourceVideo is an uploaded clip (mp4/mov/webm).
	SourceVideo
	// SourceImage is an uploaded still (jpg/jpeg/png).
	SourceImage
)

// VisualSource is what feeds the output's visual track.
// Path is empty when Kind is SourceNone.
type VisualSource struct {
	Kind SourceKind
	Path string
}

// AudioArtifact is a synthesized speech file with a known duration.
type AudioArtifact struct {
	Path            string
	DurationSeconds float64
}

// VideoArtifact is the final composed output. Its duration equals the
// source audio's duration by construction.
type VideoArtifact struct {
	Path            string
	DurationSeconds float64
}

// Composer lays a visual track under an audio track.
type Composer interface {
	// Probe returns the audio artifact for a synthesized file,
	// failing on zero or unreadable duration.
	Probe(ctx context.Context, audioPath string) (*AudioArtifact, error)
	// Compose writes a video file at outPath whose audio track is the
	// given artifact and whose duration matches it exactly. No partial
	// output file survives a failed composition.
	Compose(ctx context.Context, audio *AudioArtifact, src VisualSource, outPath string) (*VideoArtifact, error)
}
