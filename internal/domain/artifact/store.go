package artifact

// ID identifies one generation request and its artifacts.
type ID string

// Names of the files every request produces inside its directory.
const (
	AudioFile = "voice.mp3"
	VideoFile = "output.mp4"
)

// Store hands out per-request directories and resolves artifacts back
// from an ID. Nothing is shared between requests.
type Store interface {
	// Allocate creates a fresh directory for one request.
	Allocate() (ID, string, error)
	// Resolve returns the on-disk path of a named artifact, or an
	// error if the ID is malformed or the file does not exist.
	Resolve(id ID, name string) (string, error)
}
