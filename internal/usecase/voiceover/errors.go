package voiceover

import "errors"

// ErrEmptyText is returned before any synthesis call when the
// narration text is blank.
var ErrEmptyText = errors.New("narration text is empty")

// InputError covers rejected form input (bad voice, out-of-range
// prosody). The request is not attempted.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return "invalid input: " + e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

// SynthesisError marks a failure of the speech generation step.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string { return "speech synthesis failed: " + e.Err.Error() }
func (e *SynthesisError) Unwrap() error { return e.Err }

// CompositionError marks a failure of the video step. No artifact is
// exposed when it is returned.
type CompositionError struct {
	Err error
}

func (e *CompositionError) Error() string { return "video composition failed: " + e.Err.Error() }
func (e *CompositionError) Unwrap() error { return e.Err }
