// Package recorder manages voice capture sessions and playback of the
// resulting clips.
//
// A Recorder owns at most one session at a time and moves through idle,
// recording, and stopped states. The capture hardware sits behind the
// CaptureDevice interface so the rest of the app never touches it directly.
package recorder

import "context"

// CaptureDevice is a microphone-like audio source.
//
// Start acquires the device and begins capturing in the given encoding.
// Stop ends capture and returns the captured bytes. Release frees the
// device and must be safe to call in any state, including after a failed
// Start.
type CaptureDevice interface {
	Supports(encoding string) bool
	Start(ctx context.Context, encoding string) error
	Stop() ([]byte, error)
	Release()
}

// Player plays back a recorded clip.
//
// Play begins the clip from the start. When the clip runs to its natural
// end the player invokes onEnded, at most once, possibly from another
// goroutine.
type Player interface {
	Play(clip *Clip, onEnded func()) error
	Pause() error
	Resume() error
	Stop() error
}

// Clip is a finished recording ready to attach to a note.
type Clip struct {
	Data     []byte
	Encoding string
	// Duration in whole seconds, as counted by the recording ticker.
	Duration int
}
