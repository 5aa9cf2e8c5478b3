// Package transcribe converts recorded audio into text.
//
// The only engine shipped today is a simulated one; the interface is the
// seam where a real speech-to-text backend plugs in later.
package transcribe

import "context"

// Result is the outcome of transcribing one clip.
type Result struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

// Transcriber turns an audio clip into text. Implementations must honor
// context cancellation and deadlines.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, encoding string) (*Result, error)
}
