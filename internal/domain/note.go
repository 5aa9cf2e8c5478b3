package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note is a single notes record with optional voice attachments.
//
// NotebookID is a weak reference: lookup only, no ownership. A dangling
// reference is tolerated and treated as "no notebook".
type Note struct {
	Timestamps
	Title           string           `json:"title"`
	Content         string           `json:"content"`
	Tags            []string         `json:"tags"`
	Pinned          bool             `json:"pinned"`
	Archived        bool             `json:"archived"`
	NotebookID      string           `json:"notebookId,omitempty"`
	AudioRecordings []AudioRecording `json:"audioRecordings,omitempty"`
}

// HasNotebook reports whether the note carries a notebook reference.
// The reference may still be dangling; callers resolve it themselves.
func (n *Note) HasNotebook() bool {
	return n.NotebookID != ""
}

// AttachRecording appends a completed recording to the note.
// Recordings are append-only from the editor's perspective; they are removed
// only by removing or overwriting the whole note.
func (n *Note) AttachRecording(rec AudioRecording) {
	n.AudioRecordings = append(n.AudioRecordings, rec)
	n.Touch()
}

// Recording returns the attached recording with the given id, or nil.
func (n *Note) Recording(recordingID string) *AudioRecording {
	for i := range n.AudioRecordings {
		if n.AudioRecordings[i].ID == recordingID {
			return &n.AudioRecordings[i]
		}
	}
	return nil
}

// AudioRecording is a captured audio attachment owned exclusively by its
// parent note. It is created when a recording session completes and never
// mutated afterwards, except for the best-effort transcription text.
type AudioRecording struct {
	ID            string    `json:"id"`
	Audio         []byte    `json:"audio,omitempty"`
	Encoding      string    `json:"encoding,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	Transcription string    `json:"transcription,omitempty"`
	Duration      int       `json:"duration,omitempty"` // seconds
}

// NewAudioRecording builds a recording from a finalized capture buffer.
func NewAudioRecording(audio []byte, encoding string, durationSeconds int) AudioRecording {
	return AudioRecording{
		ID:        uuid.NewString(),
		Audio:     audio,
		Encoding:  encoding,
		CreatedAt: time.Now(),
		Duration:  durationSeconds,
	}
}

// NormalizeTags trims whitespace, drops empties, and removes duplicates while
// preserving first-seen order. Tag order is otherwise irrelevant.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
