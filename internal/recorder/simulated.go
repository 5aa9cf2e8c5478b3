package recorder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cemcobancem/notevault/internal/errors"
)

// SimulatedDevice is a capture device for environments without real audio
// hardware. It produces placeholder bytes tagged with the encoding.
type SimulatedDevice struct {
	mu         sync.Mutex
	encodings  map[string]bool
	deny       bool
	capturing  bool
	encoding   string
	startedAt  time.Time
	releases   int
	lastClipAt time.Time
}

// NewSimulatedDevice creates a device supporting the given encodings.
func NewSimulatedDevice(encodings ...string) *SimulatedDevice {
	supported := make(map[string]bool, len(encodings))
	for _, enc := range encodings {
		supported[enc] = true
	}
	return &SimulatedDevice{encodings: supported}
}

// DenyPermission makes subsequent Start calls fail as a permission denial.
func (d *SimulatedDevice) DenyPermission(deny bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deny = deny
}

// Supports reports whether the device can capture in the given encoding.
func (d *SimulatedDevice) Supports(encoding string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.encodings[encoding]
}

// Start acquires the simulated microphone.
func (d *SimulatedDevice) Start(_ context.Context, encoding string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.deny {
		return errors.Permission("microphone access denied")
	}
	if !d.encodings[encoding] {
		return fmt.Errorf("unsupported encoding %q", encoding)
	}
	d.capturing = true
	d.encoding = encoding
	d.startedAt = time.Now()
	return nil
}

// Stop ends capture and returns placeholder audio bytes.
func (d *SimulatedDevice) Stop() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.capturing {
		return nil, fmt.Errorf("device is not capturing")
	}
	d.capturing = false
	d.lastClipAt = time.Now()
	return fmt.Appendf(nil, "simulated-audio/%s/%d", d.encoding, d.lastClipAt.UnixNano()), nil
}

// Release frees the simulated microphone. Safe in any state.
func (d *SimulatedDevice) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.capturing = false
	d.releases++
}

// Releases returns how many times the device has been released.
func (d *SimulatedDevice) Releases() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.releases
}

// SimulatedPlayer is a playback sink that tracks state without producing
// sound. Finish stands in for the clip reaching its natural end.
type SimulatedPlayer struct {
	mu      sync.Mutex
	playing bool
	paused  bool
	clip    *Clip
	onEnded func()
}

// NewSimulatedPlayer creates a simulated player.
func NewSimulatedPlayer() *SimulatedPlayer {
	return &SimulatedPlayer{}
}

// Play starts simulated playback of the clip.
func (p *SimulatedPlayer) Play(clip *Clip, onEnded func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	p.paused = false
	p.clip = clip
	p.onEnded = onEnded
	return nil
}

// Finish simulates the clip playing through to its end.
func (p *SimulatedPlayer) Finish() {
	p.mu.Lock()
	p.playing = false
	ended := p.onEnded
	p.onEnded = nil
	p.mu.Unlock()

	if ended != nil {
		ended()
	}
}

// Pause pauses simulated playback.
func (p *SimulatedPlayer) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = true
	return nil
}

// Resume continues simulated playback.
func (p *SimulatedPlayer) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = false
	return nil
}

// Stop halts simulated playback.
func (p *SimulatedPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.paused = false
	p.clip = nil
	p.onEnded = nil
	return nil
}
