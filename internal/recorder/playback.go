package recorder

import (
	"log/slog"
	"sync"

	"github.com/cemcobancem/notevault/internal/errors"
)

// PlaybackState is the playback sub-state for a stopped clip.
type PlaybackState string

const (
	PlaybackIdle    PlaybackState = "idle"
	PlaybackPlaying PlaybackState = "playing"
	PlaybackPaused  PlaybackState = "paused"
)

// Playback drives a Player through play, pause, resume, and stop for one
// clip at a time.
type Playback struct {
	player Player
	logger *slog.Logger

	mu      sync.Mutex
	state   PlaybackState
	session int
}

// NewPlayback creates a playback controller.
func NewPlayback(player Player, logger *slog.Logger) *Playback {
	return &Playback{player: player, logger: logger, state: PlaybackIdle}
}

// State returns the current playback state.
func (p *Playback) State() PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Play starts playing a clip from the beginning.
func (p *Playback) Play(clip *Clip) error {
	if clip == nil || len(clip.Data) == 0 {
		return errors.Validation("no clip to play")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.session++
	session := p.session
	if err := p.player.Play(clip, func() { p.clipEnded(session) }); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "start playback")
	}
	p.state = PlaybackPlaying
	return nil
}

// clipEnded handles a clip running to its natural end: playback moves to
// paused, keeping the buffer around for a replay. Callbacks from a
// superseded session are ignored.
func (p *Playback) clipEnded(session int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if session != p.session || p.state != PlaybackPlaying {
		return
	}
	p.state = PlaybackPaused
}

// Pause pauses playback. Pausing while not playing is a no-op.
func (p *Playback) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != PlaybackPlaying {
		return nil
	}
	if err := p.player.Pause(); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "pause playback")
	}
	p.state = PlaybackPaused
	return nil
}

// Resume continues paused playback. Resuming while not paused is a no-op.
func (p *Playback) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != PlaybackPaused {
		return nil
	}
	if err := p.player.Resume(); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "resume playback")
	}
	p.state = PlaybackPlaying
	return nil
}

// Stop halts playback and rewinds to idle.
func (p *Playback) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == PlaybackIdle {
		return nil
	}
	if err := p.player.Stop(); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "stop playback")
	}
	p.state = PlaybackIdle
	return nil
}
