package recorder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cemcobancem/notevault/internal/errors"
)

// State is the recorder session state.
type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
	StateStopped   State = "stopped"
)

// Ticker abstracts time.Ticker so tests can drive the clock by hand.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// TickerFactory builds the 1 Hz ticker that counts recording seconds.
type TickerFactory func(time.Duration) Ticker

type wallTicker struct{ *time.Ticker }

func (t wallTicker) Chan() <-chan time.Time { return t.C }

func newWallTicker(d time.Duration) Ticker {
	return wallTicker{time.NewTicker(d)}
}

// Recorder runs voice capture sessions. It enforces one session at a time:
// starting while a recording is live is a conflict, stopping while idle is a
// no-op.
type Recorder struct {
	device    CaptureDevice
	encodings []string
	newTicker TickerFactory
	logger    *slog.Logger

	mu       sync.Mutex
	state    State
	encoding string
	elapsed  int
	clip     *Clip
	stopTick chan struct{}
	tickDone chan struct{}
	onTick   func(seconds int)
	onReset  func()
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithTickerFactory replaces the wall-clock ticker. Tests use this to make
// the elapsed counter deterministic.
func WithTickerFactory(f TickerFactory) Option {
	return func(r *Recorder) { r.newTicker = f }
}

// WithTickHandler registers a callback invoked once per counted second while
// recording. The callback runs on the ticker goroutine.
func WithTickHandler(fn func(seconds int)) Option {
	return func(r *Recorder) { r.onTick = fn }
}

// WithResetHook registers a callback invoked after a reset, outside the
// recorder lock. The playback controller hooks in here so a reset also
// releases any playable resource held for the discarded clip.
func WithResetHook(fn func()) Option {
	return func(r *Recorder) { r.onReset = fn }
}

// New creates a recorder over the given capture device. encodings is the
// preference-ordered list of acceptable audio encodings.
func New(device CaptureDevice, encodings []string, logger *slog.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		device:    device,
		encodings: encodings,
		newTicker: newWallTicker,
		logger:    logger,
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current session state.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Elapsed returns the seconds counted so far in the current or last session.
func (r *Recorder) Elapsed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.elapsed
}

// Clip returns the finished clip after a stop, or nil.
func (r *Recorder) Clip() *Clip {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clip
}

// Start begins a new capture session.
//
// The first encoding in the preference list the device supports wins. A
// denied or failed device start leaves the recorder idle with the device
// released, so the next attempt starts clean.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateRecording {
		return errors.Conflict("a recording is already in progress")
	}

	encoding, ok := r.negotiateEncoding()
	if !ok {
		return errors.Unavailable("no supported audio encoding")
	}

	if err := r.device.Start(ctx, encoding); err != nil {
		r.device.Release()
		r.state = StateIdle
		if errors.Is(err, errors.ErrPermission) {
			return err
		}
		return errors.Wrap(err, errors.CodePermission, "microphone unavailable")
	}

	r.state = StateRecording
	r.encoding = encoding
	r.elapsed = 0
	r.clip = nil
	r.stopTick = make(chan struct{})
	r.tickDone = make(chan struct{})
	go r.countSeconds(r.stopTick, r.tickDone)

	r.logger.Info("recording started", "encoding", encoding)
	return nil
}

// negotiateEncoding picks the first preferred encoding the device supports.
// Callers hold r.mu.
func (r *Recorder) negotiateEncoding() (string, bool) {
	for _, enc := range r.encodings {
		if r.device.Supports(enc) {
			return enc, true
		}
	}
	return "", false
}

// countSeconds increments the elapsed counter once per tick until stopped.
func (r *Recorder) countSeconds(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	tk := r.newTicker(time.Second)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tk.Chan():
			r.mu.Lock()
			r.elapsed++
			seconds := r.elapsed
			onTick := r.onTick
			r.mu.Unlock()
			if onTick != nil {
				onTick(seconds)
			}
		}
	}
}

// Stop ends the current session and returns the finished clip. Stopping
// while no recording is live is a no-op returning nil.
//
// The device is released whether or not it hands the bytes over cleanly.
func (r *Recorder) Stop() (*Clip, error) {
	r.mu.Lock()
	// A nil stopTick means another Stop already claimed this session.
	if r.state != StateRecording || r.stopTick == nil {
		r.mu.Unlock()
		return nil, nil
	}
	stopTick, tickDone := r.stopTick, r.tickDone
	r.stopTick, r.tickDone = nil, nil
	r.mu.Unlock()

	close(stopTick)
	<-tickDone

	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.device.Release()

	data, err := r.device.Stop()
	if err != nil {
		r.state = StateIdle
		return nil, errors.Wrap(err, errors.CodeInternal, "stop capture")
	}

	r.state = StateStopped
	r.clip = &Clip{Data: data, Encoding: r.encoding, Duration: r.elapsed}

	r.logger.Info("recording stopped", "encoding", r.encoding, "duration", r.elapsed, "bytes", len(data))
	return r.clip, nil
}

// Reset discards any finished clip and returns the recorder to idle. The
// reset hook runs afterward so cached playback resources go with the clip.
func (r *Recorder) Reset() {
	r.mu.Lock()
	if r.state == StateRecording {
		r.mu.Unlock()
		return
	}
	r.state = StateIdle
	r.clip = nil
	r.elapsed = 0
	r.encoding = ""
	onReset := r.onReset
	r.mu.Unlock()

	if onReset != nil {
		onReset()
	}
}
