package service

import (
	"log/slog"
	"sync"
	"time"
)

// Debouncer coalesces rapid edits into one write per record. Every enqueue
// for a key replaces whatever commit was pending for that key and restarts
// its quiet window; when the window elapses only the newest commit runs.
//
// Keys are independent: a burst of edits to one note never delays another.
type Debouncer struct {
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	pending map[string]*pendingWrite
	closed  bool
}

type pendingWrite struct {
	timer  *time.Timer
	commit func() error
}

// NewDebouncer creates a debouncer with the given quiet window.
func NewDebouncer(delay time.Duration, logger *slog.Logger) *Debouncer {
	return &Debouncer{
		delay:   delay,
		logger:  logger,
		pending: make(map[string]*pendingWrite),
	}
}

// Enqueue schedules commit to run after the quiet window, replacing any
// commit already pending for the same key.
func (d *Debouncer) Enqueue(key string, commit func() error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if pw, ok := d.pending[key]; ok {
		pw.timer.Stop()
		pw.commit = commit
		pw.timer.Reset(d.delay)
		return
	}

	pw := &pendingWrite{commit: commit}
	pw.timer = time.AfterFunc(d.delay, func() {
		d.fire(key)
	})
	d.pending[key] = pw
}

func (d *Debouncer) fire(key string) {
	d.mu.Lock()
	pw, ok := d.pending[key]
	if ok {
		delete(d.pending, key)
	}
	d.mu.Unlock()

	if !ok {
		return
	}
	if err := pw.commit(); err != nil {
		d.logger.Error("autosave failed", "key", key, "error", err)
	}
}

// Flush runs the pending commit for key immediately, if any.
func (d *Debouncer) Flush(key string) {
	d.mu.Lock()
	pw, ok := d.pending[key]
	if ok {
		pw.timer.Stop()
		delete(d.pending, key)
	}
	d.mu.Unlock()

	if !ok {
		return
	}
	if err := pw.commit(); err != nil {
		d.logger.Error("autosave flush failed", "key", key, "error", err)
	}
}

// Close flushes everything still pending and stops accepting new work.
// An edit made just before shutdown still reaches the store.
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	remaining := d.pending
	d.pending = make(map[string]*pendingWrite)
	d.mu.Unlock()

	for key, pw := range remaining {
		pw.timer.Stop()
		if err := pw.commit(); err != nil {
			d.logger.Error("autosave flush failed", "key", key, "error", err)
		}
	}
}
