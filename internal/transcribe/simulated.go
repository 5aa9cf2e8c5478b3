package transcribe

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/cemcobancem/notevault/internal/errors"
)

const (
	simulatedText       = "This is a simulated transcription of your voice note."
	simulatedConfidence = 0.95
	simulatedLanguage   = "en"

	// defaultLatency approximates a round trip to a speech service.
	defaultLatency = 1500 * time.Millisecond

	// One request at a time with a small burst, matching the single-recorder
	// usage pattern.
	defaultRate  = rate.Limit(1)
	defaultBurst = 2
)

// Simulated is a stand-in transcriber. It rate-limits and sleeps like a real
// backend would, then answers with fixed text.
type Simulated struct {
	latency time.Duration
	limiter *rate.Limiter
	logger  *slog.Logger
}

// SimulatedOption configures a Simulated transcriber.
type SimulatedOption func(*Simulated)

// WithLatency overrides the simulated processing delay. Tests use zero.
func WithLatency(d time.Duration) SimulatedOption {
	return func(s *Simulated) { s.latency = d }
}

// NewSimulated creates a simulated transcriber.
func NewSimulated(logger *slog.Logger, opts ...SimulatedOption) *Simulated {
	s := &Simulated{
		latency: defaultLatency,
		limiter: rate.NewLimiter(defaultRate, defaultBurst),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transcribe waits for a limiter slot, simulates processing latency, and
// returns the canned result. Empty audio is rejected up front.
func (s *Simulated) Transcribe(ctx context.Context, audio []byte, encoding string) (*Result, error) {
	if len(audio) == 0 {
		return nil, errors.Validation("no audio to transcribe")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	s.logger.Debug("transcription simulated", "bytes", len(audio), "encoding", encoding)
	return &Result{
		Text:       simulatedText,
		Confidence: simulatedConfidence,
		Language:   simulatedLanguage,
	}, nil
}
