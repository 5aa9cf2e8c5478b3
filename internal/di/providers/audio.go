package providers

import (
	"github.com/samber/do/v2"

	"github.com/cemcobancem/notevault/internal/config"
	"github.com/cemcobancem/notevault/internal/logger"
	"github.com/cemcobancem/notevault/internal/recorder"
	"github.com/cemcobancem/notevault/internal/transcribe"
)

// ProvideCaptureDevice provides the audio capture device. The simulated
// device supports every configured encoding; a real device would probe the
// hardware here instead.
func ProvideCaptureDevice(i do.Injector) (recorder.CaptureDevice, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return recorder.NewSimulatedDevice(cfg.Recorder.Encodings...), nil
}

// ProvideRecorder provides the voice recorder. Reset also stops playback so
// a discarded clip never leaves a playable resource behind.
func ProvideRecorder(i do.Injector) (*recorder.Recorder, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	device := do.MustInvoke[recorder.CaptureDevice](i)
	playback := do.MustInvoke[*recorder.Playback](i)

	return recorder.New(device, cfg.Recorder.Encodings, log.Logger,
		recorder.WithResetHook(func() {
			if err := playback.Stop(); err != nil {
				log.WithError(err).Error("Failed to stop playback on reset")
			}
		}),
	), nil
}

// ProvidePlayback provides clip playback.
func ProvidePlayback(i do.Injector) (*recorder.Playback, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return recorder.NewPlayback(recorder.NewSimulatedPlayer(), log.Logger), nil
}

// ProvideTranscriber provides the speech-to-text engine.
func ProvideTranscriber(i do.Injector) (transcribe.Transcriber, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return transcribe.NewSimulated(log.Logger), nil
}
