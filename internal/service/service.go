package service

import "time"

// Config carries the tunables services need. It is a narrow view over the
// application config so services do not depend on the config package.
type Config struct {
	// AutosaveDebounce is the quiet window before a pending edit is persisted.
	AutosaveDebounce time.Duration
	// TranscriptionTimeout bounds how long a transcription request may run.
	TranscriptionTimeout time.Duration
}

type timeoutConfig struct {
	transcription time.Duration
}
