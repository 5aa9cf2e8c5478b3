// Package di provides dependency injection configuration for NoteVault.
package di

import (
	"github.com/samber/do/v2"

	"github.com/cemcobancem/notevault/internal/config"
	"github.com/cemcobancem/notevault/internal/di/providers"
	"github.com/cemcobancem/notevault/internal/logger"
	"github.com/cemcobancem/notevault/internal/recorder"
	"github.com/cemcobancem/notevault/internal/service"
	"github.com/cemcobancem/notevault/internal/transcribe"
	"github.com/cemcobancem/notevault/internal/transfer"
	"github.com/cemcobancem/notevault/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideBootstrap)

	// Audio layer
	do.Provide(injector, providers.ProvideCaptureDevice)
	do.Provide(injector, providers.ProvideRecorder)
	do.Provide(injector, providers.ProvidePlayback)
	do.Provide(injector, providers.ProvideTranscriber)

	// Business services
	do.Provide(injector, providers.ProvideNotesService)
	do.Provide(injector, providers.ProvideTasksService)
	do.Provide(injector, providers.ProvideNotebooksService)
	do.Provide(injector, providers.ProvideSearchService)
	do.Provide(injector, providers.ProvideSettingsService)
	do.Provide(injector, providers.ProvideTransferService)
	do.Provide(injector, providers.ProvideDebouncer)

	return injector
}

// Bootstrap initializes all services and returns once everything critical is
// ready. This triggers lazy initialization across the container.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.Bootstrap](injector)

	_ = do.MustInvoke[transcribe.Transcriber](injector)
	_ = do.MustInvoke[*recorder.Recorder](injector)
	_ = do.MustInvoke[*recorder.Playback](injector)

	_ = do.MustInvoke[*service.NotesService](injector)
	_ = do.MustInvoke[*service.TasksService](injector)
	_ = do.MustInvoke[*service.NotebooksService](injector)
	_ = do.MustInvoke[*service.SearchService](injector)
	_ = do.MustInvoke[*service.SettingsService](injector)
	_ = do.MustInvoke[*transfer.Service](injector)
	_ = do.MustInvoke[*providers.DebouncerHandle](injector)

	return nil
}
