package providers

import (
	"github.com/samber/do/v2"

	"github.com/cemcobancem/notevault/internal/config"
	"github.com/cemcobancem/notevault/internal/logger"
	"github.com/cemcobancem/notevault/internal/service"
	"github.com/cemcobancem/notevault/internal/transcribe"
	"github.com/cemcobancem/notevault/internal/transfer"
	"github.com/cemcobancem/notevault/internal/validation"
)

// ProvideNotesService provides the notes service.
func ProvideNotesService(i do.Injector) (*service.NotesService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	transcriber := do.MustInvoke[transcribe.Transcriber](i)

	return service.NewNotesService(storeHandle, transcriber, service.Config{
		AutosaveDebounce:     cfg.Autosave.Debounce,
		TranscriptionTimeout: cfg.Transcription.Timeout,
	}, log.Logger), nil
}

// ProvideTasksService provides the tasks service.
func ProvideTasksService(i do.Injector) (*service.TasksService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)

	return service.NewTasksService(storeHandle, validator, log.Logger), nil
}

// ProvideNotebooksService provides the notebooks service.
func ProvideNotebooksService(i do.Injector) (*service.NotebooksService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)

	return service.NewNotebooksService(storeHandle, validator, log.Logger), nil
}

// ProvideSearchService provides the search service.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return service.NewSearchService(storeHandle, log.Logger), nil
}

// ProvideSettingsService provides the settings service.
func ProvideSettingsService(i do.Injector) (*service.SettingsService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return service.NewSettingsService(storeHandle, log.Logger), nil
}

// ProvideTransferService provides the export/import service.
func ProvideTransferService(i do.Injector) (*transfer.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return transfer.NewService(storeHandle, cfg.Storage.ExportDir, log.Logger), nil
}

// DebouncerHandle wraps the autosave debouncer for lifecycle management.
type DebouncerHandle struct {
	*service.Debouncer
}

// Shutdown implements do.Shutdownable. Pending edits flush before exit.
func (h *DebouncerHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideDebouncer provides the autosave debouncer.
func ProvideDebouncer(i do.Injector) (*DebouncerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return &DebouncerHandle{
		Debouncer: service.NewDebouncer(cfg.Autosave.Debounce, log.Logger),
	}, nil
}
