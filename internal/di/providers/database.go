package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/cemcobancem/notevault/internal/config"
	"github.com/cemcobancem/notevault/internal/logger"
	"github.com/cemcobancem/notevault/internal/seed"
	"github.com/cemcobancem/notevault/internal/store"
	"github.com/cemcobancem/notevault/internal/store/sqlite"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore opens the store backend selected in configuration.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := cfg.DatabasePath()

	var (
		s   store.Store
		err error
	)
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		s, err = sqlite.Open(dbPath, log.Logger)
	default:
		s, err = store.Open(dbPath, log.Logger)
	}
	if err != nil {
		return nil, err
	}

	log.Info("store initialized", "backend", cfg.Storage.Backend, "path", dbPath)
	return &StoreHandle{Store: s}, nil
}

// Bootstrap marks first-run initialization as complete.
type Bootstrap struct {
	Seeded bool
}

// ProvideBootstrap seeds demo content into an empty store when enabled.
func ProvideBootstrap(i do.Injector) (*Bootstrap, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	if !cfg.Seed.Demo {
		return &Bootstrap{}, nil
	}

	if err := seed.Run(context.Background(), storeHandle, log.Logger); err != nil {
		return nil, err
	}
	return &Bootstrap{Seeded: true}, nil
}
