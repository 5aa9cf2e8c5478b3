// Package main provides a tool to seed the database with demo content.
//
// Usage:
//
//	DATA_PATH=~/NoteVault go run ./cmd/seed
//	DATA_PATH=~/NoteVault go run ./cmd/seed -store-backend=sqlite
package main

import (
	"context"

	"github.com/cemcobancem/notevault/internal/config"
	"github.com/cemcobancem/notevault/internal/logger"
	"github.com/cemcobancem/notevault/internal/seed"
	"github.com/cemcobancem/notevault/internal/store"
	"github.com/cemcobancem/notevault/internal/store/sqlite"
)

func main() {
	log := logger.New(logger.Config{Format: "pretty"})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config", "error", err)
	}

	log.Info("Opening store", "backend", cfg.Storage.Backend, "path", cfg.DatabasePath())

	var s store.Store
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		s, err = sqlite.Open(cfg.DatabasePath(), log.Logger)
	default:
		s, err = store.Open(cfg.DatabasePath(), log.Logger)
	}
	if err != nil {
		log.Fatal("Failed to open store", "error", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := seed.Run(ctx, s, log.Logger); err != nil {
		log.Fatal("Failed to seed", "error", err)
	}

	notes, _ := s.CountNotes(ctx)
	tasks, _ := s.CountTasks(ctx)
	log.WithField("notes", notes).WithField("tasks", tasks).Info("Store seeded")
}
