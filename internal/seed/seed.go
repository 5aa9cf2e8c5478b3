// Package seed fills an empty store with demo content so a fresh install has
// something on screen.
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/id"
	"github.com/cemcobancem/notevault/internal/store"
)

// Run seeds demo notes and tasks. It is a no-op when the store already holds
// any note or task, so user data is never mixed with demo data.
func Run(ctx context.Context, s store.Store, logger *slog.Logger) error {
	notes, err := s.CountNotes(ctx)
	if err != nil {
		return err
	}
	tasks, err := s.CountTasks(ctx)
	if err != nil {
		return err
	}
	if notes > 0 || tasks > 0 {
		logger.Debug("store not empty, skipping demo seed", "notes", notes, "tasks", tasks)
		return nil
	}

	for _, note := range demoNotes() {
		if err := s.CreateNote(ctx, note); err != nil {
			return err
		}
	}
	for _, task := range demoTasks() {
		if err := s.CreateTask(ctx, task); err != nil {
			return err
		}
	}

	logger.Info("demo content seeded")
	return nil
}

func demoNotes() []*domain.Note {
	welcome := &domain.Note{
		Title: "Welcome to NoteVault",
		Content: "Start capturing your thoughts, ideas, and voice notes. " +
			"Pin important notes, organize them into notebooks, and find " +
			"anything with search.",
		Tags:   []string{"welcome"},
		Pinned: true,
	}
	meeting := &domain.Note{
		Title:   "Meeting Notes",
		Content: "Discuss project timeline and deliverables with the team.",
		Tags:    []string{"work", "meetings"},
	}
	shopping := &domain.Note{
		Title:   "Shopping List",
		Content: "Milk, eggs, bread, coffee beans.",
		Tags:    []string{"personal"},
	}

	notes := []*domain.Note{welcome, meeting, shopping}
	for _, note := range notes {
		note.ID = id.MustGenerate(id.PrefixNote)
		note.InitTimestamps()
	}
	return notes
}

func demoTasks() []*domain.Task {
	tomorrow := time.Now().Add(24 * time.Hour)

	proposal := &domain.Task{
		Title:       "Complete project proposal",
		Description: "Draft and review the proposal document.",
		DueDate:     &tomorrow,
		Priority:    domain.PriorityHigh,
		Status:      domain.StatusOpen,
		Tags:        []string{"work"},
	}
	groceries := &domain.Task{
		Title:    "Buy groceries",
		Priority: domain.PriorityMedium,
		Status:   domain.StatusOpen,
		Tags:     []string{"personal"},
	}
	dentist := &domain.Task{
		Title:    "Call dentist",
		Priority: domain.PriorityLow,
		Status:   domain.StatusDone,
	}

	tasks := []*domain.Task{proposal, groceries, dentist}
	for _, task := range tasks {
		task.ID = id.MustGenerate(id.PrefixTask)
		task.InitTimestamps()
	}
	return tasks
}
