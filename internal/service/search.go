package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/store"
)

// SearchResults holds the notes and tasks matching a query, each ordered by
// UpdatedAt descending.
type SearchResults struct {
	Notes []*domain.Note
	Tasks []*domain.Task
}

// SearchService runs case-insensitive substring search across notes and
// tasks. Matching uses Unicode case folding so queries work beyond ASCII.
type SearchService struct {
	store  store.Store
	logger *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(s store.Store, logger *slog.Logger) *SearchService {
	return &SearchService{store: s, logger: logger}
}

// Search matches the query as a substring against note titles, contents, and
// tags, and task titles, descriptions, and tags. An empty or whitespace-only
// query matches everything.
func (s *SearchService) Search(ctx context.Context, query string) (*SearchResults, error) {
	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list notes")
	}
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list tasks")
	}

	results := &SearchResults{}
	query = strings.TrimSpace(query)
	if query == "" {
		results.Notes = notes
		results.Tasks = tasks
	} else {
		// Caser carries internal state, so each search builds its own.
		m := matcher{caser: cases.Fold(), needle: ""}
		m.needle = m.caser.String(query)

		for _, note := range notes {
			if m.any(note.Title, note.Content) || m.anyOf(note.Tags) {
				results.Notes = append(results.Notes, note)
			}
		}
		for _, task := range tasks {
			if m.any(task.Title, task.Description) || m.anyOf(task.Tags) {
				results.Tasks = append(results.Tasks, task)
			}
		}
	}

	slices.SortStableFunc(results.Notes, func(a, b *domain.Note) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	slices.SortStableFunc(results.Tasks, func(a, b *domain.Task) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return results, nil
}

type matcher struct {
	caser  cases.Caser
	needle string
}

func (m *matcher) contains(field string) bool {
	return strings.Contains(m.caser.String(field), m.needle)
}

func (m *matcher) any(fields ...string) bool {
	for _, f := range fields {
		if m.contains(f) {
			return true
		}
	}
	return false
}

func (m *matcher) anyOf(tags []string) bool {
	return m.any(tags...)
}
