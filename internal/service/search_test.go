package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/service"
	"github.com/cemcobancem/notevault/internal/store"
)

func seedSearchData(t *testing.T, s *store.BadgerStore) {
	t.Helper()
	ctx := context.Background()

	notes := []*domain.Note{
		{Title: "Meeting Agenda", Content: "quarterly planning", Tags: []string{"work"}},
		{Title: "Recipe", Content: "pasta with GARLIC butter"},
		{Title: "Unrelated", Content: "nothing here", Tags: []string{"Grocery"}},
	}
	for i, note := range notes {
		note.ID = "note_" + string(rune('a'+i))
		note.InitTimestamps()
		require.NoError(t, s.CreateNote(ctx, note))
	}

	tasks := []*domain.Task{
		{Title: "Prepare meeting slides", Priority: domain.PriorityHigh, Status: domain.StatusOpen},
		{Title: "Water plants", Description: "the garlic pot too", Priority: domain.PriorityLow, Status: domain.StatusOpen},
	}
	for i, task := range tasks {
		task.ID = "task_" + string(rune('a'+i))
		task.InitTimestamps()
		require.NoError(t, s.CreateTask(ctx, task))
	}
}

func setupSearch(t *testing.T) *service.SearchService {
	t.Helper()

	s := setupTestStore(t)
	seedSearchData(t, s)
	return service.NewSearchService(s, testLogger())
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	svc := setupSearch(t)
	ctx := context.Background()

	// "garlic" matches note content (stored uppercase) and task description
	results, err := svc.Search(ctx, "garlic")
	require.NoError(t, err)
	require.Len(t, results.Notes, 1)
	require.Equal(t, "Recipe", results.Notes[0].Title)
	require.Len(t, results.Tasks, 1)
	require.Equal(t, "Water plants", results.Tasks[0].Title)

	// Query case does not matter either
	results, err = svc.Search(ctx, "MEETING")
	require.NoError(t, err)
	require.Len(t, results.Notes, 1)
	require.Len(t, results.Tasks, 1)
}

func TestSearch_MatchesTags(t *testing.T) {
	svc := setupSearch(t)

	results, err := svc.Search(context.Background(), "grocery")
	require.NoError(t, err)
	require.Len(t, results.Notes, 1)
	require.Equal(t, "Unrelated", results.Notes[0].Title)
}

func TestSearch_EmptyQueryReturnsEverything(t *testing.T) {
	svc := setupSearch(t)
	ctx := context.Background()

	for _, query := range []string{"", "   ", "\t"} {
		results, err := svc.Search(ctx, query)
		require.NoError(t, err)
		require.Len(t, results.Notes, 3)
		require.Len(t, results.Tasks, 2)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	svc := setupSearch(t)

	results, err := svc.Search(context.Background(), "zzz-nothing")
	require.NoError(t, err)
	require.Empty(t, results.Notes)
	require.Empty(t, results.Tasks)
}

func TestSearch_ResultsOrderedByUpdatedAt(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	older := &domain.Note{Title: "alpha first"}
	older.ID = "note_1"
	older.InitTimestamps()
	require.NoError(t, s.CreateNote(ctx, older))

	newer := &domain.Note{Title: "alpha second"}
	newer.ID = "note_2"
	newer.InitTimestamps()
	require.NoError(t, s.CreateNote(ctx, newer))

	svc := service.NewSearchService(s, testLogger())
	results, err := svc.Search(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, results.Notes, 2)
	require.Equal(t, "alpha second", results.Notes[0].Title)
}
