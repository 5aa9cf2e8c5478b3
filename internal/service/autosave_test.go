package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/service"
)

// commitLog collects committed values.
type commitLog struct {
	mu     sync.Mutex
	values []string
}

func (c *commitLog) commit(v string) func() error {
	return func() error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.values = append(c.values, v)
		return nil
	}
}

func (c *commitLog) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.values...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	log := &commitLog{}
	d := service.NewDebouncer(30*time.Millisecond, testLogger())
	defer d.Close()

	// A burst of edits within the window commits only the last one
	d.Enqueue("note_1", log.commit("v1"))
	d.Enqueue("note_1", log.commit("v2"))
	d.Enqueue("note_1", log.commit("v3"))

	require.Eventually(t, func() bool {
		return len(log.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, []string{"v3"}, log.snapshot())
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	log := &commitLog{}
	d := service.NewDebouncer(20*time.Millisecond, testLogger())
	defer d.Close()

	d.Enqueue("note_1", log.commit("one"))
	d.Enqueue("note_2", log.commit("two"))

	require.Eventually(t, func() bool {
		return len(log.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)
	require.ElementsMatch(t, []string{"one", "two"}, log.snapshot())
}

func TestDebouncer_FlushCommitsImmediately(t *testing.T) {
	log := &commitLog{}
	d := service.NewDebouncer(time.Hour, testLogger())
	defer d.Close()

	d.Enqueue("note_1", log.commit("pending"))
	d.Flush("note_1")

	require.Equal(t, []string{"pending"}, log.snapshot())

	// Flushing again is a no-op
	d.Flush("note_1")
	require.Len(t, log.snapshot(), 1)
}

func TestDebouncer_CloseFlushesPending(t *testing.T) {
	log := &commitLog{}
	d := service.NewDebouncer(time.Hour, testLogger())

	// An edit made just before shutdown still persists
	d.Enqueue("note_1", log.commit("last edit"))
	d.Close()

	require.Equal(t, []string{"last edit"}, log.snapshot())

	// Work enqueued after close is dropped
	d.Enqueue("note_2", log.commit("too late"))
	require.Len(t, log.snapshot(), 1)
}

func TestDebouncer_ReplacementRestartsWindow(t *testing.T) {
	log := &commitLog{}
	d := service.NewDebouncer(40*time.Millisecond, testLogger())
	defer d.Close()

	d.Enqueue("note_1", log.commit("v1"))
	time.Sleep(25 * time.Millisecond)
	require.Empty(t, log.snapshot(), "commit must not fire before the window elapses")

	d.Enqueue("note_1", log.commit("v2"))
	time.Sleep(25 * time.Millisecond)
	require.Empty(t, log.snapshot(), "replacement restarts the quiet window")

	require.Eventually(t, func() bool {
		return len(log.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, []string{"v2"}, log.snapshot())
}
