package board

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkeller/planboard/internal/domain/task"
)

func TestStoreDispatchAndSnapshot(t *testing.T) {
	store := NewStore(slog.Default())
	defer store.Close()

	store.Dispatch(AddTask{Task: boardTask("t1")})

	snap := store.State()
	require.Len(t, snap.Tasks, 1)

	// Mutating the snapshot must not leak into the store.
	snap.Tasks[0].Title = "mutated"
	require.Equal(t, "Task t1", store.State().Tasks[0].Title)
}

func TestStoreVisibleTasks(t *testing.T) {
	store := NewStore(slog.Default())
	defer store.Close()

	done := boardTask("t1")
	done.Status = task.StatusCompleted
	store.Dispatch(AddTask{Task: done})
	store.Dispatch(AddTask{Task: boardTask("t2")})

	store.Dispatch(SetStatusFilter{Statuses: []task.Status{task.StatusCompleted}})

	visible := store.VisibleTasks()
	require.Len(t, visible, 1)
	require.Equal(t, "t1", visible[0].ID)
}

func TestStoreTypeSearchDebounces(t *testing.T) {
	store := NewStoreWithDebounce(slog.Default(), 20*time.Millisecond)
	defer store.Close()

	store.TypeSearch("d")
	store.TypeSearch("de")
	store.TypeSearch("des")

	// Input is visible immediately, the filter is not committed yet.
	snap := store.State()
	require.Equal(t, "des", snap.SearchInput)
	require.Empty(t, snap.Filters.Search)

	require.Eventually(t, func() bool {
		return store.State().Filters.Search == "des"
	}, time.Second, 5*time.Millisecond)
}

func TestStoreTypeSearchOnlyLastValueCommits(t *testing.T) {
	store := NewStoreWithDebounce(slog.Default(), 30*time.Millisecond)
	defer store.Close()

	store.TypeSearch("first")
	time.Sleep(10 * time.Millisecond)
	store.TypeSearch("second")

	require.Eventually(t, func() bool {
		return store.State().Filters.Search != ""
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, "second", store.State().Filters.Search)
}

func TestStoreCloseCancelsPendingSearch(t *testing.T) {
	store := NewStoreWithDebounce(slog.Default(), 20*time.Millisecond)

	store.TypeSearch("pending")
	store.Close()

	time.Sleep(50 * time.Millisecond)
	require.Empty(t, store.State().Filters.Search)
}
