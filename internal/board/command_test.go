package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkeller/planboard/internal/domain/task"
	"github.com/dkeller/planboard/internal/timeline"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func boardTask(id string) task.Task {
	return task.Task{
		ID:        id,
		ProjectID: "p1",
		Title:     "Task " + id,
		Status:    task.StatusNotStarted,
		Assignee:  "alice",
		StartDate: date(2024, 3, 1),
		EndDate:   date(2024, 3, 5),
	}
}

func TestApplyAddTask(t *testing.T) {
	prev := NewState()
	next := Apply(prev, AddTask{Task: boardTask("t1")})

	require.Len(t, next.Tasks, 1)
	require.Empty(t, prev.Tasks, "previous state must not change")
}

func TestApplyUpdateTask(t *testing.T) {
	prev := Apply(NewState(), AddTask{Task: boardTask("t1")})

	updated := boardTask("t1")
	updated.Title = "Renamed"
	next := Apply(prev, UpdateTask{Task: updated})

	require.Equal(t, "Renamed", next.Tasks[0].Title)
	require.Equal(t, "Task t1", prev.Tasks[0].Title, "previous state must not change")
}

func TestApplyUpdateTaskUnknownIDIsNoOp(t *testing.T) {
	prev := Apply(NewState(), AddTask{Task: boardTask("t1")})

	ghost := boardTask("missing")
	next := Apply(prev, UpdateTask{Task: ghost})
	require.Equal(t, prev, next)
}

func TestApplyDeleteTaskClearsDependencies(t *testing.T) {
	// B and C both depend on A; deleting A must clear both references.
	a := boardTask("a")
	depA := "a"
	b := boardTask("b")
	b.DependencyID = &depA
	c := boardTask("c")
	c.DependencyID = &depA

	state := NewState()
	for _, tk := range []task.Task{a, b, c} {
		state = Apply(state, AddTask{Task: tk})
	}

	next := Apply(state, DeleteTask{TaskID: "a"})
	require.Len(t, next.Tasks, 2)
	for _, tk := range next.Tasks {
		require.Nil(t, tk.DependencyID)
	}

	// Original state still has the dependency links.
	require.NotNil(t, state.Tasks[1].DependencyID)
	require.NotNil(t, state.Tasks[2].DependencyID)
}

func TestApplyDeleteTaskUnknownIDIsNoOp(t *testing.T) {
	prev := Apply(NewState(), AddTask{Task: boardTask("t1")})
	next := Apply(prev, DeleteTask{TaskID: "missing"})
	require.Equal(t, prev, next)
}

func TestApplySelectProjectReplacesTasks(t *testing.T) {
	prev := Apply(NewState(), AddTask{Task: boardTask("t1")})

	next := Apply(prev, SelectProject{
		ProjectID: "p2",
		Tasks:     []task.Task{boardTask("x"), boardTask("y")},
	})
	require.Equal(t, "p2", next.SelectedProject)
	require.Len(t, next.Tasks, 2)
	require.Len(t, prev.Tasks, 1)
}

func TestApplyFilterCommands(t *testing.T) {
	state := NewState()

	state = Apply(state, SetStatusFilter{Statuses: []task.Status{task.StatusBlocked}})
	state = Apply(state, SetAssigneeFilter{Assignees: []string{"alice", "bob"}})
	state = Apply(state, SetSearchText{Text: "design"})
	state = Apply(state, SetDateRange{Range: timeline.ResolvePreset(timeline.PresetThisMonth, date(2024, 3, 15))})

	require.Equal(t, []task.Status{task.StatusBlocked}, state.Filters.Statuses)
	require.Equal(t, []string{"alice", "bob"}, state.Filters.Assignees)
	require.Equal(t, "design", state.Filters.Search)
	require.Equal(t, timeline.PresetThisMonth, state.DateRange.Preset)

	cleared := Apply(state, ClearFilters{})
	require.Empty(t, cleared.Filters.Statuses)
	require.Empty(t, cleared.Filters.Assignees)
	require.Empty(t, cleared.Filters.Search)
	require.Empty(t, cleared.SearchInput)
	require.Equal(t, timeline.PresetAll, cleared.DateRange.Preset)
}

func TestApplySetViewRejectsUnknownMode(t *testing.T) {
	state := NewState()

	next := Apply(state, SetView{View: timeline.ViewMonth})
	require.Equal(t, timeline.ViewMonth, next.View)

	same := Apply(next, SetView{View: timeline.ViewMode("year")})
	require.Equal(t, timeline.ViewMonth, same.View)
}

func TestApplySearchInputDoesNotTouchFilters(t *testing.T) {
	state := Apply(NewState(), SetSearchInput{Text: "des"})
	require.Equal(t, "des", state.SearchInput)
	require.Empty(t, state.Filters.Search)
}
