package board

import (
	"github.com/dkeller/planboard/internal/domain/task"
	"github.com/dkeller/planboard/internal/timeline"
)

// Command is a request to evolve the state. Implementations are plain data;
// the reduce method computes the successor state without mutating prev.
type Command interface {
	reduce(prev State) State
}

// Apply computes the next state for cmd. It is pure: prev is never
// modified, and the same inputs always yield the same output.
func Apply(prev State, cmd Command) State {
	return cmd.reduce(prev)
}

// SelectProject switches the board to another project and resets the task
// list; the caller reloads tasks for the new project afterwards.
type SelectProject struct {
	ProjectID string
	Tasks     []task.Task
}

func (c SelectProject) reduce(prev State) State {
	next := prev
	next.SelectedProject = c.ProjectID
	next.Tasks = make([]task.Task, len(c.Tasks))
	copy(next.Tasks, c.Tasks)
	return next
}

// AddTask appends a task to the board.
type AddTask struct {
	Task task.Task
}

func (c AddTask) reduce(prev State) State {
	next := prev
	next.Tasks = append(prev.cloneTasks(), c.Task)
	return next
}

// UpdateTask replaces the task with a matching ID. An unknown ID leaves the
// state unchanged; the persistence layer is where a missing task surfaces
// as an error.
type UpdateTask struct {
	Task task.Task
}

func (c UpdateTask) reduce(prev State) State {
	for i, t := range prev.Tasks {
		if t.ID == c.Task.ID {
			next := prev
			next.Tasks = prev.cloneTasks()
			next.Tasks[i] = c.Task
			return next
		}
	}
	return prev
}

// DeleteTask removes a task and clears any dependency references other
// tasks hold on it, so the board never shows a dangling dependency.
type DeleteTask struct {
	TaskID string
}

func (c DeleteTask) reduce(prev State) State {
	found := false
	for _, t := range prev.Tasks {
		if t.ID == c.TaskID {
			found = true
			break
		}
	}
	if !found {
		return prev
	}

	next := prev
	next.Tasks = make([]task.Task, 0, len(prev.Tasks)-1)
	for _, t := range prev.Tasks {
		if t.ID == c.TaskID {
			continue
		}
		if t.DependencyID != nil && *t.DependencyID == c.TaskID {
			t.DependencyID = nil
		}
		next.Tasks = append(next.Tasks, t)
	}
	return next
}

// SetStatusFilter replaces the status selection.
type SetStatusFilter struct {
	Statuses []task.Status
}

func (c SetStatusFilter) reduce(prev State) State {
	next := prev
	next.Filters.Statuses = c.Statuses
	return next
}

// SetAssigneeFilter replaces the assignee selection.
type SetAssigneeFilter struct {
	Assignees []string
}

func (c SetAssigneeFilter) reduce(prev State) State {
	next := prev
	next.Filters.Assignees = c.Assignees
	return next
}

// SetSearchInput records what the user has typed without committing it to
// the filter pipeline. The store commits it via SetSearchText after the
// debounce interval.
type SetSearchInput struct {
	Text string
}

func (c SetSearchInput) reduce(prev State) State {
	next := prev
	next.SearchInput = c.Text
	return next
}

// SetSearchText commits search text to the active filters.
type SetSearchText struct {
	Text string
}

func (c SetSearchText) reduce(prev State) State {
	next := prev
	next.Filters.Search = c.Text
	return next
}

// SetView switches the timeline density.
type SetView struct {
	View timeline.ViewMode
}

func (c SetView) reduce(prev State) State {
	if !c.View.Valid() {
		return prev
	}
	next := prev
	next.View = c.View
	return next
}

// SetDateRange replaces the date-range filter.
type SetDateRange struct {
	Range timeline.DateRange
}

func (c SetDateRange) reduce(prev State) State {
	next := prev
	next.DateRange = c.Range
	return next
}

// ClearFilters resets every filter dimension, search input included, but
// leaves the task list, project selection, and view mode alone.
type ClearFilters struct{}

func (c ClearFilters) reduce(prev State) State {
	next := prev
	next.Filters = timeline.Filters{}
	next.DateRange = timeline.DateRange{Preset: timeline.PresetAll}
	next.SearchInput = ""
	return next
}
