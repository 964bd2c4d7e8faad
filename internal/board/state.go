// Package board holds the client-facing view state for a project timeline
// and the commands that evolve it. State is a plain value; every mutation
// goes through Apply, which returns a new state and never modifies its
// input. That keeps undo, replay, and concurrent readers trivial.
package board

import (
	"github.com/dkeller/planboard/internal/domain/task"
	"github.com/dkeller/planboard/internal/timeline"
)

// State is the complete view state. SearchInput is the raw text as typed;
// Filters.Search is the committed value the filter pipeline actually uses.
// The two differ while a debounce window is open.
type State struct {
	Tasks           []task.Task        `json:"tasks"`
	SelectedProject string             `json:"selected_project,omitempty"`
	Filters         timeline.Filters   `json:"filters"`
	DateRange       timeline.DateRange `json:"date_range"`
	View            timeline.ViewMode  `json:"view"`
	SearchInput     string             `json:"search_input,omitempty"`
}

// NewState returns the initial state: no tasks, no filters, day view,
// unbounded date range.
func NewState() State {
	return State{
		View:      timeline.ViewDay,
		DateRange: timeline.DateRange{Preset: timeline.PresetAll},
	}
}

// clone copies the task slice so command handlers can mutate freely.
func (s State) cloneTasks() []task.Task {
	out := make([]task.Task, len(s.Tasks))
	copy(out, s.Tasks)
	return out
}
