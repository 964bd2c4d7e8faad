package board

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dkeller/planboard/internal/domain/task"
	"github.com/dkeller/planboard/internal/timeline"
)

// Store owns a State and serializes command dispatch. Reads return copies,
// so callers can hold results across later dispatches.
type Store struct {
	mu     sync.Mutex
	state  State
	search *debouncer
	logger *slog.Logger
}

// NewStore creates a store with the initial state and the default search
// debounce interval.
func NewStore(logger *slog.Logger) *Store {
	return NewStoreWithDebounce(logger, DefaultDebounce)
}

// NewStoreWithDebounce creates a store with a custom debounce interval.
// Tests use short intervals to avoid slow sleeps.
func NewStoreWithDebounce(logger *slog.Logger, debounce time.Duration) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state:  NewState(),
		search: newDebouncer(debounce),
		logger: logger,
	}
}

// Dispatch applies cmd and installs the resulting state.
func (s *Store) Dispatch(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, cmd)
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Tasks = s.state.cloneTasks()
	return snapshot
}

// TypeSearch records the keystroke immediately and commits it to the
// filter pipeline once typing pauses for the debounce interval.
func (s *Store) TypeSearch(text string) {
	s.Dispatch(SetSearchInput{Text: text})
	s.search.Call(func() {
		s.logger.Debug("committing search text", "text", text)
		s.Dispatch(SetSearchText{Text: text})
	})
}

// Close cancels any pending debounced search commit.
func (s *Store) Close() {
	s.search.Stop()
}

// VisibleTasks runs the filter pipeline over the current state and returns
// the tasks the timeline should render.
func (s *Store) VisibleTasks() []task.Task {
	st := s.State()
	return timeline.Apply(st.Tasks, st.Filters, st.DateRange)
}
