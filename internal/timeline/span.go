package timeline

import (
	"time"

	"github.com/dkeller/planboard/internal/domain/task"
)

// padDays is the fixed padding applied to both ends of the computed span so
// tasks never render flush against the viewport edge.
const padDays = 7

// Span is the visible date window of the timeline, inclusive on both ends.
type Span struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CalculateSpan derives the visible window from a task collection: the
// minimum and maximum over all task start and end dates, padded by seven
// days on each side. The second return is false for an empty collection.
func CalculateSpan(tasks []task.Task) (Span, bool) {
	if len(tasks) == 0 {
		return Span{}, false
	}

	min := Midnight(tasks[0].StartDate)
	max := Midnight(tasks[0].EndDate)
	for _, t := range tasks[1:] {
		if s := Midnight(t.StartDate); s.Before(min) {
			min = s
		}
		if e := Midnight(t.EndDate); e.After(max) {
			max = e
		}
	}

	return Span{
		Start: min.AddDate(0, 0, -padDays),
		End:   max.AddDate(0, 0, padDays),
	}, true
}

// Through extends the span's end to today when the span lies entirely in the
// past, so the today marker stays representable for fully-past task sets.
func (s Span) Through(today time.Time) Span {
	today = Midnight(today)
	if s.End.Before(today) {
		s.End = today
	}
	return s
}

// Contains reports whether d falls within the span, inclusive.
func (s Span) Contains(d time.Time) bool {
	d = Midnight(d)
	return !d.Before(s.Start) && !d.After(s.End)
}

// DayCount returns the inclusive number of days the span covers.
func (s Span) DayCount() int {
	return DiffDays(s.End, s.Start) + 1
}
