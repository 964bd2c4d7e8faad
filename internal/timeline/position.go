package timeline

import (
	"time"

	"github.com/dkeller/planboard/internal/domain/task"
)

// ViewMode selects the zoom granularity of the timeline header.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

const (
	dayViewPixels = 40.0
	// Week and month views render a week at a fixed 80px regardless of
	// which header granularity is shown.
	weekPixels = 80.0
)

// Valid reports whether v is a known view mode.
func (v ViewMode) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	}
	return false
}

// PixelsPerDay returns the horizontal scale factor for the view.
func (v ViewMode) PixelsPerDay() float64 {
	if v == ViewDay {
		return dayViewPixels
	}
	return weekPixels / 7
}

// Position is a task's drawable rectangle within the timeline, in pixels.
type Position struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// TaskPosition maps a task's date interval to pixel geometry. The width uses
// the inclusive day count, so a single-day task still has nonzero width.
func TaskPosition(t task.Task, spanStart time.Time, pxPerDay float64) Position {
	return Position{
		Left:  float64(DiffDays(t.StartDate, spanStart)) * pxPerDay,
		Width: float64(DiffDays(t.EndDate, t.StartDate)+1) * pxPerDay,
	}
}

// TodayOffset returns the pixel offset of the today marker. The marker is
// only drawn when today falls within the span; the second return reports
// that.
func TodayOffset(today time.Time, span Span, pxPerDay float64) (float64, bool) {
	if !span.Contains(today) {
		return 0, false
	}
	return float64(DiffDays(today, span.Start)) * pxPerDay, true
}
