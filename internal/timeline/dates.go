// Package timeline implements the pure date, layout, and filtering engine
// behind the Gantt view: deriving a visible date window from a task set,
// mapping task intervals to pixel geometry, resolving calendar presets, and
// composing filter predicates.
package timeline

import (
	"iter"
	"time"
)

// Midnight normalizes t to midnight UTC on its calendar date. All engine
// arithmetic works on these normalized dates; time-of-day never matters.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DiffDays returns the signed whole-day difference a - b on calendar dates.
func DiffDays(a, b time.Time) int {
	return int(Midnight(a).Sub(Midnight(b)) / (24 * time.Hour))
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// WeekStart returns the Sunday on or before d.
func WeekStart(d time.Time) time.Time {
	d = Midnight(d)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Days yields every calendar date from start to end inclusive. The sequence
// is finite and restartable; it is empty when start is after end.
func Days(start, end time.Time) iter.Seq[time.Time] {
	start, end = Midnight(start), Midnight(end)
	return func(yield func(time.Time) bool) {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Weeks yields the week-start dates (Sundays) covering [start, end],
// beginning at WeekStart(start) and including any week whose start is on or
// before end.
func Weeks(start, end time.Time) iter.Seq[time.Time] {
	first, last := WeekStart(start), Midnight(end)
	return func(yield func(time.Time) bool) {
		for d := first; !d.After(last); d = d.AddDate(0, 0, 7) {
			if !yield(d) {
				return
			}
		}
	}
}

// Months yields the first-of-month dates covering [start, end], beginning at
// the first day of start's month and including any month whose first day is
// on or before end.
func Months(start, end time.Time) iter.Seq[time.Time] {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := Midnight(end)
	return func(yield func(time.Time) bool) {
		for d := first; !d.After(last); d = d.AddDate(0, 1, 0) {
			if !yield(d) {
				return
			}
		}
	}
}
