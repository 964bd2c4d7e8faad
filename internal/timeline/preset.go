package timeline

import "time"

// Preset names a calendar-relative date interval.
type Preset string

const (
	PresetAll         Preset = "all"
	PresetThisMonth   Preset = "this-month"
	PresetNextMonth   Preset = "next-month"
	PresetThisQuarter Preset = "this-quarter"
	PresetNextQuarter Preset = "next-quarter"
	PresetThisYear    Preset = "this-year"
	PresetNextYear    Preset = "next-year"
	PresetCustom      Preset = "custom"
)

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	switch p {
	case PresetAll, PresetThisMonth, PresetNextMonth, PresetThisQuarter,
		PresetNextQuarter, PresetThisYear, PresetNextYear, PresetCustom:
		return true
	}
	return false
}

// DateRange bounds the date-range filter. A nil bound is unbounded on that
// side; all/custom with no bounds means no filtering.
type DateRange struct {
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"`
	Preset Preset     `json:"preset"`
}

// ResolvePreset converts a named preset into concrete bounds relative to
// now. The clock is passed explicitly so tests can pin it. Month ends are
// computed as day zero of the following month, which the time package
// normalizes to the last calendar day, month lengths included.
func ResolvePreset(p Preset, now time.Time) DateRange {
	year, month := now.Year(), now.Month()

	switch p {
	case PresetThisMonth:
		return boundedRange(p, monthStart(year, month), monthEnd(year, month))
	case PresetNextMonth:
		return boundedRange(p, monthStart(year, month+1), monthEnd(year, month+1))
	case PresetThisQuarter:
		q := quarterStartMonth(month)
		return boundedRange(p, monthStart(year, q), monthEnd(year, q+2))
	case PresetNextQuarter:
		q := quarterStartMonth(month) + 3
		return boundedRange(p, monthStart(year, q), monthEnd(year, q+2))
	case PresetThisYear:
		return boundedRange(p, monthStart(year, time.January), monthEnd(year, time.December))
	case PresetNextYear:
		return boundedRange(p, monthStart(year+1, time.January), monthEnd(year+1, time.December))
	default:
		return DateRange{Preset: p}
	}
}

// quarterStartMonth rounds a month down to its quarter's first month.
func quarterStartMonth(m time.Month) time.Month {
	return time.Month((int(m)-1)/3*3 + 1)
}

func monthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func monthEnd(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

func boundedRange(p Preset, start, end time.Time) DateRange {
	return DateRange{Start: &start, End: &end, Preset: p}
}
