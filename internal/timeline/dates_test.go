package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDiffDays(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2024, 3, 15), date(2024, 3, 15), 0},
		{"next day", date(2024, 3, 16), date(2024, 3, 15), 1},
		{"negative", date(2024, 3, 10), date(2024, 3, 15), -5},
		{"across month", date(2024, 4, 2), date(2024, 3, 30), 3},
		{"leap february", date(2024, 3, 1), date(2024, 2, 28), 2},
		{"non-leap february", date(2023, 3, 1), date(2023, 2, 28), 1},
		{"across year", date(2025, 1, 2), date(2024, 12, 30), 3},
		{"ignores time of day", time.Date(2024, 3, 16, 23, 59, 0, 0, time.UTC), time.Date(2024, 3, 15, 0, 1, 0, 0, time.UTC), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DiffDays(tc.a, tc.b))
		})
	}
}

func TestWeekStart(t *testing.T) {
	// 2024-03-10 is a Sunday.
	require.Equal(t, date(2024, 3, 10), WeekStart(date(2024, 3, 10)))
	require.Equal(t, date(2024, 3, 10), WeekStart(date(2024, 3, 13)))
	require.Equal(t, date(2024, 3, 10), WeekStart(date(2024, 3, 16)))
	require.Equal(t, date(2024, 3, 17), WeekStart(date(2024, 3, 17)))
}

func TestDays(t *testing.T) {
	seq := Days(date(2024, 3, 30), date(2024, 4, 2))

	var got []time.Time
	for d := range seq {
		got = append(got, d)
	}
	require.Equal(t, []time.Time{
		date(2024, 3, 30), date(2024, 3, 31), date(2024, 4, 1), date(2024, 4, 2),
	}, got)

	// Restartable: a second pass yields the same sequence.
	var again []time.Time
	for d := range seq {
		again = append(again, d)
	}
	require.Equal(t, got, again)
}

func TestDaysEmptyWhenStartAfterEnd(t *testing.T) {
	for range Days(date(2024, 3, 2), date(2024, 3, 1)) {
		t.Fatal("expected empty sequence")
	}
}

func TestDaysEarlyStop(t *testing.T) {
	count := 0
	for range Days(date(2024, 1, 1), date(2024, 12, 31)) {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}

func TestWeeks(t *testing.T) {
	// 2024-03-13 is a Wednesday; its week starts 2024-03-10.
	var got []time.Time
	for d := range Weeks(date(2024, 3, 13), date(2024, 3, 24)) {
		got = append(got, d)
	}
	require.Equal(t, []time.Time{
		date(2024, 3, 10), date(2024, 3, 17), date(2024, 3, 24),
	}, got)
}

func TestWeeksIncludesPartialLastWeek(t *testing.T) {
	// End falls mid-week; the week starting on the end date's Sunday is
	// still included because its start is <= end.
	var got []time.Time
	for d := range Weeks(date(2024, 3, 10), date(2024, 3, 18)) {
		got = append(got, d)
	}
	require.Equal(t, []time.Time{date(2024, 3, 10), date(2024, 3, 17)}, got)
}

func TestMonths(t *testing.T) {
	var got []time.Time
	for d := range Months(date(2024, 11, 20), date(2025, 2, 3)) {
		got = append(got, d)
	}
	require.Equal(t, []time.Time{
		date(2024, 11, 1), date(2024, 12, 1), date(2025, 1, 1), date(2025, 2, 1),
	}, got)
}

func TestMonthsSingleMonth(t *testing.T) {
	var got []time.Time
	for d := range Months(date(2024, 3, 5), date(2024, 3, 25)) {
		got = append(got, d)
	}
	require.Equal(t, []time.Time{date(2024, 3, 1)}, got)
}

func TestSameDay(t *testing.T) {
	require.True(t, SameDay(
		time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC),
	))
	require.False(t, SameDay(date(2024, 3, 15), date(2024, 3, 16)))
}
