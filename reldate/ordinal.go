package reldate

import (
	"iter"
	"time"
)

// daysOfMonth returns the days of the month containing t, in order.
func daysOfMonth(t time.Time) iter.Seq[time.Time] {
	first := FirstOfMonth(t)
	return func(yield func(time.Time) bool) {
		for day := range Steps(first.AddDate(0, 0, -1), AddDays(1)) {
			if day.Month() != first.Month() || !yield(day) {
				return
			}
		}
	}
}

// ResolveOrdinalWeekday returns the ordinal-th occurrence of weekday in the
// month containing monthStart, counting from 1.
//
// If the month has fewer occurrences than ordinal, the last occurrence is
// returned, so the 5th Friday of a month with four Fridays is its 4th.
// A non-positive ordinal also resolves to the last occurrence, and a
// weekday outside time.Sunday to time.Saturday to the zero time.
func ResolveOrdinalWeekday(monthStart time.Time, weekday time.Weekday, ordinal int) time.Time {
	var last time.Time
	n := 0
	for day := range daysOfMonth(monthStart) {
		if day.Weekday() != weekday {
			continue
		}
		n++
		if n == ordinal {
			return day
		}
		last = day
	}
	return last
}

// OccurrencesInMonth returns the number of times weekday occurs in the
// month containing t, which is always 4 or 5.
func OccurrencesInMonth(t time.Time, weekday time.Weekday) int {
	n := 0
	for day := range daysOfMonth(t) {
		if day.Weekday() == weekday {
			n++
		}
	}
	return n
}
