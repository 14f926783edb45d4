package reldate

import (
	"fmt"
	"iter"
	"time"
)

// MonthSequence returns the ordinal-th weekday of every month, starting
// with the month containing seed. The first date may precede seed.
func MonthSequence(seed time.Time, weekday time.Weekday, ordinal int) iter.Seq[time.Time] {
	// one month back, so the seed's own month is the first step
	start := FirstOfMonth(seed).AddDate(0, -1, 0)
	return Map(Steps(start, AddMonths(1)), func(month time.Time) time.Time {
		return ResolveOrdinalWeekday(month, weekday, ordinal)
	})
}

// NextWeekday returns the first date on or after seed that falls on
// weekday. It panics if weekday is not in the range time.Sunday to
// time.Saturday.
func NextWeekday(seed time.Time, weekday time.Weekday) time.Time {
	if weekday < time.Sunday || weekday > time.Saturday {
		panic(fmt.Sprintf("reldate: invalid weekday %d", weekday))
	}
	day := Truncate(seed)
	for candidate := range Steps(day.AddDate(0, 0, -1), AddDays(1)) {
		if candidate.Weekday() == weekday {
			return candidate
		}
	}
	panic("unreachable")
}

// WeekSequence returns every occurrence of weekday on or after seed.
// Like NextWeekday, it panics on an invalid weekday.
func WeekSequence(seed time.Time, weekday time.Weekday) iter.Seq[time.Time] {
	first := NextWeekday(seed, weekday)
	return Steps(first.AddDate(0, 0, -7), AddDays(7))
}

// YearSequence returns the dayOfYear-th day of every year, starting with
// the seed's year if that day has not passed yet and the following year
// otherwise.
//
// Days are counted from January 1 without clamping: day 366 of a common
// year is January 1 of the next year.
func YearSequence(seed time.Time, dayOfYear int) iter.Seq[time.Time] {
	base := seed.Year()
	if seed.YearDay() > dayOfYear {
		base++
	}
	start := Date(base-1, time.January, 1)
	return Map(Steps(start, AddYears(1)), func(january1 time.Time) time.Time {
		return january1.AddDate(0, 0, dayOfYear-1)
	})
}
