package reldate

import (
	"iter"
	"time"
)

// StepFunc advances a date by one step.
type StepFunc func(time.Time) time.Time

// Steps returns the unbounded sequence step(start), step(step(start)), ...
// The start date itself is never emitted. Each iteration starts over from
// start, so the sequence can be ranged over any number of times.
func Steps(start time.Time, step StepFunc) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for date := step(start); ; date = step(date) {
			if !yield(date) {
				return
			}
		}
	}
}

// AddDays returns a StepFunc moving n days forward.
func AddDays(n int) StepFunc {
	return func(t time.Time) time.Time {
		return t.AddDate(0, 0, n)
	}
}

// AddMonths returns a StepFunc moving n months forward. It should only be
// applied to dates on the first of the month, as time.AddDate normalizes
// days past the end of the target month into the following month.
func AddMonths(n int) StepFunc {
	return func(t time.Time) time.Time {
		return t.AddDate(0, n, 0)
	}
}

// AddYears returns a StepFunc moving n years forward.
func AddYears(n int) StepFunc {
	return func(t time.Time) time.Time {
		return t.AddDate(n, 0, 0)
	}
}

// Map returns a sequence applying fn to every element of seq.
func Map[T, R any](seq iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// takeCap bounds the preallocation of Take, as n may be far larger than
// what seq produces.
const takeCap = 64

// Take collects at most n elements of seq and stops the iteration.
// It returns nil if n is not positive.
func Take[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	result := make([]T, 0, min(n, takeCap))
	for v := range seq {
		result = append(result, v)
		if len(result) == n {
			break
		}
	}
	return result
}
