package reldate

import (
	"iter"
	"time"

	"github.com/gorhill/cronexpr"
)

// CronSequence returns every calendar day, on or after seed, on which expr
// fires at least once. Each day is emitted once regardless of how many
// times it fires that day. The sequence ends if expr has no further fire
// times.
func CronSequence(seed time.Time, expr *cronexpr.Expression) iter.Seq[time.Time] {
	start := Truncate(seed)
	return func(yield func(time.Time) bool) {
		// Next is exclusive of its argument
		from := start.Add(-time.Second)
		for {
			next := expr.Next(from)
			if next.IsZero() {
				return
			}
			day := Truncate(next)
			if !yield(day) {
				return
			}
			from = day.AddDate(0, 0, 1).Add(-time.Second)
		}
	}
}
