// Package reldate generates sequences of calendar dates from relative rules
// such as "the 3rd Friday of every month", "every Tuesday" or "the 256th day
// of every year".
//
// Every sequence is an iter.Seq[time.Time] that is lazy, unbounded and
// restartable: ranging over it computes only the dates that are consumed,
// and ranging again from the same inputs yields the same dates. Take bounds
// a sequence to a fixed number of results.
//
// All dates are calendar dates, represented as time.Time values at midnight
// UTC (see Date and Truncate). Working in UTC keeps day and month arithmetic
// free of daylight saving transitions; reldate does not interpret time zones.
//
// The month, week and year rules are built from a single primitive, Steps,
// which repeatedly applies a step function to a start date:
//
//	monthStart ──AddMonths(1)──▶ ResolveOrdinalWeekday ──▶ MonthSequence
//	firstMatch ──AddDays(7)────────────────────────────▶ WeekSequence
//	january1   ──AddYears(1)──▶ + (day-1) days ─────────▶ YearSequence
//
// A Command bundles a rule kind with its seed, count and rule-specific
// parameters, validates them, and dispatches to the matching Rule.
package reldate
