package reldate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date returns midnight UTC of the given calendar date. Out of range
// values are normalized the way time.Date normalizes them.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate returns the calendar date of t, as observed in t's location,
// at midnight UTC.
func Truncate(t time.Time) time.Time {
	year, month, day := t.Date()
	return Date(year, month, day)
}

// FirstOfMonth returns the first day of the month containing t.
func FirstOfMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 1)
}

// Weekday is a day of the week numbered 1 (Sunday) through 7 (Saturday).
type Weekday int

// Days of the week.
const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayOf returns the Weekday for the standard library weekday.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday(d + 1)
}

// Std returns the equivalent time.Weekday.
func (d Weekday) Std() time.Weekday {
	return time.Weekday(d - 1)
}

// Valid reports whether d is within 1..7.
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return d.Std().String()
}

// ParseWeekday parses a weekday number (1-7, Sunday first) or an English
// day name or its three letter abbreviation, in any case.
func ParseWeekday(value string) (Weekday, error) {
	if n, err := strconv.Atoi(value); err == nil {
		d := Weekday(n)
		if !d.Valid() {
			return 0, illegalArgumentError(fmt.Sprintf("weekday %d is out of range 1-7", n))
		}
		return d, nil
	}
	lower := strings.ToLower(value)
	if len(lower) >= 3 {
		for d := Sunday; d <= Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), lower) {
				return d, nil
			}
		}
	}
	return 0, illegalArgumentError(fmt.Sprintf("invalid weekday %q", value))
}

// ParseDate parses a seed date in the 2006-01-02 or RFC 3339 format and
// returns its calendar date.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, illegalArgumentError(fmt.Sprintf("invalid date %q", value))
	}
	return Truncate(t), nil
}

// ordinalSuffix returns the English ordinal suffix for n.
func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
