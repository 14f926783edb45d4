package reldate

import "time"

// DefaultLayout renders dates as "Tuesday, 9 January, 2024".
const DefaultLayout = "Monday, 2 January, 2006"

// Format renders date with the given time layout, or DefaultLayout if
// layout is empty.
func Format(date time.Time, layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}
	return date.Format(layout)
}
