package calendar

import "time"

// MonthGrid returns the ordered cell dates needed to display the month
// containing ref: whole Sunday-aligned weeks, from the week holding the
// first of the month through the week holding the last. The result is
// always a multiple of 7 entries and the first 7 form week one, the
// only row that shows weekday labels.
func MonthGrid(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	start := StartOfWeek(first)
	end := EndOfWeek(last)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// StartOfWeek returns the Sunday on or before t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// EndOfWeek returns the Saturday on or after t, at midnight.
func EndOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, int(time.Saturday-d.Weekday()))
}
