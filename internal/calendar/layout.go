package calendar

import "sort"

// DayLayout is the partition of one day's events into the rows that fit
// the cell and the remainder that needs the auxiliary overflow view.
type DayLayout struct {
	Visible  []Event
	Overflow []Event

	// Malformed holds timed events whose start time is missing or not a
	// valid clock string. They still render, sorted last, but the host
	// should log them.
	Malformed []Event
}

// LayoutDay sorts the day's events and splits them at capacity.
//
// Sort order is stable: all-day events first in their input order, then
// timed events ascending by start time, then timed events with a bad
// start time. Overflow holds only the events beyond capacity, never the
// whole day, so the overflow view does not duplicate rows already shown
// in the cell.
func LayoutDay(events []Event, capacity int) DayLayout {
	sorted := make([]Event, len(events))
	copy(sorted, events)

	var malformed []Event
	for _, e := range sorted {
		if !e.AllDay && !ValidClock(e.StartTime) {
			malformed = append(malformed, e)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ra, rb := sortRank(a), sortRank(b)
		if ra != rb {
			return ra < rb
		}
		if ra == 1 {
			// Zero-padded HH:MM compares correctly as a string.
			return a.StartTime < b.StartTime
		}
		return false
	})

	if capacity < 0 {
		capacity = 0
	}
	if capacity > len(sorted) {
		capacity = len(sorted)
	}

	return DayLayout{
		Visible:   sorted[:capacity],
		Overflow:  sorted[capacity:],
		Malformed: malformed,
	}
}

func sortRank(e Event) int {
	switch {
	case e.AllDay:
		return 0
	case ValidClock(e.StartTime):
		return 1
	default:
		return 2
	}
}

// ValidClock reports whether s is a zero-padded 24-hour "HH:MM" string.
func ValidClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh < 24 && mm < 60
}
