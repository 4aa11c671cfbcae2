package calendar

import (
	"time"

	"github.com/google/uuid"
)

// Color is one of the fixed event palette values.
type Color string

const (
	ColorBlue  Color = "blue"
	ColorGreen Color = "green"
	ColorRed   Color = "red"
)

// Colors lists the palette in display order; blue is the default.
var Colors = []Color{ColorBlue, ColorGreen, ColorRed}

func ValidColor(c Color) bool {
	for _, v := range Colors {
		if c == v {
			return true
		}
	}
	return false
}

// Event is a single calendar entry anchored to one day. Timed events
// carry zero-padded 24-hour "HH:MM" start and end times; all-day events
// carry none.
type Event struct {
	ID        string
	Title     string
	Date      time.Time
	AllDay    bool
	StartTime string
	EndTime   string
	Color     Color
}

// NewEventID returns a fresh unique event ID. IDs are stable across
// edits and never reused.
func NewEventID() string {
	return uuid.NewString()
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
