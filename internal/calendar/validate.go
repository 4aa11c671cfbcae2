package calendar

import (
	"strings"
	"time"
)

// FieldError identifies one validation failure on the event form. It is
// plain data, surfaced inline next to the field, never a panic.
type FieldError string

const (
	TitleRequired     FieldError = "title_required"
	TimesRequired     FieldError = "times_required"
	TimeFormatInvalid FieldError = "time_format_invalid"
	TimeOrderInvalid  FieldError = "time_order_invalid"
)

// Message returns the user-facing text for the error.
func (e FieldError) Message() string {
	switch e {
	case TitleRequired:
		return "Title is required"
	case TimesRequired:
		return "Start and end times are required"
	case TimeFormatInvalid:
		return "Times must be 24-hour HH:MM"
	case TimeOrderInvalid:
		return "End time must be after start time"
	}
	return string(e)
}

// Draft is an unvalidated event form submission.
type Draft struct {
	Title     string
	Date      time.Time
	AllDay    bool
	StartTime string
	EndTime   string
	Color     Color
}

// Validate returns every failing rule. The title and time rules are
// evaluated independently so both can be reported at once; the time
// rules are skipped entirely for all-day drafts. Times come from free
// text inputs, so the clock shape is checked here before the order
// comparison, which is only meaningful on zero-padded HH:MM.
func (d Draft) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, TitleRequired)
	}
	if !d.AllDay {
		switch {
		case d.StartTime == "" || d.EndTime == "":
			errs = append(errs, TimesRequired)
		case !ValidClock(d.StartTime) || !ValidClock(d.EndTime):
			errs = append(errs, TimeFormatInvalid)
		case d.StartTime >= d.EndTime:
			errs = append(errs, TimeOrderInvalid)
		}
	}
	return errs
}

// Event normalizes a valid draft into a store-ready event. Times are
// cleared for all-day events and an unknown color falls back to blue.
// Pass an empty id for a brand new event.
func (d Draft) Event(id string) Event {
	if id == "" {
		id = NewEventID()
	}
	color := d.Color
	if !ValidColor(color) {
		color = ColorBlue
	}
	e := Event{
		ID:     id,
		Title:  strings.TrimSpace(d.Title),
		Date:   StartOfDay(d.Date),
		AllDay: d.AllDay,
		Color:  color,
	}
	if !d.AllDay {
		e.StartTime = d.StartTime
		e.EndTime = d.EndTime
	}
	return e
}
