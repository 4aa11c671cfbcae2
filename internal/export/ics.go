package export

import (
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/mertkk/moncal/internal/calendar"
)

// ToICS writes the events as an iCalendar file. All-day events become
// date-valued DTSTART/DTEND entries; timed events are anchored to their
// day in the event's own location.
func ToICS(events []calendar.Event, path string) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	stamp := time.Now().UTC()
	for _, e := range events {
		ev := cal.AddEvent(e.ID)
		ev.SetSummary(e.Title)
		ev.SetDtStampTime(stamp)

		if e.AllDay {
			ev.SetAllDayStartAt(e.Date)
			ev.SetAllDayEndAt(e.Date.AddDate(0, 0, 1))
			continue
		}

		start, err := clockOn(e.Date, e.StartTime)
		if err != nil {
			return fmt.Errorf("event %s: %w", e.ID, err)
		}
		end, err := clockOn(e.Date, e.EndTime)
		if err != nil {
			return fmt.Errorf("event %s: %w", e.ID, err)
		}
		ev.SetStartAt(start)
		ev.SetEndAt(end)
	}

	if err := os.WriteFile(path, []byte(cal.Serialize()), 0o644); err != nil {
		return fmt.Errorf("write ics file: %w", err)
	}
	return nil
}

func clockOn(day time.Time, hhmm string) (time.Time, error) {
	if !calendar.ValidClock(hhmm) {
		return time.Time{}, fmt.Errorf("bad clock %q", hhmm)
	}
	hh := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	mm := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	return time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, day.Location()), nil
}
