package tui

import (
	"time"

	"github.com/mertkk/moncal/internal/calendar"
)

// viewState represents the currently active view.
type viewState int

const (
	viewCalendar viewState = iota
	viewStats
)

var viewNames = []string{"Calendar", "Stats"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// eventsChangedMsg fires after a successful upsert or delete so views
// recompute their derived data.
type eventsChangedMsg struct{}

// modalClosedMsg is the delayed teardown for a closing modal surface.
// seq ties it to one open/close cycle; a stale seq is ignored.
type modalClosedMsg struct {
	surface modalSurface
	seq     int
}

// openCreateMsg asks the app to open the event editor with a blank
// draft anchored to date.
type openCreateMsg struct {
	date time.Time
}

// openEditMsg asks the app to open the event editor on an existing event.
type openEditMsg struct {
	event calendar.Event
}

// openOverflowMsg asks the app to open the overflow surface with the
// given overflow remainder (not the full day).
type openOverflowMsg struct {
	date   time.Time
	events []calendar.Event
}

type exportDoneMsg struct {
	path string
}
