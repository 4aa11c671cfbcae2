package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mertkk/moncal/internal/calendar"
)

// Teardown delay per surface. The value must match the exit transition
// length exactly: tearing down early clips the animation, tearing down
// late leaves a stale interactive surface.
const (
	editorCloseDelay   = 250 * time.Millisecond
	overflowCloseDelay = 240 * time.Millisecond
)

type modalPhase int

const (
	phaseClosed modalPhase = iota
	phaseOpen
	phaseClosing
)

type modalSurface int

const (
	surfaceEditor modalSurface = iota
	surfaceOverflow
)

// modalSession is the lifecycle state of one modal surface. Each
// surface owns its own session, so the editor and the overflow list can
// never race each other's teardown timers.
//
// seq identifies the current open/close cycle: opening bumps it, and a
// teardown timeout carries the seq it was scheduled under. A timeout
// whose seq no longer matches belongs to a superseded cycle and is
// dropped, so reopening during the closing phase keeps the fresh
// session intact.
type modalSession struct {
	surface modalSurface
	phase   modalPhase
	seq     int
	target  *calendar.Event // event under edit; nil means create
	date    time.Time
	delay   time.Duration
}

func newModalSession(surface modalSurface, delay time.Duration) modalSession {
	return modalSession{surface: surface, delay: delay}
}

// open enters the open phase with a new target, replacing any previous
// session data and superseding a pending teardown.
func (s *modalSession) open(target *calendar.Event, date time.Time) {
	s.seq++
	s.phase = phaseOpen
	s.target = target
	s.date = date
}

// requestClose starts the exit transition and schedules the teardown.
// The surface stays rendered until the timeout fires.
func (s *modalSession) requestClose() tea.Cmd {
	if s.phase != phaseOpen {
		return nil
	}
	s.phase = phaseClosing

	surface, seq := s.surface, s.seq
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return modalClosedMsg{surface: surface, seq: seq}
	})
}

// finishClose completes the teardown and clears the session data.
// Returns false when the timeout is stale (the surface was reopened or
// already torn down) and nothing happens.
func (s *modalSession) finishClose(seq int) bool {
	if s.phase != phaseClosing || s.seq != seq {
		return false
	}
	s.phase = phaseClosed
	s.target = nil
	s.date = time.Time{}
	return true
}

// active reports whether the surface should be rendered: open, or still
// playing its exit transition.
func (s *modalSession) active() bool {
	return s.phase != phaseClosed
}

// capturing reports whether the surface should receive key input.
// A closing surface is visible but inert.
func (s *modalSession) capturing() bool {
	return s.phase == phaseOpen
}
