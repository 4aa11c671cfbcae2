package calendar

import "time"

// Navigator tracks which month the grid shows and which day is
// selected. The reference month moves independently of the selection,
// except that stepping the selection across a month boundary re-homes
// the reference so the grid follows.
type Navigator struct {
	Reference time.Time // any day inside the visible month
	Selected  time.Time

	now func() time.Time
}

func NewNavigator() *Navigator {
	return NewNavigatorAt(time.Now)
}

// NewNavigatorAt is NewNavigator with an injected clock.
func NewNavigatorAt(now func() time.Time) *Navigator {
	n := &Navigator{now: now}
	n.Today()
	return n
}

// NextMonth advances the reference month by one.
func (n *Navigator) NextMonth() { n.shiftMonth(1) }

// PrevMonth moves the reference month back by one.
func (n *Navigator) PrevMonth() { n.shiftMonth(-1) }

func (n *Navigator) shiftMonth(months int) {
	// Step from the first of the month so AddDate cannot skip short
	// months (Jan 31 + 1 month would normalize into March).
	first := time.Date(n.Reference.Year(), n.Reference.Month(), 1, 0, 0, 0, 0, n.Reference.Location())
	n.Reference = first.AddDate(0, months, 0)
}

// Today re-homes both the reference month and the selection to the
// current date.
func (n *Navigator) Today() {
	today := StartOfDay(n.now())
	n.Reference = today
	n.Selected = today
}

func (n *Navigator) SelectDay(day time.Time) {
	n.Selected = StartOfDay(day)
}

// StepSelection moves the selection by offsetDays (±1 for left/right,
// ±7 for up/down) and keeps the grid on the month containing the new
// selection.
func (n *Navigator) StepSelection(offsetDays int) {
	n.Selected = n.Selected.AddDate(0, 0, offsetDays)
	if !SameMonth(n.Selected, n.Reference) {
		n.Reference = n.Selected
	}
}
