package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/mertkk/moncal/internal/calendar"
	"github.com/mertkk/moncal/internal/store"
)

// Rows of cell chrome that never hold events: the day number line plus
// the reserved "+N more" line. Week-one cells also carry the weekday
// label row.
const cellChromeRows = 2

const dayPaneHeight = 8

// monthModel renders the month grid and the selected-day pane, and
// owns grid navigation. Event capacity per cell is derived from the
// cell height and handed to the day layout, so the layout itself stays
// independent of any terminal measurements.
type monthModel struct {
	store *store.EventStore
	nav   *calendar.Navigator

	width  int
	height int

	// focusEvents moves key input into the selected-day event list.
	focusEvents bool
	eventCursor int

	// reported dedupes malformed-event diagnostics per session.
	reported map[string]bool

	now func() time.Time
}

func newMonthModel(es *store.EventStore, nav *calendar.Navigator) monthModel {
	return monthModel{
		store:    es,
		nav:      nav,
		reported: make(map[string]bool),
		now:      time.Now,
	}
}

func (m *monthModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// cellHeight is the number of terminal rows each day cell gets.
func (m monthModel) cellHeight(rows int) int {
	gridHeight := m.height - 1 - dayPaneHeight // month header line + day pane
	if rows < 1 {
		rows = 1
	}
	h := gridHeight / rows
	if h < cellChromeRows+1 {
		h = cellChromeRows + 1
	}
	return h
}

// cellCapacity derives how many event rows fit a cell. Week one loses
// a row to the weekday label.
func (m monthModel) cellCapacity(rows int, firstWeek bool) int {
	capacity := m.cellHeight(rows) - cellChromeRows
	if firstWeek {
		capacity--
	}
	if capacity < 0 {
		capacity = 0
	}
	return capacity
}

// dayLayout computes the visible/overflow partition for one grid cell
// and reports malformed events to the log, once per event.
func (m monthModel) dayLayout(day time.Time, rows int, firstWeek bool) calendar.DayLayout {
	layout := calendar.LayoutDay(m.store.QueryByDay(day), m.cellCapacity(rows, firstWeek))
	for _, e := range layout.Malformed {
		if m.reported[e.ID] {
			continue
		}
		m.reported[e.ID] = true
		log.WithFields(log.Fields{"id": e.ID, "title": e.Title, "start": e.StartTime}).
			Warn("timed event has no usable start time")
	}
	return layout
}

// selectedDayEvents returns the selected day's events in display order.
func (m monthModel) selectedDayEvents() []calendar.Event {
	events := m.store.QueryByDay(m.nav.Selected)
	return calendar.LayoutDay(events, len(events)).Visible
}

// overflowForSelected returns the overflow remainder for the selected
// day using the same capacity the cell was rendered with.
func (m monthModel) overflowForSelected() []calendar.Event {
	days := calendar.MonthGrid(m.nav.Reference)
	rows := len(days) / 7
	firstWeek := false
	for i, d := range days {
		if calendar.SameDay(d, m.nav.Selected) {
			firstWeek = i < 7
			break
		}
	}
	return m.dayLayout(m.nav.Selected, rows, firstWeek).Overflow
}

func (m monthModel) update(msg tea.Msg) (monthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsChangedMsg:
		// Clamp the event cursor; the collection may have shrunk.
		if n := len(m.selectedDayEvents()); m.eventCursor >= n {
			m.eventCursor = n - 1
			if m.eventCursor < 0 {
				m.eventCursor = 0
				m.focusEvents = false
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.focusEvents {
			return m.updateEventList(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m monthModel) updateGrid(msg tea.KeyMsg) (monthModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		m.nav.StepSelection(-1)
	case key.Matches(msg, keys.Right):
		m.nav.StepSelection(1)
	case key.Matches(msg, keys.Up):
		m.nav.StepSelection(-7)
	case key.Matches(msg, keys.Down):
		m.nav.StepSelection(7)
	case key.Matches(msg, keys.PrevMonth):
		m.nav.PrevMonth()
	case key.Matches(msg, keys.NextMonth):
		m.nav.NextMonth()
	case key.Matches(msg, keys.Today):
		m.nav.Today()
	case key.Matches(msg, keys.New):
		day := m.nav.Selected
		return m, func() tea.Msg { return openCreateMsg{date: day} }
	case key.Matches(msg, keys.Enter):
		if len(m.selectedDayEvents()) > 0 {
			m.focusEvents = true
			m.eventCursor = 0
		}
	case key.Matches(msg, keys.Overflow):
		if overflow := m.overflowForSelected(); len(overflow) > 0 {
			day := m.nav.Selected
			return m, func() tea.Msg { return openOverflowMsg{date: day, events: overflow} }
		}
	}
	return m, nil
}

func (m monthModel) updateEventList(msg tea.KeyMsg) (monthModel, tea.Cmd) {
	events := m.selectedDayEvents()
	switch {
	case key.Matches(msg, keys.Back):
		m.focusEvents = false
	case key.Matches(msg, keys.Up):
		if m.eventCursor > 0 {
			m.eventCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.eventCursor < len(events)-1 {
			m.eventCursor++
		}
	case key.Matches(msg, keys.Enter):
		if m.eventCursor < len(events) {
			e := events[m.eventCursor]
			return m, func() tea.Msg { return openEditMsg{event: e} }
		}
	case key.Matches(msg, keys.Delete):
		if m.eventCursor < len(events) {
			m.store.Delete(events[m.eventCursor].ID)
			return m, tea.Batch(
				func() tea.Msg { return eventsChangedMsg{} },
				func() tea.Msg { return statusMsg{text: "Event deleted"} },
			)
		}
	case key.Matches(msg, keys.New):
		day := m.nav.Selected
		return m, func() tea.Msg { return openCreateMsg{date: day} }
	}
	return m, nil
}

// --- Rendering ---

func (m monthModel) view() string {
	days := calendar.MonthGrid(m.nav.Reference)
	rows := len(days) / 7

	header := m.renderMonthHeader()

	cellW := m.width / 7
	if cellW < 8 {
		cellW = 8
	}
	cellH := m.cellHeight(rows)

	var gridRows []string
	for r := 0; r < rows; r++ {
		cells := make([]string, 7)
		for c := 0; c < 7; c++ {
			cells[c] = m.renderCell(days[r*7+c], r == 0, rows, cellW, cellH)
		}
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	pane := m.renderDayPane()

	parts := append([]string{header}, gridRows...)
	parts = append(parts, pane)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m monthModel) renderMonthHeader() string {
	title := titleStyle.Render(m.nav.Reference.Format("Jan 2006"))
	hints := mutedStyle.Render("t: today  [: prev  ]: next")
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(hints) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + title + strings.Repeat(" ", gap) + hints
}

func (m monthModel) renderCell(day time.Time, firstWeek bool, rows, w, h int) string {
	today := calendar.StartOfDay(m.now())
	inMonth := calendar.SameMonth(day, m.nav.Reference)
	selected := calendar.SameDay(day, m.nav.Selected)
	isToday := calendar.SameDay(day, today)
	isPast := day.Before(today)

	layout := m.dayLayout(day, rows, firstWeek)

	var lines []string
	if firstWeek {
		lines = append(lines, weekdayLabelStyle.Render(day.Format("Mon")))
	}

	numStyle := dayNumberStyle
	switch {
	case isToday:
		numStyle = todayNumberStyle
	case !inMonth:
		numStyle = outsideMonthStyle
	case isPast:
		numStyle = pastDayStyle
	}
	marker := " "
	if selected {
		marker = selectedItemStyle.Render("›")
	}
	lines = append(lines, fmt.Sprintf("%s%s", marker, numStyle.Render(fmt.Sprintf("%2d", day.Day()))))

	for _, e := range layout.Visible {
		lines = append(lines, m.renderEventLine(e, w, inMonth))
	}

	if n := len(layout.Overflow); n > 0 {
		lines = append(lines, overflowHintStyle.Render(truncate(fmt.Sprintf("+%d more", n), w-1)))
	}

	for len(lines) < h {
		lines = append(lines, "")
	}
	lines = lines[:h]

	cell := lipgloss.NewStyle().Width(w).Height(h)
	return cell.Render(strings.Join(lines, "\n"))
}

func (m monthModel) renderEventLine(e calendar.Event, w int, inMonth bool) string {
	styled := eventColorStyle(e.Color)
	if !inMonth {
		styled = outsideMonthStyle
	}

	if e.AllDay {
		return styled.Render(truncate("▪ "+e.Title, w-1))
	}
	label := e.Title
	if e.StartTime != "" {
		label = e.StartTime + " " + e.Title
	}
	return styled.Render("•") + " " + normalItemStyle.Render(truncate(label, w-3))
}

func (m monthModel) renderDayPane() string {
	events := m.selectedDayEvents()
	title := titleStyle.Render(m.nav.Selected.Format("Monday, Jan 2"))
	count := mutedStyle.Render(fmt.Sprintf("  %d event(s)", len(events)))

	var rows []string
	rows = append(rows, title+count)

	if len(events) == 0 {
		rows = append(rows, mutedStyle.Render("No events. Press n to add one."))
	}

	shown := events
	if len(shown) > dayPaneHeight-3 {
		shown = shown[:dayPaneHeight-3]
	}
	for i, e := range shown {
		cursor := "  "
		style := normalItemStyle
		if m.focusEvents && i == m.eventCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		dot := eventColorStyle(e.Color).Render("●")
		label := e.Title
		if !e.AllDay && e.StartTime != "" {
			label = fmt.Sprintf("%s–%s %s", e.StartTime, e.EndTime, e.Title)
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, dot, style.Render(label)))
	}

	hint := "n: add  enter: events  o: more"
	if m.focusEvents {
		hint = "enter: edit  d: delete  esc: back"
	}
	rows = append(rows, mutedStyle.Render(hint))

	return panelStyle.Width(m.width - 2).Render(strings.Join(rows, "\n"))
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}
