package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mertkk/moncal/internal/calendar"
)

// overflowModel lists the events of a day that did not fit its cell.
// It receives exactly the overflow remainder, never the full day, so
// nothing shown in the grid is repeated here.
type overflowModel struct {
	session modalSession
	events  []calendar.Event
	cursor  int
	width   int
}

func newOverflowModel() overflowModel {
	return overflowModel{
		session: newModalSession(surfaceOverflow, overflowCloseDelay),
	}
}

func (m overflowModel) open(date time.Time, events []calendar.Event) overflowModel {
	m.session.open(nil, date)
	m.events = events
	m.cursor = 0
	return m
}

func (m overflowModel) update(msg tea.Msg) (overflowModel, tea.Cmd) {
	if !m.session.capturing() {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.events)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Enter):
		if len(m.events) > 0 {
			e := m.events[m.cursor]
			return m, func() tea.Msg { return openEditMsg{event: e} }
		}
	case key.Matches(keyMsg, keys.Back):
		return m, m.session.requestClose()
	}
	return m, nil
}

func (m overflowModel) view() string {
	if !m.session.active() {
		return ""
	}

	var rows []string
	rows = append(rows, titleStyle.Render(m.session.date.Format("Monday, Jan 2 2006")))
	rows = append(rows, "")

	for i, e := range m.events {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		dot := eventColorStyle(e.Color).Render("●")
		label := e.Title
		if !e.AllDay && e.StartTime != "" {
			label = fmt.Sprintf("%s %s", e.StartTime, e.Title)
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, dot, style.Render(label)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("enter: open  esc: close"))

	style := activePanelStyle
	if m.session.phase == phaseClosing {
		style = closingPanelStyle
	}

	w := m.width - 4
	if w > 48 {
		w = 48
	}
	return style.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
