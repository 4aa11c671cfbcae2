package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mertkk/moncal/internal/calendar"
	"github.com/mertkk/moncal/internal/export"
	"github.com/mertkk/moncal/internal/store"
)

// App is the root Bubble Tea model. It owns the navigator and the two
// modal surfaces and coordinates them: only one surface captures input
// at a time, and opening the editor closes the overflow list first.
type App struct {
	store *store.EventStore
	nav   *calendar.Navigator

	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	month    monthModel
	stats    statsModel
	editor   editorModel
	overflow overflowModel

	help   help.Model
	status string
}

func NewApp(es *store.EventStore, defaultStart, defaultEnd string) App {
	h := help.New()
	h.ShowAll = false

	nav := calendar.NewNavigator()

	return App{
		store:    es,
		nav:      nav,
		month:    newMonthModel(es, nav),
		stats:    newStatsModel(es, nav),
		editor:   newEditorModel(es, defaultStart, defaultEnd),
		overflow: newOverflowModel(),
		help:     h,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.month.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		a.editor.width = a.width
		a.overflow.width = a.width
		return a, nil

	case modalClosedMsg:
		switch msg.surface {
		case surfaceEditor:
			a.editor.session.finishClose(msg.seq)
		case surfaceOverflow:
			a.overflow.session.finishClose(msg.seq)
		}
		return a, nil

	case openCreateMsg:
		a.nav.SelectDay(msg.date)
		var cmds []tea.Cmd
		if cmd := a.overflow.session.requestClose(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		a.editor, cmd = a.editor.openCreate(msg.date)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case openEditMsg:
		a.nav.SelectDay(msg.event.Date)
		var cmds []tea.Cmd
		if cmd := a.overflow.session.requestClose(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		a.editor, cmd = a.editor.openEdit(msg.event)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case openOverflowMsg:
		a.overflow = a.overflow.open(msg.date, msg.events)
		return a, nil

	case eventsChangedMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.month, cmd = a.month.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		a.stats, cmd = a.stats.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}
		if a.editor.session.capturing() {
			var cmd tea.Cmd
			a.editor, cmd = a.editor.update(msg)
			return a, cmd
		}
		if a.overflow.session.capturing() {
			var cmd tea.Cmd
			a.overflow, cmd = a.overflow.update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewCalendar
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewStats
			a.stats.buildChart()
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 2
			if a.activeView == viewStats {
				a.stats.buildChart()
			}
			return a, nil
		}
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	// The form consumes non-key messages (blink, etc.) while active.
	if a.editor.session.capturing() {
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			a.editor, cmd = a.editor.update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	switch a.activeView {
	case viewCalendar:
		a.month, cmd = a.month.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewCalendar:
		content = a.month.view()
	case viewStats:
		content = a.stats.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Modal surfaces overlay the content. A closing surface is still
	// rendered so its exit transition can play out.
	switch {
	case a.editor.session.active():
		content = lipgloss.Place(a.width, contentHeight, lipgloss.Center, lipgloss.Center, a.editor.view())
	case a.overflow.session.active():
		content = lipgloss.Place(a.width, contentHeight, lipgloss.Center, lipgloss.Center, a.overflow.view())
	case a.exportPicking:
		content = lipgloss.Place(a.width, contentHeight, lipgloss.Center, lipgloss.Center, a.renderExportPicker())
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("moncal")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"JSON", "iCalendar"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	if w > 40 {
		w = 40
	}
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	home, _ := os.UserHomeDir()
	// Snapshot before the command runs: the closure executes on its own
	// goroutine and must not read the live collection.
	return exportCmd(a.store.All(), format, home)
}

func exportCmd(events []calendar.Event, format int, dir string) tea.Cmd {
	return func() tea.Msg {
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(dir, fmt.Sprintf("moncal-export-%s.json", dateStr))
			if err := export.ToJSON(events, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(dir, fmt.Sprintf("moncal-export-%s.ics", dateStr))
			if err := export.ToICS(events, path); err != nil {
				return statusMsg{text: fmt.Sprintf("ICS error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
