package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mertkk/moncal/internal/calendar"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

// eventColors maps the fixed event palette onto terminal colors.
var eventColors = map[calendar.Color]lipgloss.Color{
	calendar.ColorBlue:  lipgloss.Color("#3498DB"),
	calendar.ColorGreen: lipgloss.Color("#2ECC71"),
	calendar.ColorRed:   lipgloss.Color("#E74C3C"),
}

func eventColorStyle(c calendar.Color) lipgloss.Style {
	col, ok := eventColors[c]
	if !ok {
		col = eventColors[calendar.ColorBlue]
	}
	return lipgloss.NewStyle().Foreground(col)
}

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// A closing modal stays rendered but fades to the subtle border.
	closingPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSubtle).
				Foreground(colorMuted).
				Padding(1, 2)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Day cells
	weekdayLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	dayNumberStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	todayNumberStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorHighlight)

	outsideMonthStyle = lipgloss.NewStyle().
				Foreground(colorSubtle)

	pastDayStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	selectedCellStyle = lipgloss.NewStyle().
				Background(colorSubtle)

	overflowHintStyle = lipgloss.NewStyle().
				Foreground(colorHighlight)
)
