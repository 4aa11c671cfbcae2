package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mertkk/moncal/internal/calendar"
	"github.com/mertkk/moncal/internal/store"
)

// statsModel charts how busy each week of the visible month is.
type statsModel struct {
	store *store.EventStore
	nav   *calendar.Navigator

	width  int
	height int

	chart barchart.Model
}

func newStatsModel(es *store.EventStore, nav *calendar.Navigator) statsModel {
	return statsModel{
		store: es,
		nav:   nav,
		chart: barchart.New(60, 12),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
	s.buildChart()
}

func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsChangedMsg:
		s.buildChart()
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.PrevMonth), key.Matches(msg, keys.Left):
			s.nav.PrevMonth()
			s.buildChart()
		case key.Matches(msg, keys.NextMonth), key.Matches(msg, keys.Right):
			s.nav.NextMonth()
			s.buildChart()
		case key.Matches(msg, keys.Today):
			s.nav.Today()
			s.buildChart()
		}
	}
	return s, nil
}

// weekCounts sums events per grid week of the visible month.
func (s statsModel) weekCounts() []int {
	days := calendar.MonthGrid(s.nav.Reference)
	counts := make([]int, len(days)/7)
	for i, day := range days {
		counts[i/7] += len(s.store.QueryByDay(day))
	}
	return counts
}

func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if s.height > 30 {
		chartHeight = 16
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	barStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	var bars []barchart.BarData
	for i, count := range s.weekCounts() {
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("W%d", i+1),
			Values: []barchart.BarValue{{
				Name:  fmt.Sprintf("week %d", i+1),
				Value: float64(count),
				Style: barStyle,
			}},
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) view() string {
	w := s.width - 4

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Stats"), "  ",
		mutedStyle.Render(s.nav.Reference.Format("Jan 2006")),
	)

	counts := s.weekCounts()
	total := 0
	for _, c := range counts {
		total += c
	}
	summary := mutedStyle.Render(fmt.Sprintf("%d event(s) across %d weeks", total, len(counts)))

	nav := mutedStyle.Render("  ←/→: month  t: today")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", s.chart.View(), "", summary, "", nav,
		),
	)
}
