package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mertkk/moncal/internal/calendar"
	"github.com/mertkk/moncal/internal/store"
)

// editorModel is the event editor modal: a huh form bound to a draft,
// gated by the validator before anything reaches the store.
type editorModel struct {
	session modalSession
	store   *store.EventStore

	form *huh.Form

	// Form field pointers (survive value copies)
	formTitle  *string
	formAllDay *bool
	formStart  *string
	formEnd    *string
	formColor  *string

	errors []calendar.FieldError

	defaultStart string
	defaultEnd   string
	width        int
}

func newEditorModel(es *store.EventStore, defaultStart, defaultEnd string) editorModel {
	title, start, end, color := "", "", "", ""
	allDay := false
	return editorModel{
		session:      newModalSession(surfaceEditor, editorCloseDelay),
		store:        es,
		formTitle:    &title,
		formAllDay:   &allDay,
		formStart:    &start,
		formEnd:      &end,
		formColor:    &color,
		defaultStart: defaultStart,
		defaultEnd:   defaultEnd,
	}
}

// openCreate opens the editor with a blank draft anchored to date.
func (m editorModel) openCreate(date time.Time) (editorModel, tea.Cmd) {
	m.session.open(nil, calendar.StartOfDay(date))
	*m.formTitle = ""
	*m.formAllDay = false
	*m.formStart = m.defaultStart
	*m.formEnd = m.defaultEnd
	*m.formColor = string(calendar.ColorBlue)
	m.errors = nil
	m.buildForm()
	return m, m.form.Init()
}

// openEdit opens the editor on an existing event. Missing times fall
// back to the draft defaults, matching the create flow.
func (m editorModel) openEdit(e calendar.Event) (editorModel, tea.Cmd) {
	target := e
	m.session.open(&target, calendar.StartOfDay(e.Date))
	*m.formTitle = e.Title
	*m.formAllDay = e.AllDay
	*m.formStart = e.StartTime
	if *m.formStart == "" {
		*m.formStart = m.defaultStart
	}
	*m.formEnd = e.EndTime
	if *m.formEnd == "" {
		*m.formEnd = m.defaultEnd
	}
	*m.formColor = string(e.Color)
	m.errors = nil
	m.buildForm()
	return m, m.form.Init()
}

func (m *editorModel) buildForm() {
	colorOptions := make([]huh.Option[string], len(calendar.Colors))
	for i, c := range calendar.Colors {
		colorOptions[i] = huh.NewOption("● "+string(c), string(c))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(m.formTitle),
			huh.NewConfirm().Title("All day").Value(m.formAllDay),
			huh.NewInput().Title("Start (HH:MM)").Value(m.formStart),
			huh.NewInput().Title("End (HH:MM)").Value(m.formEnd),
			huh.NewSelect[string]().Title("Color").Options(colorOptions...).Value(m.formColor),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (m editorModel) update(msg tea.Msg) (editorModel, tea.Cmd) {
	if !m.session.capturing() || m.form == nil {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, m.session.requestClose()
		case "ctrl+d":
			if m.session.target != nil {
				m.store.Delete(m.session.target.ID)
				return m, tea.Batch(
					m.session.requestClose(),
					func() tea.Msg { return eventsChangedMsg{} },
					func() tea.Msg { return statusMsg{text: "Event deleted"} },
				)
			}
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submit()
	}
	return m, cmd
}

// submit validates the draft and commits it. On failure every failing
// rule is shown inline and the store is untouched.
func (m editorModel) submit() (editorModel, tea.Cmd) {
	draft := calendar.Draft{
		Title:     *m.formTitle,
		Date:      m.session.date,
		AllDay:    *m.formAllDay,
		StartTime: *m.formStart,
		EndTime:   *m.formEnd,
		Color:     calendar.Color(*m.formColor),
	}

	if errs := draft.Validate(); len(errs) > 0 {
		m.errors = errs
		m.buildForm()
		return m, m.form.Init()
	}

	id := ""
	if m.session.target != nil {
		id = m.session.target.ID
	}
	m.store.Upsert(draft.Event(id))
	m.errors = nil

	return m, tea.Batch(
		m.session.requestClose(),
		func() tea.Msg { return eventsChangedMsg{} },
		func() tea.Msg { return statusMsg{text: "Event saved"} },
	)
}

func (m editorModel) view() string {
	if !m.session.active() || m.form == nil {
		return ""
	}

	title := "Add Event"
	if m.session.target != nil {
		title = "Edit Event"
	}

	var lines []string
	lines = append(lines, titleStyle.Render(title))
	lines = append(lines, mutedStyle.Render(m.session.date.Format("Monday, Jan 2 2006")))
	if len(m.errors) > 0 {
		lines = append(lines, "")
		for _, e := range m.errors {
			lines = append(lines, errorStyle.Render("• "+e.Message()))
		}
	}
	lines = append(lines, "", m.form.View())

	hint := "enter: save  esc: cancel"
	if m.session.target != nil {
		hint += "  ctrl+d: delete"
	}
	lines = append(lines, mutedStyle.Render(hint))

	style := activePanelStyle
	if m.session.phase == phaseClosing {
		style = closingPanelStyle
	}

	w := m.width - 4
	if w > 64 {
		w = 64
	}
	return style.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
