// Package tui is the interactive form: a name field, one line of inputs per
// course, a result area and the two remote actions.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/resultpro/internal/app"
	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/form"
)

// Flows is the part of app.Service the form drives.
type Flows interface {
	Bootstrap(ctx context.Context) (app.State, error)
	Calculate(ctx context.Context, name string, rows []form.Row) (string, error)
	ExportPDF(ctx context.Context, name string, rows []form.Row) (string, error)
	ClearAll(ctx context.Context, confirm app.ConfirmFunc) (app.State, error)
}

type rowInputs struct {
	name   textinput.Model
	score  textinput.Model
	credit textinput.Model
}

func (r *rowInputs) input(f form.Field) *textinput.Model {
	switch f {
	case form.FieldScore:
		return &r.score
	case form.FieldCredit:
		return &r.credit
	default:
		return &r.name
	}
}

// Model is the root bubbletea model.
type Model struct {
	ctx   context.Context
	flows Flows
	log   *slog.Logger
	keys  *HandlerRegistry
	help  help.Model

	name   textinput.Model
	rows   *form.Rows
	inputs []rowInputs
	focus  int

	result     string
	resultText string

	alert           string
	status          string
	confirmingClear bool
	calculating     bool
	exporting       bool
	loaded          bool

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for render and restore problems.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// NewModel builds the form. The saved snapshot is restored by Init.
func NewModel(ctx context.Context, flows Flows, opts ...Option) Model {
	m := Model{
		ctx:   ctx,
		flows: flows,
		log:   slog.Default(),
		keys:  defaultRegistry(),
		help:  help.New(),
		rows:  form.NewRows(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.name = textinput.New()
	m.name.Placeholder = "Student name"
	m.name.CharLimit = config.NameCharLimit
	m.name.Width = config.StudentNameWidth

	m.rows.AddRow()
	m.syncInputs()
	m.applyFocus()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, bootstrapCmd(m.ctx, m.flows))
}

func newRowInputs(r form.Row) rowInputs {
	name := textinput.New()
	name.Placeholder = "Course"
	name.CharLimit = config.NameCharLimit
	name.Width = config.CourseNameWidth
	name.SetValue(r.Name)

	score := textinput.New()
	score.Placeholder = scorePlaceholder
	score.CharLimit = config.ScoreCharLimit
	score.Width = config.NumberFieldWidth
	score.SetValue(r.Score)

	credit := textinput.New()
	credit.Placeholder = creditPlaceholder
	credit.CharLimit = config.CreditCharLimit
	credit.Width = config.NumberFieldWidth
	credit.SetValue(r.Credit)

	return rowInputs{name: name, score: score, credit: credit}
}

// syncInputs rebuilds the row inputs from the row list.
func (m *Model) syncInputs() {
	rows := m.rows.Rows()
	m.inputs = make([]rowInputs, len(rows))
	for i, r := range rows {
		m.inputs[i] = newRowInputs(r)
	}
}

// applyState replaces everything on screen with st.
func (m *Model) applyState(st app.State) {
	m.name.SetValue(st.Name)
	m.rows = form.NewRows(st.Rows...)
	if m.rows.Len() == 0 {
		m.rows.AddRow()
	}
	m.syncInputs()
	m.setResult(st.Result)
	m.focus = 0
	m.applyFocus()
}

func (m *Model) setResult(markupText string) {
	m.result = markupText
	m.resultText = renderResult(markupText, m.log)
}

func (m Model) focusCount() int {
	return 1 + 3*len(m.inputs)
}

// focusTarget maps the focus index to a row and field. Row -1 is the name.
func (m Model) focusTarget() (int, form.Field) {
	if m.focus == 0 {
		return -1, form.FieldName
	}
	i := m.focus - 1
	return i / 3, form.Field(i % 3)
}

func (m *Model) applyFocus() {
	m.name.Blur()
	for i := range m.inputs {
		m.inputs[i].name.Blur()
		m.inputs[i].score.Blur()
		m.inputs[i].credit.Blur()
	}
	row, field := m.focusTarget()
	if row < 0 {
		m.name.Focus()
		return
	}
	m.inputs[row].input(field).Focus()
}

func (m Model) studentName() string {
	return m.name.Value()
}

// Rows returns the current rows in display order.
func (m Model) Rows() []form.Row {
	return m.rows.Rows()
}

// Result returns the markup currently shown in the result area.
func (m Model) Result() string {
	return m.result
}
