package tui

import (
	"errors"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/resultpro/internal/app"
	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/form"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case bootstrapMsg:
		return m.handleBootstrap(msg), nil
	case calculatedMsg:
		return m.handleCalculated(msg), nil
	case exportedMsg:
		return m.handleExported(msg), nil
	case clearedMsg:
		return m.handleCleared(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.confirmingClear {
		return m.handleClearConfirm(msg)
	}
	if m.alert != "" {
		switch msg.String() {
		case "enter", "esc", " ":
			m.alert = ""
		}
		return m, nil
	}
	if next, cmd, handled := m.keys.Handle(m, msg); handled {
		return next, cmd
	}
	return m.updateFocused(msg)
}

func (m Model) handleClearConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmingClear = false
		return m, clearCmd(m.ctx, m.flows)
	case "n", "N", "esc":
		m.confirmingClear = false
	}
	return m, nil
}

// updateFocused forwards input to the focused field and mirrors the new
// value into the row list.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	row, field := m.focusTarget()
	if keyMsg, ok := msg.(tea.KeyMsg); ok && row >= 0 && field != form.FieldName {
		filtered, keep := filterNumeric(keyMsg, field == form.FieldScore)
		if !keep {
			return m, nil
		}
		msg = filtered
	}

	var cmd tea.Cmd
	if row < 0 {
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	in := m.inputs[row].input(field)
	*in, cmd = in.Update(msg)
	m.rows.Set(row, field, in.Value())
	return m, cmd
}

// filterNumeric drops runes a number field cannot hold. Decimal points are
// allowed only in the score field.
func filterNumeric(msg tea.KeyMsg, allowDot bool) (tea.KeyMsg, bool) {
	if msg.Type != tea.KeyRunes {
		return msg, true
	}
	kept := msg.Runes[:0:0]
	for _, r := range msg.Runes {
		if unicode.IsDigit(r) || (allowDot && r == '.') {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return msg, false
	}
	msg.Runes = kept
	return msg, true
}

func (m Model) handleBootstrap(msg bootstrapMsg) Model {
	m.loaded = true
	m.applyState(msg.state)
	if msg.err != nil {
		m.log.Error("restore saved form", "err", msg.err)
		m.status = "Saved data could not be restored."
	}
	return m
}

func (m Model) handleCalculated(msg calculatedMsg) Model {
	if errors.Is(msg.err, app.ErrInFlight) {
		m.status = config.MsgBusy
		return m
	}
	m.calculating = false
	m.status = ""
	if msg.markup != "" {
		m.setResult(msg.markup)
	}
	return m
}

func (m Model) handleExported(msg exportedMsg) Model {
	if errors.Is(msg.err, app.ErrInFlight) {
		m.status = config.MsgBusy
		return m
	}
	m.exporting = false
	m.status = ""
	m.alert = app.AlertFor(msg.path, msg.err)
	return m
}

func (m Model) handleCleared(msg clearedMsg) Model {
	if msg.err != nil {
		m.log.Error("clear saved form", "err", msg.err)
		m.status = "Could not clear saved data."
		return m
	}
	m.applyState(msg.state)
	m.status = ""
	return m
}

func handleQuit(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleCalculate(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.calculating = true
	return m, calculateCmd(m.ctx, m.flows, m.studentName(), m.rows.Rows()), true
}

func handlePDF(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.exporting = true
	return m, exportCmd(m.ctx, m.flows, m.studentName(), m.rows.Rows()), true
}

func handleAddRow(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.rows.AddRow()
	m.inputs = append(m.inputs, newRowInputs(form.Row{}))
	m.focus = 1 + 3*(len(m.inputs)-1)
	m.applyFocus()
	return m, nil, true
}

func handleClearPrompt(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.confirmingClear = true
	return m, nil, true
}

func handleFocusNext(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.focus = (m.focus + 1) % m.focusCount()
	m.applyFocus()
	return m, nil, true
}

func handleFocusPrev(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.focus = (m.focus - 1 + m.focusCount()) % m.focusCount()
	m.applyFocus()
	return m, nil, true
}
