package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/resultpro/internal/app"
	"github.com/akyairhashvil/resultpro/internal/form"
)

// --- Messages ---
type bootstrapMsg struct {
	state app.State
	err   error
}

type calculatedMsg struct {
	markup string
	err    error
}

type exportedMsg struct {
	path string
	err  error
}

type clearedMsg struct {
	state app.State
	err   error
}

func bootstrapCmd(ctx context.Context, flows Flows) tea.Cmd {
	return func() tea.Msg {
		st, err := flows.Bootstrap(ctx)
		return bootstrapMsg{state: st, err: err}
	}
}

func calculateCmd(ctx context.Context, flows Flows, name string, rows []form.Row) tea.Cmd {
	return func() tea.Msg {
		out, err := flows.Calculate(ctx, name, rows)
		return calculatedMsg{markup: out, err: err}
	}
}

func exportCmd(ctx context.Context, flows Flows, name string, rows []form.Row) tea.Cmd {
	return func() tea.Msg {
		path, err := flows.ExportPDF(ctx, name, rows)
		return exportedMsg{path: path, err: err}
	}
}

// clearCmd runs after the y/n modal, so the confirmation is already given.
func clearCmd(ctx context.Context, flows Flows) tea.Cmd {
	return func() tea.Msg {
		st, err := flows.ClearAll(ctx, func(string) bool { return true })
		return clearedMsg{state: st, err: err}
	}
}
