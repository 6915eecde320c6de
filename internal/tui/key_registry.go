package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a bound key. Returning false lets the key fall
// through to the focused input.
type KeyHandler func(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Priority int
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if !b.Binding.Enabled() || !key.Matches(msg, b.Binding) {
			continue
		}
		next, cmd, handled := b.Handler(m, msg)
		if handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

// ShortHelp implements help.KeyMap.
func (r *HandlerRegistry) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.Binding.Help().Desc == "" {
			continue
		}
		out = append(out, b.Binding)
	}
	return out
}

// FullHelp implements help.KeyMap.
func (r *HandlerRegistry) FullHelp() [][]key.Binding {
	return [][]key.Binding{r.ShortHelp()}
}

var (
	keyAdd       = key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add course"))
	keyCalculate = key.NewBinding(key.WithKeys("enter", "ctrl+g"), key.WithHelp("enter", "calculate"))
	keyPDF       = key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pdf"))
	keyClear     = key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear all"))
	keyNext      = key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next"))
	keyPrev      = key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev"))
	keyQuit      = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
)

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Binding: keyQuit, Handler: handleQuit, Priority: 100})
	r.Register(KeyBinding{Binding: keyCalculate, Handler: handleCalculate, Priority: 50})
	r.Register(KeyBinding{Binding: keyPDF, Handler: handlePDF, Priority: 50})
	r.Register(KeyBinding{Binding: keyAdd, Handler: handleAddRow, Priority: 40})
	r.Register(KeyBinding{Binding: keyClear, Handler: handleClearPrompt, Priority: 40})
	r.Register(KeyBinding{Binding: keyNext, Handler: handleFocusNext, Priority: 10})
	r.Register(KeyBinding{Binding: keyPrev, Handler: handleFocusPrev, Priority: 10})
	return r
}
