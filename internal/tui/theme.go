package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Base    lipgloss.Style
	Border  lipgloss.Color
	Header  lipgloss.Style
	Label   lipgloss.Style
	Input   lipgloss.Style
	Focused lipgloss.Style
	Dim     lipgloss.Style
	Result  lipgloss.Style
	Error   lipgloss.Style
	Status  lipgloss.Style
	Modal   lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:    "Default",
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Border:  lipgloss.Color("63"),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Result:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Modal:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("205")).Padding(1, 2),
	},
	"dracula": {
		Name:    "Dracula",
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Border:  lipgloss.Color("62"),                                            // Purple
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Result:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")),            // Orange
		Modal:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("50")).Padding(1, 2),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme. Unknown names keep the current one.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}
