package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/markup"
)

var (
	scorePlaceholder  = fmt.Sprintf("%d-%d", config.ScoreMin, config.ScoreMax)
	creditPlaceholder = fmt.Sprintf(">=%d", config.CreditMin)
)

// renderResult turns stored markup into display text. Markup that cannot be
// rendered is shown with its tags stripped rather than dropped.
func renderResult(m string, log *slog.Logger) string {
	text, err := markup.Text(m)
	if err != nil {
		log.Warn("render result markup", "err", err)
		return markup.Strip(m)
	}
	if markup.IsError(m) {
		return CurrentTheme.Error.Render(text)
	}
	return text
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(CurrentTheme.Header.Render(fmt.Sprintf("%s v%s", config.AppName, versionLabel())) + "\n\n")

	b.WriteString(m.label(-1, "Name") + " " + m.name.View() + "\n\n")

	header := fmt.Sprintf("%-*s %-*s %-*s",
		config.CourseNameWidth+2, "Course",
		config.NumberFieldWidth+2, "Score",
		config.NumberFieldWidth+2, "Credit")
	b.WriteString("   " + CurrentTheme.Dim.Render(header) + "\n")
	for i, in := range m.inputs {
		marker := "   "
		if row, _ := m.focusTarget(); row == i {
			marker = CurrentTheme.Focused.Render(" > ")
		}
		b.WriteString(marker + in.name.View() + " " + in.score.View() + " " + in.credit.View() + "\n")
	}
	b.WriteString("\n")

	if m.resultText != "" {
		b.WriteString(CurrentTheme.Result.Render(m.truncateLines(m.resultText, 4)) + "\n")
	}

	if line := m.statusLine(); line != "" {
		b.WriteString(CurrentTheme.Status.Render(m.truncate(line)) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))

	view := CurrentTheme.Base.Render(b.String())
	if modal := m.renderModal(); modal != "" && m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	} else if modal != "" {
		return view + "\n" + modal
	}
	return view
}

func (m Model) label(row int, text string) string {
	if r, _ := m.focusTarget(); r == row {
		return CurrentTheme.Focused.Render(text + ":")
	}
	return CurrentTheme.Label.Render(text + ":")
}

func (m Model) statusLine() string {
	var parts []string
	if !m.loaded {
		parts = append(parts, "Restoring saved form...")
	}
	if m.calculating {
		parts = append(parts, "Calculating...")
	}
	if m.exporting {
		parts = append(parts, "Generating PDF...")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, " | ")
}

func (m Model) renderModal() string {
	switch {
	case m.confirmingClear:
		body := config.MsgConfirmClear + "\n\n" + CurrentTheme.Dim.Render("[y] yes  [n] no")
		return CurrentTheme.Modal.Render(body)
	case m.alert != "":
		body := m.alert + "\n\n" + CurrentTheme.Dim.Render("[enter] ok")
		return CurrentTheme.Modal.Render(body)
	}
	return ""
}

// truncate fits one line to the available width.
func (m Model) truncate(s string) string {
	limit := m.width - 4
	if m.width == 0 || limit < config.MinViewWidth {
		return s
	}
	return ansi.Truncate(s, limit, config.TruncationSuffix)
}

func (m Model) truncateLines(s string, pad int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if m.width > 0 && m.width-pad-4 >= config.MinViewWidth {
			lines[i] = ansi.Truncate(line, m.width-pad-4, config.TruncationSuffix)
		}
	}
	return strings.Join(lines, "\n")
}
