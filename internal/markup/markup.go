// Package markup builds the result-area markup and renders stored markup for
// the terminal. The markup format is the HTML fragment the browser tool kept,
// so snapshots stay interchangeable.
package markup

import (
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/akyairhashvil/resultpro/internal/models"
)

// Result renders a successful computation.
func Result(name string, r models.GPAResult) string {
	return fmt.Sprintf(
		"<strong>Student:</strong> %s<br>\n<strong>GPA:</strong> %.2f<br>\n<strong>Class of Degree:</strong> %s",
		html.EscapeString(name), r.GPA, html.EscapeString(r.ClassOfDegree),
	)
}

// Error renders a message shown in place of a result.
func Error(msg string) string {
	return fmt.Sprintf(`<strong style="color: red;">%s</strong>`, html.EscapeString(msg))
}

// IsError reports whether markup was produced by Error.
func IsError(m string) bool {
	return strings.HasPrefix(m, `<strong style="color: red;">`)
}

var policy = bluemonday.StrictPolicy().AllowElements("strong", "b", "em", "i", "br", "p")

// Text sanitizes stored markup and converts it to plain markdown-ish text.
// Stored markup is restored without validation, so anything outside the small
// inline subset is stripped before display.
func Text(m string) (string, error) {
	if strings.TrimSpace(m) == "" {
		return "", nil
	}
	out, err := htmltomarkdown.ConvertString(policy.Sanitize(m))
	if err != nil {
		return "", fmt.Errorf("render markup: %w", err)
	}
	out = strings.ReplaceAll(out, "**", "")
	return strings.TrimSpace(out), nil
}

var stripPolicy = bluemonday.StrictPolicy()

// Strip removes every tag and unescapes entities.
func Strip(m string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(m)))
}
