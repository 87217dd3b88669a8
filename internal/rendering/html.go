package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/mahmoud/cv-studio/internal/types"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// RenderError wraps a template execution failure.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

var templates = template.Must(
	template.New("cv").Funcs(template.FuncMap{
		"dateRange": DateRange,
		"join":      func(items []string) string { return strings.Join(items, ", ") },
	}).ParseFS(templateFS, "templates/*.html.tmpl"),
)

// Render produces the themed HTML document for a CV snapshot.
func Render(cv *types.CVData, theme Theme) (string, error) {
	if _, ok := themeNotes[theme]; !ok {
		return "", &UnknownThemeError{Theme: theme}
	}

	var out strings.Builder
	name := string(theme) + ".html.tmpl"
	if err := templates.ExecuteTemplate(&out, name, cv); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to execute template %s", name),
			Cause:   err,
		}
	}
	return out.String(), nil
}

// DateRange formats a start/end pair for display. An empty end date reads as
// a current position.
func DateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	if end == "" {
		end = "Present"
	}
	if start == "" {
		return end
	}
	return start + " - " + end
}
