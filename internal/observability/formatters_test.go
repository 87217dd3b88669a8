package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mahmoud/cv-studio/internal/importer"
	"github.com/mahmoud/cv-studio/internal/types"
)

func TestPrintCVSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCVSummary(types.DefaultCV())

	out := buf.String()
	assert.Contains(t, out, "CV DOCUMENT")
	assert.Contains(t, out, types.DefaultCV().Basics.Name)
	assert.Contains(t, out, "Work entries:")
	assert.Contains(t, out, "Recent positions:")
}

func TestPrintCVSummary_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCVSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(types.ScoreResult{
		Score:    73,
		Feedback: []string{"Add work experience", "Add relevant skills"},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS SCORE")
	assert.Contains(t, out, "73/100")
	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "Add work experience")
}

func TestPrintScore_NoFeedback(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(types.ScoreResult{Score: 100, Feedback: []string{}})

	assert.Contains(t, buf.String(), "No improvement suggestions.")
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidation([]importer.FieldError{
		{Field: "basics.email", Message: "email is required"},
	})

	out := buf.String()
	assert.Contains(t, out, "SCHEMA VIOLATIONS")
	assert.Contains(t, out, "basics.email")
	assert.Contains(t, out, "email is required")
}

func TestPrintValidation_NoViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidation(nil)

	assert.Contains(t, buf.String(), "CV IS VALID")
}

func TestBoxLinesHaveFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
