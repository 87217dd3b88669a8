// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mahmoud/cv-studio/internal/importer"
	"github.com/mahmoud/cv-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCVSummary outputs a human-readable overview of the document.
func (p *Printer) PrintCVSummary(cv *types.CVData) {
	if cv == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", cv.Basics.Name))
	sb.WriteString(fmt.Sprintf("Label:  %s\n", cv.Basics.Label))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", cv.Basics.Email))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Work entries:  %d\n", len(cv.Work)))
	sb.WriteString(fmt.Sprintf("Education:     %d\n", len(cv.Education)))
	sb.WriteString(fmt.Sprintf("Skill groups:  %d (%d keywords)\n", len(cv.Skills), cv.TotalSkillKeywords()))
	sb.WriteString(fmt.Sprintf("Projects:      %d\n", len(cv.Projects)))
	if len(cv.Certificates) > 0 {
		sb.WriteString(fmt.Sprintf("Certificates:  %d\n", len(cv.Certificates)))
	}

	if len(cv.Work) > 0 {
		sb.WriteString("\nRecent positions:\n")
		count := min(len(cv.Work), 3)
		for i := 0; i < count; i++ {
			job := cv.Work[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s\n", job.Position, job.Company))
		}
		if len(cv.Work) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cv.Work)-3))
		}
	}

	p.printBox("CV DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the ATS score with its label and improvement feedback.
func (p *Printer) PrintScore(result types.ScoreResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d/100 (%s)\n", result.Score, types.ScoreLabel(result.Score)))

	if len(result.Feedback) == 0 {
		sb.WriteString("\nNo improvement suggestions.")
	} else {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(result.Feedback), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Feedback[i]))
		}
		if len(result.Feedback) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Feedback)-maxItemsToShow))
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs schema violations from a rejected import.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(fields []importer.FieldError) {
	if len(fields) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ CV IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(fields)))

	for i, f := range fields {
		message := f.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", f.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(fields)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", sb.String())
}
