package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mahmoud/cv-studio/internal/export"
	"github.com/mahmoud/cv-studio/internal/rendering"
)

var (
	exportInputFile string
	exportFormat    string
	exportTheme     string
	exportOutputDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a CV to PDF, DOCX or HTML",
	Long:  "Renders a CV JSON document with the chosen theme and writes PDF, DOCX or HTML files. PDF export requires a local Chrome or Chromium.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "input", "i", "", "Path to CV JSON file (default: built-in CV)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: pdf, docx, html or all")
	exportCmd.Flags().StringVarP(&exportTheme, "theme", "t", "", "Theme name (default: geminiDark)")
	exportCmd.Flags().StringVarP(&exportOutputDir, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	switch exportFormat {
	case "pdf", "docx", "html", "all":
	default:
		return fmt.Errorf("invalid format %q: must be pdf, docx, html or all", exportFormat)
	}

	cv, err := loadCV(exportInputFile)
	if err != nil {
		return err
	}

	theme, err := rendering.ParseTheme(exportTheme)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if exportFormat == "pdf" || exportFormat == "all" {
		ctx, cancel := context.WithTimeout(context.Background(), export.DefaultPDFTimeout)
		defer cancel()

		pdf, err := export.PDF(ctx, cv, theme)
		if err != nil {
			return fmt.Errorf("failed to export PDF: %w", err)
		}

		path := filepath.Join(exportOutputDir, export.Filename(cv.Basics.Name, "pdf"))
		if err := os.WriteFile(path, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	}

	if exportFormat == "docx" || exportFormat == "all" {
		var buf bytes.Buffer
		if err := export.DOCX(cv, &buf); err != nil {
			return fmt.Errorf("failed to export DOCX: %w", err)
		}

		path := filepath.Join(exportOutputDir, export.Filename(cv.Basics.Name, "docx"))
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write DOCX: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	}

	if exportFormat == "html" || exportFormat == "all" {
		html, err := rendering.Render(cv, theme)
		if err != nil {
			return fmt.Errorf("failed to render HTML: %w", err)
		}

		path := filepath.Join(exportOutputDir, export.Filename(cv.Basics.Name, "html"))
		if err := os.WriteFile(path, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write HTML: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	}

	return nil
}
