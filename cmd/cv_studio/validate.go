package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahmoud/cv-studio/internal/importer"
	"github.com/mahmoud/cv-studio/internal/observability"
)

var (
	validateInputFile string
	validateVerbose   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV JSON document",
	Long:  "Checks a CV JSON file against the import schema and reports every field violation.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "input", "i", "", "Path to CV JSON file (required)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print violations in a formatted box")
	_ = validateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	_, err = importer.Parse(data)
	if err == nil {
		if validateVerbose {
			observability.NewPrinter(os.Stdout).PrintValidation(nil)
		} else {
			fmt.Fprintln(os.Stdout, "CV is valid.")
		}
		return nil
	}

	var parseErr *importer.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("invalid format: %w", parseErr.Unwrap())
	}

	var validationErr *importer.ValidationError
	if errors.As(err, &validationErr) {
		if validateVerbose {
			observability.NewPrinter(os.Stderr).PrintValidation(validationErr.Fields)
		} else {
			fmt.Fprintln(os.Stderr, "CV does not match the required shape:")
			for _, field := range validationErr.Fields {
				fmt.Fprintf(os.Stderr, "  - %s: %s\n", field.Field, field.Message)
			}
		}
		return errors.New("invalid CV data format")
	}

	return err
}
