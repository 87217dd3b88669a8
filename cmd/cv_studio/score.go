package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahmoud/cv-studio/internal/importer"
	"github.com/mahmoud/cv-studio/internal/observability"
	"github.com/mahmoud/cv-studio/internal/scoring"
	"github.com/mahmoud/cv-studio/internal/types"
)

var (
	scoreInputFile string
	scoreVerbose   bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a CV for ATS friendliness",
	Long:  "Scores a CV JSON document against the ATS checklist and prints the score, its label and improvement feedback.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "input", "i", "", "Path to CV JSON file (default: built-in CV)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted document summary and score box")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cv, err := loadCV(scoreInputFile)
	if err != nil {
		return err
	}

	result := scoring.Score(cv)

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintCVSummary(cv)
		printer.PrintScore(result)
		return nil
	}

	fmt.Fprintf(os.Stdout, "ATS score: %d/100 (%s)\n", result.Score, types.ScoreLabel(result.Score))
	if len(result.Feedback) == 0 {
		fmt.Fprintln(os.Stdout, "No improvement suggestions.")
		return nil
	}
	fmt.Fprintln(os.Stdout, "Suggestions:")
	for _, item := range result.Feedback {
		fmt.Fprintf(os.Stdout, "  - %s\n", item)
	}
	return nil
}

// loadCV reads and validates a CV JSON file, or returns the built-in document
// when no path is given.
func loadCV(path string) (*types.CVData, error) {
	if path == "" {
		return types.DefaultCV(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV file: %w", err)
	}

	cv, err := importer.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load CV: %w", err)
	}
	return cv, nil
}
