package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume document against the business rules",
	Long:  "Loads a resume document and reports every failed rule: required contact fields, email format, at least one work or education entry, required entry fields and date ranges.",
	RunE:  runValidate,
}

var (
	validateInput string
	validateJSON  bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to resume JSON (required)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print the result as JSON")

	markRequired(validateCmd, "in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	m, err := openDocument(ctx, cfg, validateInput)
	if err != nil {
		return err
	}

	doc := m.GetData()
	result := validation.ValidateDocument(&doc)

	switch {
	case validateJSON:
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal validation result: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(out))
	case cfg.Verbose:
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintDocumentSummary(&doc)
		printer.PrintValidationResult(result)
	default:
		if result.Valid {
			_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", validateInput)
		} else {
			_, _ = fmt.Fprint(os.Stdout, result.String())
		}
	}

	if !result.Valid {
		return fmt.Errorf("document has %d validation error(s)", len(result.Errors))
	}
	return nil
}
