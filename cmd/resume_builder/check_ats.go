package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/spf13/cobra"
)

var checkATSCmd = &cobra.Command{
	Use:   "check-ats",
	Short: "Check rendered HTML for ATS compliance",
	Long:  "Checks an HTML file for doctype, html/head/body structure, a title, table layout, images, external resources and a single font family.",
	RunE:  runCheckATS,
}

var (
	checkATSInput  string
	checkATSOutput string
)

func init() {
	checkATSCmd.Flags().StringVarP(&checkATSInput, "in", "i", "", "Path to HTML file (required)")
	checkATSCmd.Flags().StringVarP(&checkATSOutput, "out", "o", "", "Path to write violations JSON (optional)")

	markRequired(checkATSCmd, "in")

	rootCmd.AddCommand(checkATSCmd)
}

func runCheckATS(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := newStore(ctx, cfg, checkATSInput, checkATSOutput)
	if err != nil {
		return err
	}

	html, err := store.ReadFile(ctx, checkATSInput)
	if err != nil {
		return fmt.Errorf("failed to read HTML file: %w", err)
	}

	found, err := validation.CheckATS(string(html))
	if err != nil {
		return fmt.Errorf("failed to check HTML: %w", err)
	}
	violations := &types.Violations{Violations: found}

	if checkATSOutput != "" {
		jsonBytes, err := json.MarshalIndent(violations, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal violations to JSON: %w", err)
		}
		if err := store.WriteFile(ctx, checkATSOutput, jsonBytes); err != nil {
			return fmt.Errorf("failed to write violations to output file: %w", err)
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintViolations(violations)
	}

	if len(found) == 0 {
		_, _ = fmt.Fprintf(os.Stdout, "ATS check passed: No violations found\n")
		return nil
	}

	if !cfg.Verbose {
		for _, v := range found {
			_, _ = fmt.Fprintf(os.Stdout, "%s: %s\n", v.Type, v.Details)
		}
	}

	// Violations exit non-zero
	return fmt.Errorf("ATS check found %d violation(s)", len(found))
}
