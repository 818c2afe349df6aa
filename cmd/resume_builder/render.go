package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume document to HTML",
	Long:  "Renders a resume document in one style to standalone HTML. Rendering does not require the document to pass validation.",
	RunE:  runRender,
}

var (
	renderInput  string
	renderStyle  string
	renderOutput string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to resume JSON (required)")
	renderCmd.Flags().StringVarP(&renderStyle, "style", "s", rendering.StyleClassic, "Style name (see 'styles')")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to write HTML (default: stdout)")

	markRequired(renderCmd, "in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	m, err := openDocument(ctx, cfg, renderInput)
	if err != nil {
		return err
	}

	doc := m.GetData()
	html, err := rendering.NewEngine().Render(&doc, renderStyle)
	if err != nil {
		var styleErr *rendering.UnknownStyleError
		if errors.As(err, &styleErr) {
			return err
		}
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if renderOutput == "" {
		_, _ = fmt.Fprint(os.Stdout, html)
		return nil
	}

	store, err := newStore(ctx, cfg, renderOutput)
	if err != nil {
		return err
	}
	if err := store.WriteFile(ctx, renderOutput, []byte(html)); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Rendered %s style to %s\n", renderStyle, renderOutput)
	return nil
}
