package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List available rendering styles",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, style := range rendering.DefaultStyles() {
			_, _ = fmt.Fprintf(os.Stdout, "%-13s %s\n", style.Name, style.FontFamily)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
