package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new resume document",
	Long:  "Creates a resume document with the given contact details. Missing details are filled with placeholders so the file can be loaded again.",
	RunE:  runInit,
}

var (
	initOutput   string
	initName     string
	initEmail    string
	initPhone    string
	initLocation string
	initForce    bool
)

// Placeholders keep a fresh document loadable; the interchange format requires
// non-empty contact fields.
const (
	placeholderName     = "Your Name"
	placeholderEmail    = "you@example.com"
	placeholderPhone    = "000-000-0000"
	placeholderLocation = "City, Country"
)

func init() {
	initCmd.Flags().StringVarP(&initOutput, "out", "o", "", "Path to write the resume JSON (required)")
	initCmd.Flags().StringVar(&initName, "name", placeholderName, "Full name")
	initCmd.Flags().StringVar(&initEmail, "email", placeholderEmail, "Email address")
	initCmd.Flags().StringVar(&initPhone, "phone", placeholderPhone, "Phone number")
	initCmd.Flags().StringVar(&initLocation, "location", placeholderLocation, "Location")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")

	markRequired(initCmd, "out")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := newStore(ctx, cfg, initOutput)
	if err != nil {
		return err
	}

	if !initForce {
		_, err := store.ReadFile(ctx, initOutput)
		if err == nil {
			return fmt.Errorf("file already exists: %s (use --force to overwrite)", initOutput)
		}
		if !storage.IsNotFound(err) {
			return fmt.Errorf("failed to check %s: %w", initOutput, err)
		}
	}

	m := document.NewManager(store)
	m.SetPersonalInfo(types.PersonalInfo{
		Name:     orPlaceholder(initName, placeholderName),
		Email:    orPlaceholder(initEmail, placeholderEmail),
		Phone:    orPlaceholder(initPhone, placeholderPhone),
		Location: orPlaceholder(initLocation, placeholderLocation),
	})

	if err := m.Save(ctx, initOutput); err != nil {
		return fmt.Errorf("failed to write resume document: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Created resume document: %s\n", initOutput)
	return nil
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
