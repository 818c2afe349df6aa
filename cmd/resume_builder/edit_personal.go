package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/spf13/cobra"
)

var setPersonalCmd = &cobra.Command{
	Use:   "set-personal",
	Short: "Update contact details of a resume document",
	Long:  "Updates only the contact fields whose flags are given; other fields keep their values.",
	RunE:  runSetPersonal,
}

var setSummaryCmd = &cobra.Command{
	Use:   "set-summary",
	Short: "Set or clear the summary and certifications of a resume document",
	RunE:  runSetSummary,
}

var (
	personalInput    string
	personalName     string
	personalEmail    string
	personalPhone    string
	personalLocation string
	personalLinkedIn string
	personalWebsite  string

	summaryInput string
	summaryText  string
	summaryCerts []string
)

func init() {
	setPersonalCmd.Flags().StringVarP(&personalInput, "in", "i", "", "Path to resume JSON (required)")
	setPersonalCmd.Flags().StringVar(&personalName, "name", "", "Full name")
	setPersonalCmd.Flags().StringVar(&personalEmail, "email", "", "Email address")
	setPersonalCmd.Flags().StringVar(&personalPhone, "phone", "", "Phone number")
	setPersonalCmd.Flags().StringVar(&personalLocation, "location", "", "Location")
	setPersonalCmd.Flags().StringVar(&personalLinkedIn, "linkedin", "", "LinkedIn URL")
	setPersonalCmd.Flags().StringVar(&personalWebsite, "website", "", "Website URL")
	markRequired(setPersonalCmd, "in")

	setSummaryCmd.Flags().StringVarP(&summaryInput, "in", "i", "", "Path to resume JSON (required)")
	setSummaryCmd.Flags().StringVar(&summaryText, "summary", "", "Summary text; empty removes it")
	setSummaryCmd.Flags().StringArrayVar(&summaryCerts, "cert", nil, "Certification (repeatable); replaces the list")
	markRequired(setSummaryCmd, "in")

	rootCmd.AddCommand(setPersonalCmd)
	rootCmd.AddCommand(setSummaryCmd)
}

func runSetPersonal(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	patch := document.PersonalInfoPatch{
		Name:     changedString(flags.Changed("name"), personalName),
		Email:    changedString(flags.Changed("email"), personalEmail),
		Phone:    changedString(flags.Changed("phone"), personalPhone),
		Location: changedString(flags.Changed("location"), personalLocation),
		LinkedIn: changedString(flags.Changed("linkedin"), personalLinkedIn),
		Website:  changedString(flags.Changed("website"), personalWebsite),
	}

	err := editDocument(cmd.Context(), personalInput, func(m *document.Manager) error {
		m.UpdatePersonalInfo(patch)
		return nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Updated contact details in %s\n", personalInput)
	return nil
}

func runSetSummary(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed("summary") && !flags.Changed("cert") {
		return fmt.Errorf("nothing to update: pass --summary and/or --cert")
	}

	err := editDocument(cmd.Context(), summaryInput, func(m *document.Manager) error {
		if flags.Changed("summary") {
			m.SetSummary(summaryText)
		}
		if flags.Changed("cert") {
			m.SetCertifications(summaryCerts)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Updated %s\n", summaryInput)
	return nil
}

// changedString returns a patch value for a flag the user actually passed.
func changedString(changed bool, value string) *string {
	if !changed {
		return nil
	}
	return document.String(value)
}
