package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var addExperienceCmd = &cobra.Command{
	Use:   "add-experience",
	Short: "Append a work experience entry",
	RunE:  runAddExperience,
}

var updateExperienceCmd = &cobra.Command{
	Use:   "update-experience",
	Short: "Update fields of a work experience entry by id",
	RunE:  runUpdateExperience,
}

var addEducationCmd = &cobra.Command{
	Use:   "add-education",
	Short: "Append an education entry",
	RunE:  runAddEducation,
}

var updateEducationCmd = &cobra.Command{
	Use:   "update-education",
	Short: "Update fields of an education entry by id",
	RunE:  runUpdateEducation,
}

var addSkillCmd = &cobra.Command{
	Use:   "add-skill",
	Short: "Append a skill",
	RunE:  runAddSkill,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an entry from a section",
	Long:  "Removes a workExperience or education entry by id, or a skill by name.",
	RunE:  runRemove,
}

var (
	entryInput string
	entryID    string

	expCompany  string
	expTitle    string
	expStart    string
	expEnd      string
	expLocation string
	expBullets  []string

	eduInstitution string
	eduDegree      string
	eduField       string
	eduStart       string
	eduEnd         string
	eduGPA         string

	skillName     string
	skillCategory string
	skillLevel    string

	removeSection string
)

func init() {
	for _, c := range []*cobra.Command{addExperienceCmd, updateExperienceCmd} {
		c.Flags().StringVarP(&entryInput, "in", "i", "", "Path to resume JSON (required)")
		c.Flags().StringVar(&entryID, "id", "", "Entry id")
		c.Flags().StringVar(&expCompany, "company", "", "Company name")
		c.Flags().StringVar(&expTitle, "title", "", "Job title")
		c.Flags().StringVar(&expStart, "start", "", "Start date (YYYY-MM)")
		c.Flags().StringVar(&expEnd, "end", types.Present, "End date (YYYY-MM or present)")
		c.Flags().StringVar(&expLocation, "location", "", "Location")
		c.Flags().StringArrayVar(&expBullets, "bullet", nil, "Description bullet (repeatable)")
		markRequired(c, "in")
	}
	markRequired(addExperienceCmd, "company", "title", "start")
	markRequired(updateExperienceCmd, "id")

	for _, c := range []*cobra.Command{addEducationCmd, updateEducationCmd} {
		c.Flags().StringVarP(&entryInput, "in", "i", "", "Path to resume JSON (required)")
		c.Flags().StringVar(&entryID, "id", "", "Entry id")
		c.Flags().StringVar(&eduInstitution, "institution", "", "Institution name")
		c.Flags().StringVar(&eduDegree, "degree", "", "Degree")
		c.Flags().StringVar(&eduField, "field", "", "Field of study")
		c.Flags().StringVar(&eduStart, "start", "", "Start date (YYYY-MM)")
		c.Flags().StringVar(&eduEnd, "end", "", "End date (YYYY-MM)")
		c.Flags().StringVar(&eduGPA, "gpa", "", "GPA")
		markRequired(c, "in")
	}
	markRequired(addEducationCmd, "institution", "degree", "start", "end")
	markRequired(updateEducationCmd, "id")

	addSkillCmd.Flags().StringVarP(&entryInput, "in", "i", "", "Path to resume JSON (required)")
	addSkillCmd.Flags().StringVar(&skillName, "name", "", "Skill name")
	addSkillCmd.Flags().StringVar(&skillCategory, "category", string(types.SkillTechnical), "Category: technical, soft, language or other")
	addSkillCmd.Flags().StringVar(&skillLevel, "level", "", "Level: beginner, intermediate, advanced or expert")
	markRequired(addSkillCmd, "in", "name")

	removeCmd.Flags().StringVarP(&entryInput, "in", "i", "", "Path to resume JSON (required)")
	removeCmd.Flags().StringVar(&removeSection, "section", "", "Section: workExperience, education or skills")
	removeCmd.Flags().StringVar(&entryID, "id", "", "Entry id, or skill name for skills")
	markRequired(removeCmd, "in", "section", "id")

	rootCmd.AddCommand(addExperienceCmd, updateExperienceCmd, addEducationCmd, updateEducationCmd, addSkillCmd, removeCmd)
}

func runAddExperience(cmd *cobra.Command, _ []string) error {
	var id string
	err := editDocument(cmd.Context(), entryInput, func(m *document.Manager) error {
		id = m.AddWorkExperience(types.WorkExperience{
			ID:          entryID,
			Company:     expCompany,
			Title:       expTitle,
			StartDate:   expStart,
			EndDate:     expEnd,
			Description: expBullets,
			Location:    expLocation,
		})
		return nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Added work experience %s\n", id)
	return nil
}

func runUpdateExperience(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	patch := document.WorkExperiencePatch{
		Company:   changedString(flags.Changed("company"), expCompany),
		Title:     changedString(flags.Changed("title"), expTitle),
		StartDate: changedString(flags.Changed("start"), expStart),
		EndDate:   changedString(flags.Changed("end"), expEnd),
		Location:  changedString(flags.Changed("location"), expLocation),
	}
	if flags.Changed("bullet") {
		patch.Description = append([]string{}, expBullets...)
	}

	err := editDocument(cmd.Context(), entryInput, func(m *document.Manager) error {
		if !m.UpdateWorkExperience(entryID, patch) {
			return fmt.Errorf("no work experience with id %q", entryID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Updated work experience %s\n", entryID)
	return nil
}

func runAddEducation(cmd *cobra.Command, _ []string) error {
	var id string
	err := editDocument(cmd.Context(), entryInput, func(m *document.Manager) error {
		id = m.AddEducation(types.Education{
			ID:          entryID,
			Institution: eduInstitution,
			Degree:      eduDegree,
			Field:       eduField,
			StartDate:   eduStart,
			EndDate:     eduEnd,
			GPA:         eduGPA,
		})
		return nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Added education %s\n", id)
	return nil
}

func runUpdateEducation(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	patch := document.EducationPatch{
		Institution: changedString(flags.Changed("institution"), eduInstitution),
		Degree:      changedString(flags.Changed("degree"), eduDegree),
		Field:       changedString(flags.Changed("field"), eduField),
		StartDate:   changedString(flags.Changed("start"), eduStart),
		EndDate:     changedString(flags.Changed("end"), eduEnd),
		GPA:         changedString(flags.Changed("gpa"), eduGPA),
	}

	err := editDocument(cmd.Context(), entryInput, func(m *document.Manager) error {
		if !m.UpdateEducation(entryID, patch) {
			return fmt.Errorf("no education entry with id %q", entryID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Updated education %s\n", entryID)
	return nil
}

func runAddSkill(cmd *cobra.Command, _ []string) error {
	category, err := parseCategory(skillCategory)
	if err != nil {
		return err
	}
	level, err := parseLevel(skillLevel)
	if err != nil {
		return err
	}

	err = editDocument(cmd.Context(), entryInput, func(m *document.Manager) error {
		m.AddSkill(types.Skill{Name: skillName, Category: category, Level: level})
		return nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Added skill %s (%s)\n", skillName, category)
	return nil
}

func runRemove(cmd *cobra.Command, _ []string) error {
	switch removeSection {
	case document.SectionWorkExperience, document.SectionEducation, document.SectionSkills:
	default:
		return fmt.Errorf("invalid section %q (valid: workExperience, education, skills)", removeSection)
	}

	err := editDocument(cmd.Context(), entryInput, func(m *document.Manager) error {
		if !m.RemoveEntry(removeSection, entryID) {
			return fmt.Errorf("no %s entry %q", removeSection, entryID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Removed %s entry %s\n", removeSection, entryID)
	return nil
}
