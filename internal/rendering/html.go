package rendering

import (
	_ "embed"
	"strings"
	"sync"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/resume.html.tmpl
var resumeTemplateSource string

var (
	resumeTemplateOnce sync.Once
	resumeTemplate     *template.Template
	resumeTemplateErr  error
)

var skillCategoryLabels = map[types.SkillCategory]string{
	types.SkillTechnical: "Technical",
	types.SkillSoft:      "Soft Skills",
	types.SkillLanguage:  "Languages",
	types.SkillOther:     "Other",
}

// TemplateData is the escaped, display-ready view of a document passed to the layout
type TemplateData struct {
	Style          Style
	Title          string
	Name           string
	Contact        string
	Summary        string
	Experience     []EntrySection
	Education      []EntrySection
	SkillGroups    []SkillGroup
	Certifications []string
}

// EntrySection is one work or education entry
type EntrySection struct {
	Heading    string
	Subheading string
	Dates      string
	Bullets    []string
}

// SkillGroup is one non-empty skill category
type SkillGroup struct {
	Label string
	Items string
}

// RenderWithStyle renders doc as a complete HTML document using style's tokens.
func RenderWithStyle(doc *types.Document, style Style) (string, error) {
	tmpl, err := parseTemplate()
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(doc, style)); err != nil {
		return "", &RenderError{
			Style:   style.Name,
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// parseTemplate parses the embedded layout once
func parseTemplate() (*template.Template, error) {
	resumeTemplateOnce.Do(func() {
		tmpl, err := template.New("resume").Parse(resumeTemplateSource)
		if err != nil {
			resumeTemplateErr = &TemplateError{
				Message: "failed to parse template",
				Cause:   err,
			}
			return
		}
		resumeTemplate = tmpl
	})
	return resumeTemplate, resumeTemplateErr
}

// buildTemplateData escapes every free-text value and groups sections for display
func buildTemplateData(doc *types.Document, style Style) *TemplateData {
	if doc == nil {
		doc = types.NewDocument()
	}
	info := doc.PersonalInfo

	title := "Resume"
	if name := strings.TrimSpace(info.Name); name != "" {
		title = EscapeHTML(name) + " - Resume"
	}

	data := &TemplateData{
		Style:          style,
		Title:          title,
		Name:           EscapeHTML(info.Name),
		Contact:        joinEscaped(style.ContactSeparator, info.Email, info.Phone, info.Location, info.LinkedIn, info.Website),
		Summary:        EscapeHTML(strings.TrimSpace(doc.Summary)),
		Experience:     formatExperience(doc.WorkExperience),
		Education:      formatEducation(doc.Education),
		SkillGroups:    groupSkills(doc.Skills),
		Certifications: escapeNonBlank(doc.Certifications),
	}

	return data
}

func formatExperience(entries []types.WorkExperience) []EntrySection {
	out := make([]EntrySection, 0, len(entries))
	for _, exp := range entries {
		out = append(out, EntrySection{
			Heading:    EscapeHTML(exp.Title),
			Subheading: joinEscaped(", ", exp.Company, exp.Location),
			Dates:      EscapeHTML(FormatDateRange(exp.StartDate, exp.EndDate)),
			Bullets:    escapeNonBlank(exp.Description),
		})
	}
	return out
}

func formatEducation(entries []types.Education) []EntrySection {
	out := make([]EntrySection, 0, len(entries))
	for _, edu := range entries {
		heading := EscapeHTML(edu.Degree)
		if strings.TrimSpace(edu.Field) != "" {
			if heading != "" {
				heading += " in "
			}
			heading += EscapeHTML(edu.Field)
		}

		dates := EscapeHTML(FormatDateRange(edu.StartDate, edu.EndDate))
		if gpa := strings.TrimSpace(edu.GPA); gpa != "" {
			if dates != "" {
				dates += " | "
			}
			dates += "GPA: " + EscapeHTML(gpa)
		}

		out = append(out, EntrySection{
			Heading:    heading,
			Subheading: EscapeHTML(edu.Institution),
			Dates:      dates,
		})
	}
	return out
}

// groupSkills partitions skills into the fixed category order, dropping empty groups
func groupSkills(skills []types.Skill) []SkillGroup {
	groups := make(map[types.SkillCategory][]string)
	for _, s := range skills {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		item := EscapeHTML(s.Name)
		if s.Level != "" {
			item += " (" + EscapeHTML(capitalize(string(s.Level))) + ")"
		}
		groups[s.Category] = append(groups[s.Category], item)
	}

	out := make([]SkillGroup, 0, len(groups))
	for _, category := range types.SkillCategories {
		items := groups[category]
		if len(items) == 0 {
			continue
		}
		out = append(out, SkillGroup{
			Label: skillCategoryLabels[category],
			Items: strings.Join(items, ", "),
		})
	}
	return out
}

// joinEscaped escapes and joins the non-blank values with sep
func joinEscaped(sep string, values ...string) string {
	return strings.Join(escapeNonBlank(values), sep)
}

func escapeNonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, EscapeHTML(v))
		}
	}
	return out
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
