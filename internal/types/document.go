// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Present is the end date sentinel for a role that is still ongoing.
const Present = "present"

// SkillCategory is the closed set of skill groupings.
type SkillCategory string

// Skill categories in display order.
const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillLanguage  SkillCategory = "language"
	SkillOther     SkillCategory = "other"
)

// SkillCategories lists every category in the order renderers display them.
var SkillCategories = []SkillCategory{SkillTechnical, SkillSoft, SkillLanguage, SkillOther}

// Valid reports whether c is one of the four permitted categories.
func (c SkillCategory) Valid() bool {
	switch c {
	case SkillTechnical, SkillSoft, SkillLanguage, SkillOther:
		return true
	}
	return false
}

// SkillLevel is an optional proficiency marker on a skill.
type SkillLevel string

// Skill levels.
const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// PersonalInfo holds the contact block at the top of a resume.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// WorkExperience represents a single role. EndDate is YYYY-MM or Present.
type WorkExperience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description []string `json:"description"`
	Location    string   `json:"location,omitempty"`
}

// Education represents a single degree entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
}

// Skill is a named skill in one of the fixed categories.
type Skill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	Level    SkillLevel    `json:"level,omitempty"`
}

// Document is the aggregate root for a resume.
//
// The canonical form keeps WorkExperience, Education, Skills and every Description
// non-nil, and Certifications nil when there are none. NewDocument, Clone and the
// serializer always produce canonical documents.
type Document struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary,omitempty"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Certifications []string         `json:"certifications,omitempty"`
}

// NewDocument returns an empty canonical document.
func NewDocument() *Document {
	return &Document{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         []Skill{},
	}
}

// Clone returns a deep copy of d in canonical form.
func (d *Document) Clone() *Document {
	if d == nil {
		return NewDocument()
	}

	out := &Document{
		PersonalInfo:   d.PersonalInfo,
		Summary:        d.Summary,
		WorkExperience: make([]WorkExperience, len(d.WorkExperience)),
		Education:      make([]Education, len(d.Education)),
		Skills:         make([]Skill, len(d.Skills)),
	}

	for i, exp := range d.WorkExperience {
		exp.Description = cloneStrings(exp.Description)
		out.WorkExperience[i] = exp
	}
	copy(out.Education, d.Education)
	copy(out.Skills, d.Skills)

	if len(d.Certifications) > 0 {
		out.Certifications = cloneStrings(d.Certifications)
	}

	return out
}

// HasEntries reports whether the document has at least one work or education entry.
func (d *Document) HasEntries() bool {
	return len(d.WorkExperience) > 0 || len(d.Education) > 0
}

// SkillsByCategory partitions skills into the fixed categories, preserving insertion order
// within each category. Categories without members are absent from the map.
func (d *Document) SkillsByCategory() map[SkillCategory][]Skill {
	groups := make(map[SkillCategory][]Skill)
	for _, s := range d.Skills {
		groups[s.Category] = append(groups[s.Category], s)
	}
	return groups
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
