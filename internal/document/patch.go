package document

import "github.com/jonathan/resume-builder/internal/types"

// PersonalInfoPatch is a partial update; nil fields are left unchanged.
type PersonalInfoPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Location *string
	LinkedIn *string
	Website  *string
}

func (p PersonalInfoPatch) apply(info *types.PersonalInfo) {
	setIf(&info.Name, p.Name)
	setIf(&info.Email, p.Email)
	setIf(&info.Phone, p.Phone)
	setIf(&info.Location, p.Location)
	setIf(&info.LinkedIn, p.LinkedIn)
	setIf(&info.Website, p.Website)
}

// WorkExperiencePatch is a partial update of a work entry. A nil Description
// keeps the existing bullets; the id cannot be changed.
type WorkExperiencePatch struct {
	Company     *string
	Title       *string
	StartDate   *string
	EndDate     *string
	Location    *string
	Description []string
}

func (p WorkExperiencePatch) apply(exp *types.WorkExperience) {
	setIf(&exp.Company, p.Company)
	setIf(&exp.Title, p.Title)
	setIf(&exp.StartDate, p.StartDate)
	setIf(&exp.EndDate, p.EndDate)
	setIf(&exp.Location, p.Location)
	if p.Description != nil {
		exp.Description = append([]string{}, p.Description...)
	}
}

// EducationPatch is a partial update of an education entry.
type EducationPatch struct {
	Institution *string
	Degree      *string
	Field       *string
	StartDate   *string
	EndDate     *string
	GPA         *string
}

func (p EducationPatch) apply(edu *types.Education) {
	setIf(&edu.Institution, p.Institution)
	setIf(&edu.Degree, p.Degree)
	setIf(&edu.Field, p.Field)
	setIf(&edu.StartDate, p.StartDate)
	setIf(&edu.EndDate, p.EndDate)
	setIf(&edu.GPA, p.GPA)
}

// String returns a pointer to s, for building patches.
func String(s string) *string {
	return &s
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
