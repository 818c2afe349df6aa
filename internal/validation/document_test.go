package validation

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func janeDoe() *types.Document {
	doc := types.NewDocument()
	doc.PersonalInfo = types.PersonalInfo{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "555-0100",
		Location: "Remote",
	}
	doc.WorkExperience = []types.WorkExperience{
		{
			ID:          "exp-1",
			Company:     "Acme Corp",
			Title:       "Engineer",
			StartDate:   "2020-01",
			EndDate:     types.Present,
			Description: []string{},
		},
	}
	return doc
}

func TestValidateDocument_JaneDoeIsValid(t *testing.T) {
	result := ValidateDocument(janeDoe())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "valid", result.String())
}

func TestValidateDocument_MissingEmail(t *testing.T) {
	doc := janeDoe()
	doc.PersonalInfo.Email = ""

	result := ValidateDocument(doc)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, FieldError{Field: "personalInfo.email", Message: "Email is required", Type: ErrorRequired}, result.Errors[0])
	assert.True(t, result.HasError("personalInfo.email", ErrorRequired))
	assert.False(t, result.HasError("personalInfo.email", ErrorFormat))
}

func TestValidateDocument_BlankIsRequired(t *testing.T) {
	doc := janeDoe()
	doc.PersonalInfo.Phone = "   "

	result := ValidateDocument(doc)
	assert.True(t, result.HasError("personalInfo.phone", ErrorRequired))
}

func TestValidateDocument_InvalidEmailFormat(t *testing.T) {
	doc := janeDoe()
	doc.PersonalInfo.Email = "not-an-email"

	result := ValidateDocument(doc)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "personalInfo.email", result.Errors[0].Field)
	assert.Equal(t, ErrorFormat, result.Errors[0].Type)
}

func TestValidateDocument_RequiresWorkOrEducation(t *testing.T) {
	doc := janeDoe()
	doc.WorkExperience = []types.WorkExperience{}

	result := ValidateDocument(doc)
	assert.False(t, result.Valid)
	assert.True(t, result.HasError("workExperience", ErrorRequired))

	doc.Education = []types.Education{
		{ID: "e1", Institution: "MIT", Degree: "BSc", Field: "CS", StartDate: "2010-09", EndDate: "2014-06"},
	}
	result = ValidateDocument(doc)
	assert.True(t, result.Valid, result.String())
}

func TestValidateDocument_AccumulatesInOrder(t *testing.T) {
	doc := types.NewDocument()
	doc.PersonalInfo.Email = "bad"
	doc.WorkExperience = []types.WorkExperience{
		{ID: "a", Company: "Acme", Title: "Dev", StartDate: "2020-01", EndDate: "2021-01"},
		{ID: "b", Company: "", Title: "", StartDate: "2020-01", EndDate: "2019-01"},
	}
	doc.Education = []types.Education{
		{ID: "c", Institution: "", Degree: "", StartDate: "2015-01", EndDate: "2014-01"},
	}

	result := ValidateDocument(doc)
	assert.False(t, result.Valid)

	var fields []string
	for _, e := range result.Errors {
		fields = append(fields, e.Field+"/"+string(e.Type))
	}
	assert.Equal(t, []string{
		"personalInfo.name/required",
		"personalInfo.phone/required",
		"personalInfo.location/required",
		"personalInfo.email/format",
		"workExperience[1].company/required",
		"workExperience[1].title/required",
		"workExperience[1].endDate/range",
		"education[0].institution/required",
		"education[0].degree/required",
		"education[0].endDate/range",
	}, fields)
}

func TestValidateDocument_EmptyDocument(t *testing.T) {
	result := ValidateDocument(types.NewDocument())
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 5)
	assert.Contains(t, result.String(), "personalInfo.name")
}

func TestValidateDocument_NilDocument(t *testing.T) {
	assert.NotPanics(t, func() {
		result := ValidateDocument(nil)
		assert.False(t, result.Valid)
	})
}

func TestValidateDocument_EducationRejectsPresent(t *testing.T) {
	doc := janeDoe()
	doc.Education = []types.Education{
		{ID: "e1", Institution: "MIT", Degree: "BSc", Field: "CS", StartDate: "2020-09", EndDate: types.Present},
	}

	result := ValidateDocument(doc)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, FieldError{
		Field:   "education[0].endDate",
		Message: "Education end date must be a YYYY-MM month",
		Type:    ErrorRange,
	}, result.Errors[0])

	// the standalone range check still accepts the sentinel
	assert.True(t, ValidateDateRange("2020-09", types.Present))
}

func TestValidateDocument_MalformedDates(t *testing.T) {
	doc := janeDoe()
	doc.WorkExperience[0].EndDate = "sometime"

	result := ValidateDocument(doc)
	assert.True(t, result.HasError("workExperience[0].endDate", ErrorRange))
}
