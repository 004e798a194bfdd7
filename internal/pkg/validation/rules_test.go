package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

func TestValidateCourse_Valid(t *testing.T) {
	fields, err := ValidateCourse(models.CourseInput{Name: "  Algebra ", Credits: "3", Score: "88.5"})
	require.NoError(t, err)

	assert.Equal(t, "Algebra", fields.Name)
	assert.Equal(t, 3.0, fields.Credits)
	assert.Equal(t, 88.5, fields.Score)
}

func TestValidateCourse_Boundaries(t *testing.T) {
	_, err := ValidateCourse(models.CourseInput{Name: "A", Credits: "0.5", Score: "0"})
	assert.NoError(t, err)

	_, err = ValidateCourse(models.CourseInput{Name: "A", Credits: "1", Score: "100"})
	assert.NoError(t, err)
}

func TestValidateCourse_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name  string
		input models.CourseInput
		want  error
	}{
		{"blank name", models.CourseInput{Name: "   ", Credits: "3", Score: "80"}, apperrors.ErrIncompleteInput},
		{"credits not a number", models.CourseInput{Name: "A", Credits: "three", Score: "80"}, apperrors.ErrIncompleteInput},
		{"score missing", models.CourseInput{Name: "A", Credits: "3", Score: ""}, apperrors.ErrIncompleteInput},
		{"score NaN", models.CourseInput{Name: "A", Credits: "3", Score: "NaN"}, apperrors.ErrIncompleteInput},
		{"blank name beats bad credits", models.CourseInput{Name: "", Credits: "-1", Score: "500"}, apperrors.ErrIncompleteInput},
		{"zero credits", models.CourseInput{Name: "A", Credits: "0", Score: "80"}, apperrors.ErrInvalidCredits},
		{"negative credits beats bad score", models.CourseInput{Name: "A", Credits: "-2", Score: "101"}, apperrors.ErrInvalidCredits},
		{"score above range", models.CourseInput{Name: "A", Credits: "3", Score: "100.01"}, apperrors.ErrInvalidScore},
		{"score below range", models.CourseInput{Name: "A", Credits: "3", Score: "-0.5"}, apperrors.ErrInvalidScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCourse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestNumericValidation(t *testing.T) {
	assert.True(t, NewNumericValidation(0).WithMin(0).Validate())
	assert.False(t, NewNumericValidation(0).WithMinExclusive(0).Validate())
	assert.False(t, NewNumericValidation(5).WithMax(4).Validate())
	assert.True(t, NewNumericValidation(-10).Validate())
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{" 3.5 ", 3.5, true},
		{"1e2", 100, true},
		{"", 0, false},
		{"3abc", 0, false},
		{"88%", 0, false},
		{"Inf", 0, false},
		{"NaN", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, got, "raw %q", tt.raw)
		}
	}
}

func TestValidateCourse_TrailingTextIsIncomplete(t *testing.T) {
	// whole-field parsing: "3abc" is not read as 3
	_, err := ValidateCourse(models.CourseInput{Name: "A", Credits: "3abc", Score: "80"})
	assert.ErrorIs(t, err, apperrors.ErrIncompleteInput)

	_, err = ValidateCourse(models.CourseInput{Name: "A", Credits: "3", Score: "88pts"})
	assert.ErrorIs(t, err, apperrors.ErrIncompleteInput)
}
