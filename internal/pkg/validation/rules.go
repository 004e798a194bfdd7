package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// Course rule bounds
var (
	// ScoreMin and ScoreMax are inclusive
	ScoreMin = 0.0
	ScoreMax = 100.0
)

// StringValidation checks a text field
type StringValidation struct {
	Value    string
	Required bool
	Trim     bool
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithTrim makes the validation ignore surrounding whitespace
func (v *StringValidation) WithTrim(trim bool) *StringValidation {
	v.Trim = trim
	return v
}

// Normalized returns the value as it will be stored
func (v *StringValidation) Normalized() string {
	if v.Trim {
		return strings.TrimSpace(v.Value)
	}
	return v.Value
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Normalized() == "" {
		return false
	}
	return true
}

// NumericValidation checks a real number against optional bounds.
// Bounds are only enforced when the corresponding Has* flag is set, so zero is a usable bound.
type NumericValidation struct {
	Value        float64
	Min          float64
	Max          float64
	HasMin       bool
	HasMax       bool
	ExclusiveMin bool
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value float64) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets an inclusive minimum value
func (v *NumericValidation) WithMin(min float64) *NumericValidation {
	v.Min = min
	v.HasMin = true
	v.ExclusiveMin = false
	return v
}

// WithMinExclusive sets an exclusive minimum value
func (v *NumericValidation) WithMinExclusive(min float64) *NumericValidation {
	v.Min = min
	v.HasMin = true
	v.ExclusiveMin = true
	return v
}

// WithMax sets an inclusive maximum value
func (v *NumericValidation) WithMax(max float64) *NumericValidation {
	v.Max = max
	v.HasMax = true
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	if v.HasMin {
		if v.ExclusiveMin && v.Value <= v.Min {
			return false
		}
		if !v.ExclusiveMin && v.Value < v.Min {
			return false
		}
	}
	if v.HasMax && v.Value > v.Max {
		return false
	}
	return true
}

// ParseNumber parses a form value as a finite real number.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ValidateCourse checks a candidate course. Rules run in order and the first failure wins:
// a non-blank name with numeric credits and score, then credits > 0, then 0 <= score <= 100.
func ValidateCourse(in models.CourseInput) (models.CourseFields, error) {
	name := NewStringValidation(in.Name).WithTrim(true)
	credits, creditsOK := ParseNumber(in.Credits)
	score, scoreOK := ParseNumber(in.Score)

	if !name.Validate() || !creditsOK || !scoreOK {
		return models.CourseFields{}, apperrors.ErrIncompleteInput
	}

	if !NewNumericValidation(credits).WithMinExclusive(0).Validate() {
		return models.CourseFields{}, apperrors.ErrInvalidCredits
	}

	if !NewNumericValidation(score).WithMin(ScoreMin).WithMax(ScoreMax).Validate() {
		return models.CourseFields{}, apperrors.ErrInvalidScore
	}

	return models.CourseFields{
		Name:    name.Normalized(),
		Credits: credits,
		Score:   score,
	}, nil
}
