package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

func TestGradePoint(t *testing.T) {
	tests := []struct {
		score float64
		want  float64
	}{
		{100, 4.0},
		{90, 4.0},
		{89, 3.9},
		{75, 2.5},
		{60, 1.0},
		{59.9, 0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, GradePoint(tt.score), 1e-9, "score %v", tt.score)
	}
}

func TestGPAService_Calculate(t *testing.T) {
	svc := NewGPAService(zerolog.Nop())

	result, err := svc.Calculate(context.Background(), []models.Course{
		{Name: "Linear Algebra", Credits: 3, Score: 91},
		{Name: "History", Credits: 2, Score: 70},
	})
	require.NoError(t, err)

	// (3*4.0 + 2*2.0) / 5
	assert.InDelta(t, 3.2, result.GPA, 1e-9)
	// (3*91 + 2*70) / 5
	assert.InDelta(t, 82.6, result.WeightedAverage, 1e-9)
	assert.Equal(t, 5.0, result.TotalCredits)
}

func TestGPAService_CalculateEmpty(t *testing.T) {
	svc := NewGPAService(zerolog.Nop())

	_, err := svc.Calculate(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrNoCourses)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestGPAService_CalculateZeroCredits(t *testing.T) {
	svc := NewGPAService(zerolog.Nop())

	_, err := svc.Calculate(context.Background(), []models.Course{{Name: "Audit", Credits: 0, Score: 90}})
	assert.ErrorIs(t, err, apperrors.ErrZeroCredits)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestGPAService_CalculateOverflow(t *testing.T) {
	svc := NewGPAService(zerolog.Nop())

	tests := []struct {
		name    string
		courses []models.Course
	}{
		{"weighted score overflows", []models.Course{{Name: "A", Credits: 1e307, Score: 100}}},
		{"credits overflow", []models.Course{{Name: "A", Credits: 1e308, Score: 50}, {Name: "B", Credits: 1e308, Score: 50}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Calculate(context.Background(), tt.courses)
			assert.ErrorIs(t, err, apperrors.ErrValuesOutOfRange)
			assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		})
	}
}

func TestGPAService_CalculateLargeButFinite(t *testing.T) {
	svc := NewGPAService(zerolog.Nop())

	result, err := svc.Calculate(context.Background(), []models.Course{{Name: "A", Credits: 1e300, Score: 100}})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, result.GPA, 1e-9)
	assert.InDelta(t, 100.0, result.WeightedAverage, 1e-9)
}
