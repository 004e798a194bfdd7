package services

import (
	"context"
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

var (
	// calculationTotal counts calculations by result
	calculationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gpa_calculations_total",
		Help: "Total GPA calculations by result",
	}, []string{"result"})

	// calculationCourses tracks how many courses each calculation receives
	calculationCourses = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gpa_calculation_courses",
		Help:    "Number of courses per GPA calculation",
		Buckets: []float64{1, 2, 5, 10, 20, 50},
	})
)

// Grade point scale
const (
	ExcellentScore = 90.0
	PassingScore   = 60.0
	MaxGradePoint  = 4.0
)

// GPAService defines the interface for GPA calculation
type GPAService interface {
	Calculate(ctx context.Context, courses []models.Course) (*models.GPAResult, error)
}

// gpaServiceImpl implements the GPAService interface
type gpaServiceImpl struct {
	logger zerolog.Logger
}

// NewGPAService creates a new GPA service instance
func NewGPAService(logger zerolog.Logger) GPAService {
	return &gpaServiceImpl{logger: logger}
}

// GradePoint converts a percentage score to a grade point.
// 90 and above earns 4.0, 60 to 90 earns 1.0 plus 0.1 per point over 60, below 60 earns 0.
func GradePoint(score float64) float64 {
	switch {
	case score >= ExcellentScore:
		return MaxGradePoint
	case score >= PassingScore:
		return 1.0 + (score-PassingScore)*0.1
	default:
		return 0.0
	}
}

// Calculate computes the credit-weighted GPA and average score of the given courses
func (s *gpaServiceImpl) Calculate(ctx context.Context, courses []models.Course) (*models.GPAResult, error) {
	if len(courses) == 0 {
		calculationTotal.WithLabelValues("no_courses").Inc()
		return nil, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, apperrors.ErrNoCourses)
	}
	calculationCourses.Observe(float64(len(courses)))

	var totalCredits, totalGradePoints, totalWeightedScore float64
	for _, c := range courses {
		totalCredits += c.Credits
		totalGradePoints += c.Credits * GradePoint(c.Score)
		totalWeightedScore += c.Credits * c.Score
	}

	if !finite(totalCredits, totalGradePoints, totalWeightedScore) {
		calculationTotal.WithLabelValues("out_of_range").Inc()
		return nil, apperrors.ErrValuesOutOfRange
	}

	if totalCredits == 0 {
		calculationTotal.WithLabelValues("zero_credits").Inc()
		return nil, apperrors.ErrZeroCredits
	}

	result := &models.GPAResult{
		GPA:             totalGradePoints / totalCredits,
		WeightedAverage: totalWeightedScore / totalCredits,
		TotalCredits:    totalCredits,
	}
	if !finite(result.GPA, result.WeightedAverage) {
		calculationTotal.WithLabelValues("out_of_range").Inc()
		return nil, apperrors.ErrValuesOutOfRange
	}
	calculationTotal.WithLabelValues("ok").Inc()

	s.logger.Debug().
		Int("courses", len(courses)).
		Float64("gpa", result.GPA).
		Float64("totalCredits", totalCredits).
		Msg("GPA calculated")
	return result, nil
}

// finite reports whether every value can be encoded as a JSON number
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
