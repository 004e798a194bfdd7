// Package gpaclient talks to the remote GPA calculation endpoint.
package gpaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 1 << 20

// Calculator computes a GPA result for a list of courses
type Calculator interface {
	Calculate(ctx context.Context, courses []models.Course) (*models.GPAResult, error)
}

// Client posts the full course list to a single calculation endpoint.
// It does not retry and does not cache.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a Client for the given endpoint URL
func NewClient(endpoint string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// calculateResponse uses pointers so a missing field can be told apart from zero
type calculateResponse struct {
	GPA             *float64 `json:"gpa"`
	WeightedAverage *float64 `json:"weightedAverage"`
	TotalCredits    *float64 `json:"totalCredits"`
}

// Calculate sends courses to the endpoint. An empty list fails with ErrNoCourses without
// any request. Transport failures wrap ErrNetworkFailure; a non-2xx status or an
// incomplete body wraps ErrCalculationFailed.
func (c *Client) Calculate(ctx context.Context, courses []models.Course) (*models.GPAResult, error) {
	if len(courses) == 0 {
		return nil, apperrors.ErrNoCourses
	}

	body, err := json.Marshal(dto.CalculateRequest{Courses: dto.NewCourseItems(courses)})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", apperrors.ErrCalculationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", apperrors.ErrNetworkFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("endpoint", c.endpoint).Msg("GPA calculation request failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", apperrors.ErrNetworkFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("endpoint", c.endpoint).
			Msg("GPA calculation rejected")
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrCalculationFailed, resp.StatusCode)
	}

	var decoded calculateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", apperrors.ErrCalculationFailed, err)
	}
	if decoded.GPA == nil || decoded.WeightedAverage == nil || decoded.TotalCredits == nil {
		return nil, fmt.Errorf("%w: incomplete response", apperrors.ErrCalculationFailed)
	}

	c.logger.Debug().
		Int("courses", len(courses)).
		Dur("latency", time.Since(start)).
		Msg("GPA calculated remotely")

	return &models.GPAResult{
		GPA:             *decoded.GPA,
		WeightedAverage: *decoded.WeightedAverage,
		TotalCredits:    *decoded.TotalCredits,
	}, nil
}
