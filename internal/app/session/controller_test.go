package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/app/presenter"
	"github.com/yigit/gpacalc/internal/app/repositories"
	"github.com/yigit/gpacalc/internal/app/services"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
	"github.com/yigit/gpacalc/internal/pkg/gpaclient"
)

// MockCalculator records the courses it receives
type MockCalculator struct {
	mu        sync.Mutex
	calls     [][]models.Course
	result    *models.GPAResult
	err       error
	calculate func(ctx context.Context, courses []models.Course) (*models.GPAResult, error)
}

func (m *MockCalculator) Calculate(ctx context.Context, courses []models.Course) (*models.GPAResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, courses)
	m.mu.Unlock()
	if m.calculate != nil {
		return m.calculate(ctx, courses)
	}
	return m.result, m.err
}

func (m *MockCalculator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func newTestController(calc gpaclient.Calculator) *Controller {
	store := services.NewCourseStore(repositories.NewCourseRepository(), zerolog.Nop())
	return NewController(store, calc, zerolog.Nop())
}

func form(name, credits, score string) models.CourseInput {
	return models.CourseInput{Name: name, Credits: credits, Score: score}
}

func TestController_SubmitAddsAndClearsForm(t *testing.T) {
	c := newTestController(&MockCalculator{})

	view := c.Submit(form("Algebra", "3", "88"))
	require.NoError(t, view.Err)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Algebra", view.Rows[0].Name)
	assert.Equal(t, presenter.EmptyForm(), view.Form)
}

func TestController_SubmitInvalidKeepsForm(t *testing.T) {
	c := newTestController(&MockCalculator{})

	view := c.Submit(form("Algebra", "0", "88"))
	assert.ErrorIs(t, view.Err, apperrors.ErrInvalidCredits)
	assert.Equal(t, "Credits must be greater than 0", view.ErrorMessage())
	assert.Empty(t, view.Rows)
	assert.Equal(t, "Algebra", view.Form.Name)
	assert.Equal(t, presenter.LabelAdd, view.Form.SubmitLabel)
}

func TestController_EditThenSubmitUpdates(t *testing.T) {
	c := newTestController(&MockCalculator{})
	c.Submit(form("Algebra", "3", "88"))
	id := c.Current().Rows[0].ID

	view := c.Edit(id)
	require.NoError(t, view.Err)
	assert.True(t, view.Form.Editing)
	assert.Equal(t, presenter.LabelUpdate, view.Form.SubmitLabel)
	assert.Equal(t, "88", view.Form.Score)

	// rejected update stays in edit mode
	view = c.Submit(form("Algebra", "3", "101"))
	assert.ErrorIs(t, view.Err, apperrors.ErrInvalidScore)
	assert.Equal(t, presenter.LabelUpdate, view.Form.SubmitLabel)

	view = c.Submit(form("Linear Algebra", "3", "91"))
	require.NoError(t, view.Err)
	assert.Equal(t, presenter.LabelAdd, view.Form.SubmitLabel)
	assert.Equal(t, id, view.Rows[0].ID)
	assert.Equal(t, "Linear Algebra", view.Rows[0].Name)
}

func TestController_DeleteWhileEditing(t *testing.T) {
	c := newTestController(&MockCalculator{})
	c.Submit(form("Algebra", "3", "88"))
	id := c.Current().Rows[0].ID
	c.Edit(id)

	view := c.Delete(id)
	assert.ErrorIs(t, view.Err, apperrors.ErrCannotDeleteWhileEditing)
	assert.Len(t, view.Rows, 1)

	c.Cancel()
	view = c.Delete(id)
	require.NoError(t, view.Err)
	assert.Empty(t, view.Rows)
}

func TestController_EditUnknown(t *testing.T) {
	c := newTestController(&MockCalculator{})

	view := c.Edit("missing")
	assert.ErrorIs(t, view.Err, apperrors.ErrCourseNotFound)
	assert.False(t, view.Form.Editing)
}

func TestController_CalculateEmptySkipsCalculator(t *testing.T) {
	calc := &MockCalculator{}
	c := newTestController(calc)

	view := c.Calculate(context.Background())
	assert.ErrorIs(t, view.Err, apperrors.ErrNoCourses)
	assert.Nil(t, view.Result)

	outcome := <-c.CalculateAsync(context.Background())
	assert.ErrorIs(t, outcome.Err, apperrors.ErrNoCourses)
	assert.Equal(t, 0, calc.Calls())
}

func TestController_CalculateFailureKeepsPreviousResult(t *testing.T) {
	calc := &MockCalculator{result: &models.GPAResult{GPA: 2, WeightedAverage: 70, TotalCredits: 4}}
	c := newTestController(calc)
	c.Submit(form("A", "4", "70"))

	view := c.Calculate(context.Background())
	require.NoError(t, view.Err)
	require.NotNil(t, view.Result)
	assert.Equal(t, "2.00", view.Result.GPA)

	calc.result, calc.err = nil, apperrors.ErrNetworkFailure
	view = c.Calculate(context.Background())
	assert.ErrorIs(t, view.Err, apperrors.ErrNetworkFailure)
	require.NotNil(t, view.Result)
	assert.Equal(t, "2.00", view.Result.GPA)
}

func TestController_CalculateAsyncUsesSnapshot(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	calc := &MockCalculator{
		calculate: func(ctx context.Context, courses []models.Course) (*models.GPAResult, error) {
			close(started)
			<-release
			return &models.GPAResult{GPA: 1, WeightedAverage: 65, TotalCredits: float64(len(courses))}, nil
		},
	}
	c := newTestController(calc)
	c.Submit(form("A", "1", "65"))

	pending := c.CalculateAsync(context.Background())
	<-started

	// mutations stay possible while the calculation is in flight
	view := c.Submit(form("B", "2", "90"))
	require.NoError(t, view.Err)
	assert.Len(t, view.Rows, 2)
	close(release)

	select {
	case outcome := <-pending:
		view = c.Apply(outcome)
	case <-time.After(2 * time.Second):
		t.Fatal("calculation did not finish")
	}
	require.NoError(t, view.Err)
	assert.Equal(t, "1", view.Result.TotalCredits)
	require.Len(t, calc.calls, 1)
	assert.Len(t, calc.calls[0], 1)
}

func TestController_Scenario(t *testing.T) {
	var received dto.CalculateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"gpa": 3.7, "weightedAverage": 91, "totalCredits": 3}`))
	}))
	defer server.Close()

	client := gpaclient.NewClient(server.URL+"/api/calculate", time.Second, zerolog.Nop())
	c := newTestController(client)

	c.Submit(form("Algebra", "3", "88"))
	view := c.Submit(form("History", "2", "75"))
	require.Len(t, view.Rows, 2)
	algebraID, historyID := view.Rows[0].ID, view.Rows[1].ID
	assert.NotEqual(t, algebraID, historyID)

	c.Edit(algebraID)
	view = c.Submit(form("Linear Algebra", "3", "91"))
	require.NoError(t, view.Err)
	assert.Equal(t, "Linear Algebra", view.Rows[0].Name)
	assert.Equal(t, 3.0, view.Rows[0].Credits)
	assert.Equal(t, 91.0, view.Rows[0].Score)
	assert.False(t, view.Form.Editing)

	view = c.Delete(historyID)
	require.NoError(t, view.Err)
	require.Len(t, view.Rows, 1)

	view = c.Calculate(context.Background())
	require.NoError(t, view.Err)
	require.NotNil(t, view.Result)
	assert.Equal(t, []string{
		"GPA: 3.70",
		"Weighted average: 91.00",
		"Total credits: 3",
	}, view.Result.Lines())

	require.Len(t, received.Courses, 1)
	assert.Equal(t, algebraID, received.Courses[0].ID)
	assert.Equal(t, 3.0, *received.Courses[0].Credits)
	assert.Equal(t, 91.0, *received.Courses[0].Score)
}
