// Package session wires user events to the course store, the GPA client and the presenter.
package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/app/presenter"
	"github.com/yigit/gpacalc/internal/app/services"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
	"github.com/yigit/gpacalc/internal/pkg/gpaclient"
)

// View is everything the UI needs to redraw after an event
type View struct {
	Rows   []presenter.RowView
	Form   presenter.FormView
	Result *presenter.ResultView
	// Err is the failure of the last event, if any. The session stays usable after any error.
	Err error
}

// ErrorMessage returns the user-facing text for Err
func (v View) ErrorMessage() string {
	return apperrors.UserMessage(v.Err)
}

// CalculationOutcome is delivered by CalculateAsync
type CalculationOutcome struct {
	Result *models.GPAResult
	Err    error
}

// Controller handles UI events for one session. Its methods must be called from a single
// goroutine; only the network part of a calculation runs elsewhere.
type Controller struct {
	store  services.CourseStore
	calc   gpaclient.Calculator
	logger zerolog.Logger

	form   presenter.FormView
	result *presenter.ResultView
}

// NewController creates a Controller over an owned store and a calculator
func NewController(store services.CourseStore, calc gpaclient.Calculator, logger zerolog.Logger) *Controller {
	return &Controller{
		store:  store,
		calc:   calc,
		logger: logger,
		form:   presenter.EmptyForm(),
	}
}

// Current re-renders the current state without changing it
func (c *Controller) Current() View {
	return c.render(nil)
}

// Submit adds a course when idle or updates the edited course when editing.
// On success the form is cleared; on failure the typed values stay in the form.
func (c *Controller) Submit(in models.CourseInput) View {
	var err error
	if c.store.Mode() == services.ModeEditing {
		_, err = c.store.Update(in)
	} else {
		_, err = c.store.Add(in)
	}

	if err != nil {
		editingID, _ := c.store.EditingID()
		c.form = presenter.KeepForm(in, editingID)
		return c.render(err)
	}

	c.form = presenter.EmptyForm()
	return c.render(nil)
}

// Edit starts editing the course with the given ID and pre-fills the form
func (c *Controller) Edit(id string) View {
	course, err := c.store.BeginEdit(id)
	if err != nil {
		return c.render(err)
	}
	c.form = presenter.EditForm(course)
	return c.render(nil)
}

// Delete removes the course with the given ID
func (c *Controller) Delete(id string) View {
	_, err := c.store.Remove(id)
	return c.render(err)
}

// Cancel leaves edit mode and clears the form
func (c *Controller) Cancel() View {
	c.store.CancelEdit()
	c.form = presenter.EmptyForm()
	return c.render(nil)
}

// Rows renders the course list
func (c *Controller) Rows() []presenter.RowView {
	return presenter.Render(c.store.List())
}

// Form returns the current form state
func (c *Controller) Form() presenter.FormView {
	return c.form
}

// Calculate sends the current courses to the calculator and displays the result.
// An empty list fails with ErrNoCourses without contacting the calculator.
func (c *Controller) Calculate(ctx context.Context) View {
	snapshot := c.store.List()
	if len(snapshot) == 0 {
		return c.render(apperrors.ErrNoCourses)
	}
	res, err := c.calc.Calculate(ctx, snapshot)
	return c.Apply(CalculationOutcome{Result: res, Err: err})
}

// CalculateAsync takes a snapshot of the courses now and calculates on another goroutine.
// Later edits do not affect the in-flight calculation. Calls are not de-duplicated.
// The outcome must be passed to Apply on the controller's goroutine.
func (c *Controller) CalculateAsync(ctx context.Context) <-chan CalculationOutcome {
	out := make(chan CalculationOutcome, 1)
	snapshot := c.store.List()
	if len(snapshot) == 0 {
		out <- CalculationOutcome{Err: apperrors.ErrNoCourses}
		close(out)
		return out
	}

	go func() {
		defer close(out)
		res, err := c.calc.Calculate(ctx, snapshot)
		out <- CalculationOutcome{Result: res, Err: err}
	}()
	return out
}

// Apply displays a calculation outcome. A failed calculation keeps the previous result.
func (c *Controller) Apply(outcome CalculationOutcome) View {
	if outcome.Err != nil {
		c.logger.Debug().Err(outcome.Err).Msg("GPA calculation failed")
		return c.render(outcome.Err)
	}
	if outcome.Result == nil {
		return c.render(apperrors.ErrCalculationFailed)
	}
	view := presenter.RenderResult(*outcome.Result)
	c.result = &view
	return c.render(nil)
}

func (c *Controller) render(err error) View {
	return View{
		Rows:   c.Rows(),
		Form:   c.form,
		Result: c.result,
		Err:    err,
	}
}
