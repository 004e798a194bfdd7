package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/app/session"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// ParseCourseArg parses "Name:credits:score". The name may itself contain colons.
func ParseCourseArg(arg string) (models.CourseInput, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 3 {
		return models.CourseInput{}, apperrors.NewBadRequestError(
			fmt.Sprintf("course %q must look like Name:credits:score", arg))
	}
	n := len(parts)
	return models.CourseInput{
		Name:    strings.Join(parts[:n-2], ":"),
		Credits: parts[n-2],
		Score:   parts[n-1],
	}, nil
}

// RunCalc adds every course through the controller and prints the calculated result.
// The first rejected course stops the run.
func RunCalc(ctx context.Context, ctrl *session.Controller, args []string, out io.Writer) error {
	for i, arg := range args {
		in, err := ParseCourseArg(arg)
		if err != nil {
			return err
		}
		if view := ctrl.Submit(in); view.Err != nil {
			return fmt.Errorf("course %d (%s): %s: %w", i+1, arg, view.ErrorMessage(), view.Err)
		}
	}

	view := ctrl.Calculate(ctx)
	fmt.Fprintln(out, RenderRows(view.Rows, ""))
	if view.Err != nil {
		return fmt.Errorf("%s: %w", view.ErrorMessage(), view.Err)
	}
	fmt.Fprintln(out, RenderResult(*view.Result))
	return nil
}
