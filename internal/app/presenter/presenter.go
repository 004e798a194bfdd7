// Package presenter projects course list state into views for the UI.
// Every function is a pure projection of its arguments.
package presenter

import (
	"fmt"

	"github.com/yigit/gpacalc/internal/app/models"
)

// Submit button labels
const (
	LabelAdd    = "Add course"
	LabelUpdate = "Update course"
)

// ActionKind names a per-row affordance
type ActionKind string

const (
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
)

// Action is a row affordance keyed by the course ID
type Action struct {
	Kind     ActionKind `json:"kind"`
	CourseID string     `json:"courseId"`
}

// RowView is one rendered course row
type RowView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Credits     float64 `json:"credits"`
	Score       float64 `json:"score"`
	CreditsText string  `json:"creditsText"`
	ScoreText   string  `json:"scoreText"`
	Edit        Action  `json:"edit"`
	Delete      Action  `json:"delete"`
}

// FormView is the state of the three-field course form and its submit button
type FormView struct {
	Name        string `json:"name"`
	Credits     string `json:"credits"`
	Score       string `json:"score"`
	Editing     bool   `json:"editing"`
	EditingID   string `json:"editingId,omitempty"`
	SubmitLabel string `json:"submitLabel"`
}

// ResultView holds display strings for a calculation result
type ResultView struct {
	GPA             string `json:"gpa"`
	WeightedAverage string `json:"weightedAverage"`
	TotalCredits    string `json:"totalCredits"`
}

// Render returns one row per course in collection order. An empty collection renders no rows.
func Render(courses []models.Course) []RowView {
	rows := make([]RowView, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, RowView{
			ID:          c.ID,
			Name:        c.Name,
			Credits:     c.Credits,
			Score:       c.Score,
			CreditsText: models.FormatNumber(c.Credits),
			ScoreText:   models.FormatNumber(c.Score),
			Edit:        Action{Kind: ActionEdit, CourseID: c.ID},
			Delete:      Action{Kind: ActionDelete, CourseID: c.ID},
		})
	}
	return rows
}

// EmptyForm is the cleared form shown when no course is being edited
func EmptyForm() FormView {
	return FormView{SubmitLabel: LabelAdd}
}

// EditForm is the form pre-filled with the course being edited
func EditForm(course models.Course) FormView {
	in := course.Input()
	return FormView{
		Name:        in.Name,
		Credits:     in.Credits,
		Score:       in.Score,
		Editing:     true,
		EditingID:   course.ID,
		SubmitLabel: LabelUpdate,
	}
}

// KeepForm shows the values the user typed, with the label for the current mode.
// Used after a rejected submission so the user can correct the input.
func KeepForm(in models.CourseInput, editingID string) FormView {
	f := FormView{
		Name:        in.Name,
		Credits:     in.Credits,
		Score:       in.Score,
		SubmitLabel: LabelAdd,
	}
	if editingID != "" {
		f.Editing = true
		f.EditingID = editingID
		f.SubmitLabel = LabelUpdate
	}
	return f
}

// RenderResult formats the GPA and weighted average to two decimals and prints total credits as is
func RenderResult(r models.GPAResult) ResultView {
	return ResultView{
		GPA:             fmt.Sprintf("%.2f", r.GPA),
		WeightedAverage: fmt.Sprintf("%.2f", r.WeightedAverage),
		TotalCredits:    models.FormatNumber(r.TotalCredits),
	}
}

// Lines returns the result as labelled display lines
func (v ResultView) Lines() []string {
	return []string{
		"GPA: " + v.GPA,
		"Weighted average: " + v.WeightedAverage,
		"Total credits: " + v.TotalCredits,
	}
}
