package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yigit/gpacalc/internal/app/presenter"
)

// RenderRows draws the course list as a numbered table. The row being edited is highlighted.
func RenderRows(rows []presenter.RowView, editingID string) string {
	if len(rows) == 0 {
		return Styles.Muted.Render("No courses yet. Use 'add' to enter one.")
	}

	editingRow := -1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Styles.Muted).
		Headers("#", "Course", "Credits", "Score")
	for i, r := range rows {
		if r.ID == editingID {
			editingRow = i
		}
		t.Row(strconv.Itoa(i+1), r.Name, r.CreditsText, r.ScoreText)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return Styles.Header
		case row == editingRow:
			return Styles.Editing
		default:
			return Styles.Cell
		}
	})
	return t.String()
}

// RenderResult draws the labelled result lines in a box
func RenderResult(v presenter.ResultView) string {
	return Styles.ResultBox.Render(strings.Join(v.Lines(), "\n"))
}

// RenderSuccess formats a confirmation
func RenderSuccess(msg string) string {
	return Styles.Success.Render("✓ " + msg)
}

// RenderError formats a user-facing failure message
func RenderError(msg string) string {
	return Styles.Error.Render("✗ " + msg)
}

// RenderFormState describes what the next submission will do
func RenderFormState(f presenter.FormView) string {
	if f.Editing {
		return Styles.Editing.Render("Editing " + f.Name + " (submit to " + strings.ToLower(f.SubmitLabel) + ", 'cancel' to stop)")
	}
	return Styles.Muted.Render("Ready: " + f.SubmitLabel)
}
