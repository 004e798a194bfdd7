package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/app/session"
)

const helpText = `Commands:
  add            enter a course (or submit the edited course)
  edit <n>       load course n into the form
  delete <n>     remove course n
  cancel         stop editing and clear the form
  list           show the courses
  calc           calculate GPA on the server
  help           show this help
  quit           leave the shell`

// Shell is a line-oriented interactive loop over a session controller
type Shell struct {
	ctrl   *session.Controller
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
}

// NewShell creates a shell reading commands from in and writing to out
func NewShell(ctrl *session.Controller, in io.Reader, out io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{
		ctrl:   ctrl,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run processes commands until quit, end of input or ctx cancellation
func (s *Shell) Run(ctx context.Context) error {
	s.println(Styles.Title.Render("GPA calculator"))
	s.println(Styles.Muted.Render("Type 'help' for commands."))

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, ok := s.prompt("> ")
		if !ok {
			return s.in.Err()
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, args := strings.ToLower(fields[0]), fields[1:]
		s.logger.Debug().Str("command", cmd).Strs("args", args).Msg("Shell command")

		switch cmd {
		case "add", "submit":
			if !s.submit() {
				return s.in.Err()
			}
		case "edit":
			if id, ok := s.rowID(args); ok {
				s.show(s.ctrl.Edit(id))
			}
		case "delete", "rm":
			if id, ok := s.rowID(args); ok {
				s.show(s.ctrl.Delete(id))
			}
		case "cancel":
			s.show(s.ctrl.Cancel())
		case "list", "ls":
			s.show(s.ctrl.Current())
		case "calc", "calculate":
			s.calculate(ctx)
		case "help", "?":
			s.println(helpText)
		case "quit", "exit", "q":
			return nil
		default:
			s.println(RenderError(fmt.Sprintf("Unknown command %q, type 'help'", cmd)))
		}
	}
}

// submit prompts the three form fields. An empty answer keeps the value shown in brackets.
// Returns false when input ended mid-form.
func (s *Shell) submit() bool {
	form := s.ctrl.Form()
	in := models.CourseInput{Name: form.Name, Credits: form.Credits, Score: form.Score}

	for _, f := range []struct {
		label string
		value *string
	}{
		{"Course name", &in.Name},
		{"Credits", &in.Credits},
		{"Score", &in.Score},
	} {
		answer, ok := s.prompt(fieldPrompt(f.label, *f.value))
		if !ok {
			return false
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			*f.value = answer
		}
	}

	action := "added"
	if form.Editing {
		action = "updated"
	}
	view := s.ctrl.Submit(in)
	s.show(view)
	if view.Err == nil {
		s.println(RenderSuccess("Course " + action))
	}
	return true
}

func (s *Shell) calculate(ctx context.Context) {
	s.println(Styles.Muted.Render("Calculating..."))
	select {
	case outcome := <-s.ctrl.CalculateAsync(ctx):
		view := s.ctrl.Apply(outcome)
		if view.Err != nil {
			s.println(RenderError(view.ErrorMessage()))
			return
		}
		s.println(RenderResult(*view.Result))
	case <-ctx.Done():
		s.println(RenderError("Calculation cancelled"))
	}
}

// rowID resolves a 1-based row number argument to the course ID shown in that row
func (s *Shell) rowID(args []string) (string, bool) {
	if len(args) != 1 {
		s.println(RenderError("Expected a row number, see 'list'"))
		return "", false
	}
	n, err := strconv.Atoi(args[0])
	rows := s.ctrl.Rows()
	if err != nil || n < 1 || n > len(rows) {
		s.println(RenderError(fmt.Sprintf("No course #%s", args[0])))
		return "", false
	}
	return rows[n-1].ID, true
}

func (s *Shell) show(view session.View) {
	s.println(RenderRows(view.Rows, view.Form.EditingID))
	if view.Err != nil {
		s.println(RenderError(view.ErrorMessage()))
	}
	s.println(RenderFormState(view.Form))
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, Styles.Prompt.Render(label))
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func fieldPrompt(label, current string) string {
	if current == "" {
		return label + ": "
	}
	return fmt.Sprintf("%s [%s]: ", label, current)
}
