package hackbright

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

const Prompt = "HBA Database> "

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

type bufferedLineReader struct {
	reader *bufio.Reader
	out    io.Writer
	prompt string
	done   bool
}

// NewBufferedLineReader reads lines from r, writing prompt to out before
// each one. It serves input that is not a terminal.
func NewBufferedLineReader(r io.Reader, out io.Writer, prompt string) LineReader {
	return &bufferedLineReader{
		reader: bufio.NewReader(r),
		out:    out,
		prompt: prompt,
	}
}

func (br *bufferedLineReader) Readline() (string, error) {
	if br.done {
		return "", io.EOF
	}

	fmt.Fprint(br.out, br.prompt)
	text, err := br.reader.ReadString('\n')
	if err == io.EOF && text != "" {
		br.done = true
		err = nil
	}
	if err != nil {
		return "", err
	}

	return strings.TrimRight(text, "\r\n"), nil
}

// Repl is the command loop. It owns no global state: the gateway, the
// output and the logger are all handed to it.
type Repl struct {
	gateway      Gateway
	out          io.Writer
	logger       *zap.SugaredLogger
	onMissing    MissingPolicy
	queryTimeout time.Duration
}

func NewRepl(g Gateway, out io.Writer, logger *zap.SugaredLogger, cfg *Config) *Repl {
	return &Repl{
		gateway:      g,
		out:          out,
		logger:       withSession(logger),
		onMissing:    cfg.OnMissing,
		queryTimeout: cfg.QueryTimeout,
	}
}

func (r *Repl) printMenu() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Here are your options:")

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Command", "Action", "Requires"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	rows := [][]string{}
	for _, u := range menu {
		rows = append(rows, []string{u.kind.String(), u.action, u.requires})
	}

	table.AppendBulk(rows)
	table.Render()
	fmt.Fprintln(r.out)
}

// Run prompts until quit, end of input, or an interrupt on an empty line.
// It returns a non-nil error only when the missing-row policy is
// FailOnMissing and a lookup came back empty, when reading fails, or when
// ctx is done.
func (r *Repl) Run(ctx context.Context, in LineReader) error {
	r.logger.Debug("starting command loop")

repl:
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.printMenu()
		line, err := in.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue repl
			}
		} else if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(r.out, "Error while reading line:", err)
			return err
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			r.logger.Debugw("rejected input", "line", line, "error", err)
			if errors.Is(err, ErrInvalidEntry) {
				fmt.Fprintln(r.out, "Invalid Entry. Try again.")
			} else {
				fmt.Fprintf(r.out, "%s.\n", err)
			}
			continue repl
		}

		if cmd == nil {
			continue repl
		}

		if cmd.Kind == QuitKind {
			break
		}

		err = r.Execute(ctx, cmd)
		if errors.Is(err, ErrNotFound) && r.onMissing == FailOnMissing {
			return err
		}
	}

	r.logger.Debug("command loop finished")
	return nil
}

// Execute runs one command against the gateway and prints its result.
// Failures are printed as well as returned.
func (r *Repl) Execute(ctx context.Context, cmd *Command) error {
	if r.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.queryTimeout)
		defer cancel()
	}

	r.logger.Debugw("dispatching command", "kind", cmd.Kind)

	switch cmd.Kind {
	case StudentKind:
		github := cmd.StudentCommand.Github
		s, err := r.gateway.FindStudent(ctx, github)
		if err != nil {
			return r.fail(err, "looking up student", fmt.Sprintf("No student found with GitHub account %s.", github))
		}

		fmt.Fprintf(r.out, "Student: %s %s\nGitHub account: %s\n", s.FirstName, s.LastName, s.Github)
	case NewStudentKind:
		s := cmd.NewStudentCommand.Student
		err := r.gateway.InsertStudent(ctx, s)
		if err != nil {
			return r.fail(err, "adding student", "")
		}

		fmt.Fprintf(r.out, "Successfully added student: %s %s\n", s.FirstName, s.LastName)
	case GetProjectKind:
		title := cmd.GetProjectCommand.Title
		p, err := r.gateway.FindProject(ctx, title)
		if err != nil {
			return r.fail(err, "looking up project", fmt.Sprintf("No project found with title %s.", title))
		}

		fmt.Fprintf(r.out, "%s information: %s\n", title, p.Description)
	case GetGradeKind:
		github, title := cmd.GetGradeCommand.Github, cmd.GetGradeCommand.Title
		g, err := r.gateway.FindGrade(ctx, github, title)
		if err != nil {
			return r.fail(err, "looking up grade", fmt.Sprintf("No grade found for %s %s.", github, title))
		}

		fmt.Fprintf(r.out, "The grade for %s %s is: %s.\n", github, title, g.Grade)
	case AssignGradeKind:
		g := cmd.AssignGradeCommand.Grade
		err := r.gateway.InsertGrade(ctx, g)
		if err != nil {
			return r.fail(err, "assigning grade", "")
		}

		fmt.Fprintf(r.out, "Successfully added grade of %s for %s %s.\n", g.Grade, g.StudentGithub, g.ProjectTitle)
	case QuitKind:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidEntry, cmd.Kind)
	}

	return nil
}

func (r *Repl) fail(err error, doing, missing string) error {
	if errors.Is(err, ErrNotFound) && missing != "" {
		r.logger.Debugw("no matching row", "while", doing)
		fmt.Fprintln(r.out, missing)
		return err
	}

	r.logger.Warnw("gateway call failed", "while", doing, "error", err)
	fmt.Fprintf(r.out, "Error %s: %s\n", doing, err)
	return err
}
