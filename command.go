package hackbright

import (
	"fmt"
	"strings"
)

// for storing the recognized command tokens
type keyword string

const (
	studentKeyword     keyword = "student"
	newStudentKeyword  keyword = "new_student"
	getProjectKeyword  keyword = "get_project"
	getGradeKeyword    keyword = "get_grade"
	assignGradeKeyword keyword = "assign_grade"
	quitKeyword        keyword = "quit"
)

type CommandKind uint

const (
	StudentKind CommandKind = iota
	NewStudentKind
	GetProjectKind
	GetGradeKind
	AssignGradeKind
	QuitKind
)

func (k CommandKind) String() string {
	switch k {
	case StudentKind:
		return string(studentKeyword)
	case NewStudentKind:
		return string(newStudentKeyword)
	case GetProjectKind:
		return string(getProjectKeyword)
	case GetGradeKind:
		return string(getGradeKeyword)
	case AssignGradeKind:
		return string(assignGradeKeyword)
	case QuitKind:
		return string(quitKeyword)
	default:
		return "?unknown?"
	}
}

type StudentCommand struct {
	Github string
}

type NewStudentCommand struct {
	Student Student
}

type GetProjectCommand struct {
	Title string
}

type GetGradeCommand struct {
	Github string
	Title  string
}

type AssignGradeCommand struct {
	Grade Grade
}

// Command is one parsed line of input. Exactly one of the payload fields
// is set, selected by Kind; QuitKind carries none.
type Command struct {
	StudentCommand     *StudentCommand
	NewStudentCommand  *NewStudentCommand
	GetProjectCommand  *GetProjectCommand
	GetGradeCommand    *GetGradeCommand
	AssignGradeCommand *AssignGradeCommand
	Kind               CommandKind
}

type usage struct {
	kind     CommandKind
	action   string
	requires string
}

// menu lists the commands in the order they are offered to the user.
var menu = []usage{
	{StudentKind, "Look up student info with github", "github"},
	{NewStudentKind, "add a new student", "first_name, last_name, github"},
	{GetProjectKind, "get description of project", "project_title"},
	{GetGradeKind, "see grade for student's project", "github, project_title"},
	{AssignGradeKind, "log a student's grade", "github, project_title, grade"},
	{QuitKind, "You can probably figure this out", ""},
}

func requires(kind CommandKind) string {
	for _, u := range menu {
		if u.kind == kind {
			return u.requires
		}
	}

	return ""
}

func invalidArguments(kind CommandKind) error {
	return fmt.Errorf("%w for %s: requires %s", ErrInvalidArguments, kind, requires(kind))
}

// ParseCommand splits line on whitespace and maps the first token to a
// command. A blank line returns a nil command and no error.
func ParseCommand(line string) (*Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, nil
	}

	args := tokens[1:]
	switch keyword(tokens[0]) {
	case studentKeyword:
		if len(args) != 1 {
			return nil, invalidArguments(StudentKind)
		}

		return &Command{
			Kind:           StudentKind,
			StudentCommand: &StudentCommand{Github: args[0]},
		}, nil
	case newStudentKeyword:
		if len(args) != 3 {
			return nil, invalidArguments(NewStudentKind)
		}

		return &Command{
			Kind: NewStudentKind,
			NewStudentCommand: &NewStudentCommand{
				Student: Student{
					FirstName: args[0],
					LastName:  args[1],
					Github:    args[2],
				},
			},
		}, nil
	case getProjectKeyword:
		if len(args) < 1 {
			return nil, invalidArguments(GetProjectKind)
		}

		return &Command{
			Kind:              GetProjectKind,
			GetProjectCommand: &GetProjectCommand{Title: strings.Join(args, " ")},
		}, nil
	case getGradeKeyword:
		if len(args) < 2 {
			return nil, invalidArguments(GetGradeKind)
		}

		return &Command{
			Kind: GetGradeKind,
			GetGradeCommand: &GetGradeCommand{
				Github: args[0],
				Title:  strings.Join(args[1:], " "),
			},
		}, nil
	case assignGradeKeyword:
		if len(args) < 3 {
			return nil, invalidArguments(AssignGradeKind)
		}

		// The title sits between the handle and the score.
		last := len(args) - 1
		return &Command{
			Kind: AssignGradeKind,
			AssignGradeCommand: &AssignGradeCommand{
				Grade: Grade{
					StudentGithub: args[0],
					ProjectTitle:  strings.Join(args[1:last], " "),
					Grade:         args[last],
				},
			},
		}, nil
	case quitKeyword:
		return &Command{Kind: QuitKind}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidEntry, tokens[0])
}
