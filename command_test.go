package hackbright

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		source  string
		command *Command
	}{
		{
			source: "student jhacks",
			command: &Command{
				Kind:           StudentKind,
				StudentCommand: &StudentCommand{Github: "jhacks"},
			},
		},
		{
			source: "  new_student   Jane Hacker   jhacks ",
			command: &Command{
				Kind: NewStudentKind,
				NewStudentCommand: &NewStudentCommand{
					Student: Student{FirstName: "Jane", LastName: "Hacker", Github: "jhacks"},
				},
			},
		},
		{
			source: "get_project Markov Madlibs",
			command: &Command{
				Kind:              GetProjectKind,
				GetProjectCommand: &GetProjectCommand{Title: "Markov Madlibs"},
			},
		},
		{
			source: "get_project Blockly",
			command: &Command{
				Kind:              GetProjectKind,
				GetProjectCommand: &GetProjectCommand{Title: "Blockly"},
			},
		},
		{
			source: "get_grade jhacks Markov Madlibs",
			command: &Command{
				Kind:            GetGradeKind,
				GetGradeCommand: &GetGradeCommand{Github: "jhacks", Title: "Markov Madlibs"},
			},
		},
		{
			source: "assign_grade jhacks Blockly 10",
			command: &Command{
				Kind: AssignGradeKind,
				AssignGradeCommand: &AssignGradeCommand{
					Grade: Grade{StudentGithub: "jhacks", ProjectTitle: "Blockly", Grade: "10"},
				},
			},
		},
		{
			source: "assign_grade jhacks Markov Madlibs 98",
			command: &Command{
				Kind: AssignGradeKind,
				AssignGradeCommand: &AssignGradeCommand{
					Grade: Grade{StudentGithub: "jhacks", ProjectTitle: "Markov Madlibs", Grade: "98"},
				},
			},
		},
		{
			source:  "quit",
			command: &Command{Kind: QuitKind},
		},
		{
			source:  "quit now please",
			command: &Command{Kind: QuitKind},
		},
	}

	for _, test := range tests {
		command, err := ParseCommand(test.source)
		assert.Nil(t, err, test.source)
		assert.Equal(t, test.command, command, test.source)
	}
}

func TestParseCommandBlank(t *testing.T) {
	for _, source := range []string{"", "   ", "\t"} {
		command, err := ParseCommand(source)
		assert.Nil(t, err)
		assert.Nil(t, command)
	}
}

func TestParseCommandInvalidEntry(t *testing.T) {
	for _, source := range []string{"fly", "Student jhacks", "QUIT", "exit"} {
		command, err := ParseCommand(source)
		assert.Nil(t, command, source)
		assert.ErrorIs(t, err, ErrInvalidEntry, source)
	}
}

func TestParseCommandInvalidArguments(t *testing.T) {
	tests := []struct {
		source  string
		message string
	}{
		{"student", "Invalid arguments for student: requires github"},
		{"student jhacks extra", "Invalid arguments for student: requires github"},
		{"new_student Jane jhacks", "Invalid arguments for new_student: requires first_name, last_name, github"},
		{"new_student Jane Q Hacker jhacks", "Invalid arguments for new_student: requires first_name, last_name, github"},
		{"get_project", "Invalid arguments for get_project: requires project_title"},
		{"get_grade jhacks", "Invalid arguments for get_grade: requires github, project_title"},
		{"assign_grade jhacks Blockly", "Invalid arguments for assign_grade: requires github, project_title, grade"},
	}

	for _, test := range tests {
		command, err := ParseCommand(test.source)
		assert.Nil(t, command, test.source)
		assert.ErrorIs(t, err, ErrInvalidArguments, test.source)
		assert.EqualError(t, err, test.message, test.source)
	}
}

func TestCommandKind_String(t *testing.T) {
	tests := []struct {
		result string
		kind   CommandKind
	}{
		{"student", StudentKind},
		{"new_student", NewStudentKind},
		{"get_project", GetProjectKind},
		{"get_grade", GetGradeKind},
		{"assign_grade", AssignGradeKind},
		{"quit", QuitKind},
		{"?unknown?", CommandKind(42)},
	}

	for _, test := range tests {
		assert.Equal(t, test.result, test.kind.String())
	}
}
