package hackbright

import (
	"context"
	"fmt"

	"github.com/petar/GoLLRB/llrb"
)

type studentItem Student

func (si studentItem) Less(than llrb.Item) bool {
	return si.Github < than.(studentItem).Github
}

type projectItem Project

func (pi projectItem) Less(than llrb.Item) bool {
	return pi.Title < than.(projectItem).Title
}

// gradeItem orders by (student, project, insertion order) so that repeated
// assignments are all kept and the earliest one sorts first.
type gradeItem struct {
	grade Grade
	seq   uint64
}

func (gi gradeItem) Less(than llrb.Item) bool {
	other := than.(gradeItem)
	if gi.grade.StudentGithub != other.grade.StudentGithub {
		return gi.grade.StudentGithub < other.grade.StudentGithub
	}

	if gi.grade.ProjectTitle != other.grade.ProjectTitle {
		return gi.grade.ProjectTitle < other.grade.ProjectTitle
	}

	return gi.seq < other.seq
}

// MemoryGateway keeps every table in an LLRB tree. It is not persisted and
// not safe for concurrent use.
type MemoryGateway struct {
	students *llrb.LLRB
	projects *llrb.LLRB
	grades   *llrb.LLRB
	seq      uint64
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		students: llrb.New(),
		projects: llrb.New(),
		grades:   llrb.New(),
	}
}

func (mg *MemoryGateway) FindStudent(_ context.Context, github string) (*Student, error) {
	item := mg.students.Get(studentItem{Github: github})
	if item == nil {
		return nil, ErrNotFound
	}

	s := Student(item.(studentItem))
	return &s, nil
}

func (mg *MemoryGateway) InsertStudent(_ context.Context, s Student) error {
	if mg.students.Has(studentItem{Github: s.Github}) {
		return fmt.Errorf("%w: students.github = %s", ErrDuplicate, s.Github)
	}

	mg.students.InsertNoReplace(studentItem(s))
	return nil
}

// AddProject stores a project. The command loop never creates projects;
// this stands in for inserting them directly into the database.
func (mg *MemoryGateway) AddProject(p Project) error {
	if mg.projects.Has(projectItem{Title: p.Title}) {
		return fmt.Errorf("%w: projects.title = %s", ErrDuplicate, p.Title)
	}

	mg.projects.InsertNoReplace(projectItem(p))
	return nil
}

func (mg *MemoryGateway) FindProject(_ context.Context, title string) (*Project, error) {
	item := mg.projects.Get(projectItem{Title: title})
	if item == nil {
		return nil, ErrNotFound
	}

	p := Project(item.(projectItem))
	return &p, nil
}

func (mg *MemoryGateway) FindGrade(_ context.Context, github, title string) (*Grade, error) {
	var found *Grade
	pivot := gradeItem{grade: Grade{StudentGithub: github, ProjectTitle: title}}
	mg.grades.AscendGreaterOrEqual(pivot, func(i llrb.Item) bool {
		gi := i.(gradeItem)
		if gi.grade.StudentGithub == github && gi.grade.ProjectTitle == title {
			g := gi.grade
			found = &g
		}

		return false
	})

	if found == nil {
		return nil, ErrNotFound
	}

	return found, nil
}

func (mg *MemoryGateway) InsertGrade(_ context.Context, g Grade) error {
	if !mg.students.Has(studentItem{Github: g.StudentGithub}) {
		return fmt.Errorf("%w: grades.student_github = %s", ErrForeignKey, g.StudentGithub)
	}

	if !mg.projects.Has(projectItem{Title: g.ProjectTitle}) {
		return fmt.Errorf("%w: grades.project_title = %s", ErrForeignKey, g.ProjectTitle)
	}

	// Sequence numbers start at 1 so the lookup pivot (seq 0) sorts first.
	mg.seq++
	mg.grades.InsertNoReplace(gradeItem{grade: g, seq: mg.seq})
	return nil
}

func (mg *MemoryGateway) Close() error {
	return nil
}
