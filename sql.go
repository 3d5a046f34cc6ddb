package hackbright

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

//go:embed schema.sql
var schema string

// Dialect selects the placeholder syntax of the store.
type Dialect uint

const (
	PostgresDialect Dialect = iota
	SQLiteDialect
)

// bind rewrites the $N placeholders of query for the dialect.
func (d Dialect) bind(query string) string {
	if d == PostgresDialect {
		return query
	}

	var b strings.Builder
	for i := 0; i < len(query); i++ {
		if query[i] != '$' {
			b.WriteByte(query[i])
			continue
		}

		b.WriteByte('?')
		for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			i++
		}
	}

	return b.String()
}

const (
	findStudentQuery = `
		SELECT first_name, last_name, github
		FROM students
		WHERE github = $1`
	insertStudentQuery = `
		INSERT INTO students (first_name, last_name, github)
			VALUES ($1, $2, $3)`
	findProjectQuery = `
		SELECT title, description
		FROM projects
		WHERE title = $1`
	findGradeQuery = `
		SELECT grade
		FROM grades
		WHERE student_github = $1
			AND project_title = $2`
	insertGradeQuery = `
		INSERT INTO grades (student_github, project_title, grade)
			VALUES ($1, $2, $3)`
)

// SQLGateway runs the gateway statements over a single database/sql
// connection.
type SQLGateway struct {
	db      *sql.DB
	dialect Dialect
}

func dialectFor(driver string) (Dialect, error) {
	switch driver {
	case PostgresDriver:
		return PostgresDialect, nil
	case SQLiteDriver, LibSQLDriver:
		return SQLiteDialect, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
}

// OpenSQLGateway opens and pings the store. Any failure to reach it is
// reported as ErrStoreUnavailable.
func OpenSQLGateway(ctx context.Context, driver, dsn string) (*SQLGateway, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	// SQLite only checks REFERENCES clauses when asked to, per connection.
	if driver == SQLiteDriver {
		_, err = db.ExecContext(ctx, "PRAGMA foreign_keys = ON")
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
		}
	}

	return NewSQLGateway(db, d), nil
}

// NewSQLGateway wraps an already open handle.
func NewSQLGateway(db *sql.DB, d Dialect) *SQLGateway {
	return &SQLGateway{db: db, dialect: d}
}

// DB exposes the handle for statements outside the gateway, such as
// inserting projects.
func (sg *SQLGateway) DB() *sql.DB {
	return sg.db
}

// InitSchema creates the three tables when they are missing.
func (sg *SQLGateway) InitSchema(ctx context.Context) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}

		_, err := sg.db.ExecContext(ctx, stmt)
		if err != nil {
			return err
		}
	}

	return nil
}

func (sg *SQLGateway) queryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return sg.db.QueryRowContext(ctx, sg.dialect.bind(query), args...)
}

func (sg *SQLGateway) exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := sg.db.ExecContext(ctx, sg.dialect.bind(query), args...)
	return constraint(err)
}

// constraint maps driver constraint violations onto ErrDuplicate and
// ErrForeignKey, keeping the driver message.
func constraint(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %s", ErrForeignKey, err)
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%w: %s", ErrDuplicate, err)
		}
	}

	var pe *pq.Error
	if errors.As(err, &pe) {
		switch pe.Code {
		case "23503":
			return fmt.Errorf("%w: %s", ErrForeignKey, err)
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, err)
		}
	}

	return err
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	return err
}

func (sg *SQLGateway) FindStudent(ctx context.Context, github string) (*Student, error) {
	var s Student
	err := sg.queryRow(ctx, findStudentQuery, github).Scan(&s.FirstName, &s.LastName, &s.Github)
	if err != nil {
		return nil, notFound(err)
	}

	return &s, nil
}

func (sg *SQLGateway) InsertStudent(ctx context.Context, s Student) error {
	return sg.exec(ctx, insertStudentQuery, s.FirstName, s.LastName, s.Github)
}

func (sg *SQLGateway) FindProject(ctx context.Context, title string) (*Project, error) {
	var p Project
	var description sql.NullString
	err := sg.queryRow(ctx, findProjectQuery, title).Scan(&p.Title, &description)
	if err != nil {
		return nil, notFound(err)
	}

	p.Description = description.String
	return &p, nil
}

func (sg *SQLGateway) FindGrade(ctx context.Context, github, title string) (*Grade, error) {
	var grade sql.NullString
	err := sg.queryRow(ctx, findGradeQuery, github, title).Scan(&grade)
	if err != nil {
		return nil, notFound(err)
	}

	return &Grade{
		StudentGithub: github,
		ProjectTitle:  title,
		Grade:         grade.String,
	}, nil
}

func (sg *SQLGateway) InsertGrade(ctx context.Context, g Grade) error {
	return sg.exec(ctx, insertGradeQuery, g.StudentGithub, g.ProjectTitle, g.Grade)
}

func (sg *SQLGateway) Close() error {
	return sg.db.Close()
}
