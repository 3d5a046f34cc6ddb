package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eatonphil/hackbright"
	_ "modernc.org/sqlite"
)

func main() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "hackbright-sqlexample")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	db, err := sql.Open("sqlite", filepath.Join(dir, "hackbright.db"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	g := hackbright.NewSQLGateway(db, hackbright.SQLiteDialect)
	err = g.InitSchema(ctx)
	if err != nil {
		panic(err)
	}

	_, err = db.ExecContext(ctx, "INSERT INTO projects VALUES ('Blockly', 'Programmatic Logic Puzzle Game');")
	if err != nil {
		panic(err)
	}

	err = g.InsertStudent(ctx, hackbright.Student{FirstName: "Terry", LastName: "Doe", Github: "terryd"})
	if err != nil {
		panic(err)
	}

	err = g.InsertGrade(ctx, hackbright.Grade{StudentGithub: "terryd", ProjectTitle: "Blockly", Grade: "45"})
	if err != nil {
		panic(err)
	}

	rows, err := db.QueryContext(ctx, "SELECT student_github, project_title, grade FROM grades;")
	if err != nil {
		panic(err)
	}

	var github, title string
	var grade int64
	defer rows.Close()
	for rows.Next() {
		err := rows.Scan(&github, &title, &grade)
		if err != nil {
			panic(err)
		}

		fmt.Printf("GitHub: %s, Project: %s, Grade: %d\n", github, title, grade)
	}

	if err = rows.Err(); err != nil {
		panic(err)
	}
}
