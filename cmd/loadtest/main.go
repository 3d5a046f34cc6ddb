package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/eatonphil/hackbright"
)

var inserts = 1000
var lastGithub = ""
var firstGithub = ""

const project = "Markov Madlibs"

func doInsert(g hackbright.Gateway) {
	ctx := context.Background()
	source := rand.NewSource(time.Now().UnixNano())
	r := rand.New(source)
	for i := 0; i < inserts; i++ {
		lastGithub = fmt.Sprintf("student%d", i)
		if i == 0 {
			firstGithub = lastGithub
		}

		err := g.InsertStudent(ctx, hackbright.Student{
			FirstName: "Jane",
			LastName:  fmt.Sprintf("Hacker%d", i),
			Github:    lastGithub,
		})
		if err != nil {
			panic(err)
		}

		err = g.InsertGrade(ctx, hackbright.Grade{
			StudentGithub: lastGithub,
			ProjectTitle:  project,
			Grade:         strconv.Itoa(r.Intn(100)),
		})
		if err != nil {
			panic(err)
		}
	}
}

func doSelect(g hackbright.Gateway) {
	ctx := context.Background()
	for _, github := range []string{firstGithub, lastGithub} {
		s, err := g.FindStudent(ctx, github)
		if err != nil {
			panic(err)
		}

		if s.Github != github {
			panic(fmt.Sprintf("Bad row, got: %s", s.Github))
		}

		_, err = g.FindGrade(ctx, github, project)
		if err != nil {
			panic(err)
		}
	}
}

func perf(name string, g hackbright.Gateway, cb func(g hackbright.Gateway)) {
	start := time.Now()
	fmt.Println("Starting", name)
	cb(g)
	fmt.Printf("Finished %s: %f seconds\n", name, time.Since(start).Seconds())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("Alloc = %d MiB\n\n", m.Alloc/1024/1024)
}

func main() {
	ctx := context.Background()
	driver := hackbright.MemoryDriver

	for i, arg := range os.Args {
		if arg == "--sqlite" {
			driver = hackbright.SQLiteDriver
		}

		if arg == "--inserts" && i+1 < len(os.Args) {
			n, err := strconv.Atoi(os.Args[i+1])
			if err == nil && n > 0 {
				inserts = n
			}
		}
	}

	var g hackbright.Gateway
	if driver == hackbright.SQLiteDriver {
		dir, err := os.MkdirTemp("", "hackbright-loadtest")
		if err != nil {
			panic(err)
		}
		defer os.RemoveAll(dir)

		sg, err := hackbright.OpenSQLGateway(ctx, driver, filepath.Join(dir, "loadtest.db"))
		if err != nil {
			panic(err)
		}

		err = sg.InitSchema(ctx)
		if err != nil {
			panic(err)
		}

		_, err = sg.DB().ExecContext(ctx, "INSERT INTO projects (title, description) VALUES (?, ?)", project, "Generate random text")
		if err != nil {
			panic(err)
		}
		g = sg
	} else {
		mg := hackbright.NewMemoryGateway()
		err := mg.AddProject(hackbright.Project{Title: project, Description: "Generate random text"})
		if err != nil {
			panic(err)
		}
		g = mg
	}
	defer g.Close()

	fmt.Printf("Inserting %d students and grades into the %s store\n", inserts, driver)

	perf("INSERT", g, doInsert)
	perf("SELECT", g, doSelect)
}
