package main

import (
	"context"
	"os"

	"github.com/eatonphil/hackbright"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	mg := hackbright.NewMemoryGateway()

	err := mg.AddProject(hackbright.Project{Title: "Markov Madlibs", Description: "Tweets generated from Markov chains"})
	if err != nil {
		panic(err)
	}

	repl := hackbright.NewRepl(mg, os.Stdout, zap.NewNop().Sugar(), hackbright.DefaultConfig())
	for _, line := range []string{
		"new_student Jane Hacker jhacks",
		"student jhacks",
		"get_project Markov Madlibs",
		"assign_grade jhacks Markov Madlibs 98",
		"get_grade jhacks Markov Madlibs",
	} {
		cmd, err := hackbright.ParseCommand(line)
		if err != nil {
			panic(err)
		}

		err = repl.Execute(ctx, cmd)
		if err != nil {
			panic(err)
		}
	}
}
