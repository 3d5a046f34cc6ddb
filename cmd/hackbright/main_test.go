package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, input string, args ...string) int {
	t.Setenv("HACKBRIGHT_ON_MISSING", "report")

	r, w, err := os.Pipe()
	require.Nil(t, err)
	_, err = w.WriteString(input)
	require.Nil(t, err)
	require.Nil(t, w.Close())

	stdin, argv := os.Stdin, os.Args
	defer func() {
		os.Stdin, os.Args = stdin, argv
		r.Close()
	}()

	os.Stdin = r
	os.Args = append([]string{"hackbright"}, args...)
	flag.CommandLine = flag.NewFlagSet("hackbright", flag.ContinueOnError)

	return run()
}

func TestRunExitStatus(t *testing.T) {
	tests := []struct {
		input  string
		args   []string
		status int
	}{
		{"quit\n", []string{"-driver=memory"}, 0},
		{"student nobody\n", []string{"-driver=memory"}, 0},
		{"student nobody\nquit\n", []string{"-driver=memory", "-on-missing=fail"}, 1},
		{"fly\n", []string{"-driver=memory", "-on-missing=fail"}, 0},
		{"quit\n", []string{"-driver=mysql"}, 1},
	}

	for _, test := range tests {
		assert.Equal(t, test.status, runWith(t, test.input, test.args...), test.input)
	}
}
