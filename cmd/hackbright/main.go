package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/eatonphil/hackbright"
)

func main() {
	os.Exit(run())
}

// run returns the exit status so that every deferred cleanup happens
// before the process exits.
func run() int {
	cfg := hackbright.DefaultConfig().FromEnv()

	flag.StringVar(&cfg.Driver, "driver", cfg.Driver, "Store driver (postgres, sqlite, libsql, memory)")
	flag.StringVar(&cfg.DSN, "dsn", cfg.DSN, "Connection string for the store")
	flag.BoolVar(&cfg.InitSchema, "init-schema", cfg.InitSchema, "Create the students, projects and grades tables if missing")
	flag.Func("on-missing", "What to do when a lookup finds nothing (report, fail)", func(s string) error {
		cfg.OnMissing = hackbright.MissingPolicy(s)
		return nil
	})
	flag.DurationVar(&cfg.QueryTimeout, "query-timeout", cfg.QueryTimeout, "Deadline for each command, 0 for none")
	flag.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "Readline history file")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Diagnostic log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Diagnostic log destination (stderr, stdout or a path)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		flag.PrintDefaults()
		return 1
	}

	logger, err := hackbright.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %s\n", err)
		return 1
	}
	defer logger.Sync()

	interactive := readline.IsTerminal(int(os.Stdin.Fd()))

	// Piped input keeps the default signal behavior: a blocked read cannot
	// observe cancellation, so catching SIGINT there would only delay exit
	// until the next line arrives.
	ctx := context.Background()
	if interactive {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
	}

	gateway, err := hackbright.OpenGateway(ctx, cfg)
	if err != nil {
		logger.Errorw("could not open store", "driver", cfg.Driver, "error", err)
		fmt.Fprintf(os.Stderr, "Error opening %s store: %s\n", cfg.Driver, err)
		return 1
	}
	defer gateway.Close()

	var in hackbright.LineReader
	if interactive {
		l, err := readline.NewEx(&readline.Config{
			Prompt:          hackbright.Prompt,
			HistoryFile:     cfg.HistoryFile,
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting line editor: %s\n", err)
			return 1
		}
		defer l.Close()
		in = l
	} else {
		in = hackbright.NewBufferedLineReader(os.Stdin, os.Stdout, hackbright.Prompt)
	}

	repl := hackbright.NewRepl(gateway, os.Stdout, logger, cfg)
	err = repl.Run(ctx, in)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorw("command loop stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	return 0
}
