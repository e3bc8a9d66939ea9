// qtest runs queue commands from a file or standard input.
//
// Settings are read from the environment, optionally loaded from a .env file in the
// working directory:
//
//	QTEST_TIME_LIMIT        time limit per operation, as a Go duration ("1s", "0" disables)
//	QTEST_FAIL_PROBABILITY  percent of allocations to refuse
//	QTEST_LOG_LEVEL         debug, info, warn or error
//	ENV                     "development" selects the console log handler
//
// The exit status is 1 when any command failed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/arloliu/go-strqueue/logger"
	"github.com/arloliu/go-strqueue/qtest"
)

func main() {
	os.Exit(run())
}

func run() int {
	file := flag.String("f", "", "read commands from `file` instead of standard input")
	verbose := flag.Bool("v", false, "enable debug logging")
	echo := flag.Bool("e", false, "echo commands")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		return 1
	}

	level, err := logger.ParseLevel(os.Getenv("QTEST_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	if *verbose {
		level = logger.DebugLevel
	}
	log := logger.NewSlogWriter(os.Stderr, level, false)
	logger.SetLogger(log)

	opts := []qtest.ConfigOption{
		qtest.WithLogger(log),
		qtest.WithOutput(os.Stdout),
		qtest.WithEcho(*echo || *file != ""),
	}

	if val := os.Getenv("QTEST_TIME_LIMIT"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Error("invalid QTEST_TIME_LIMIT", "value", val, "error", err)
			return 1
		}
		opts = append(opts, qtest.WithTimeLimit(d))
	}

	if val := os.Getenv("QTEST_FAIL_PROBABILITY"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			log.Error("invalid QTEST_FAIL_PROBABILITY", "value", val, "error", err)
			return 1
		}
		opts = append(opts, qtest.WithFailProbability(n))
	}

	cfg, err := qtest.NewConfig(opts...)
	if err != nil {
		log.Error("failed to create config", "error", err)
		return 1
	}

	console, err := qtest.NewConsole(cfg)
	if err != nil {
		log.Error("failed to create console", "error", err)
		return 1
	}

	var input io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Error("failed to open command file", "file", *file, "error", err)
			return 1
		}
		defer f.Close()
		input = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := console.Run(ctx, input); err != nil {
		log.Error("qtest failed", "error", err)
		return 1
	}

	return 0
}
