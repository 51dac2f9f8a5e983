// Command ringtour solves a robot tour on a circular board and prints the
// path found by each requested strategy.
//
// Usage:
//
//	ringtour [-config problem.yaml] [-lowest N] [-highest N] [-initial N]
//	         [-points "a,b,c"] [-strategies "heuristic,permutation"]
//	         [-format text|json] [-log-level info] [-log-format text|json]
//
// Flags override values read from -config; without either the classic demo
// instance is solved. Exit status is 1 for rejected input and 2 for usage or
// configuration errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/ringtour/config"
	"github.com/katalvlaran/ringtour/report"
	"github.com/katalvlaran/ringtour/tour"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process: it parses args, solves and writes the
// report to stdout, diagnostics to stderr, and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ringtour", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML problem file")
		lowest     = fs.Int("lowest", 0, "lowest point of the board")
		highest    = fs.Int("highest", 0, "highest point of the board")
		initial    = fs.Int("initial", 0, "first contact point")
		points     = fs.String("points", "", "points to visit, comma separated")
		strategies = fs.String("strategies", "", "strategies to run: heuristic, permutation, heldkarp")
		format     = fs.String("format", "", "output format: text or json")
		logLevel   = fs.String("log-level", "info", "log level: debug, info, warn, error")
		logFormat  = fs.String("log-format", "text", "log format: text or json")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger, err := newLogger(stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	f := config.Default()
	if *configPath != "" {
		if f, err = config.Load(*configPath); err != nil {
			logger.Error("load config", slog.String("path", *configPath), slog.Any("error", err))
			return exitUsage
		}
	}

	// Explicit flags win over the file.
	var overrideErr error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "lowest":
			f.Lowest = *lowest
		case "highest":
			f.Highest = *highest
		case "initial":
			f.Initial = *initial
		case "points":
			if f.Points, err = config.ParsePoints(*points); err != nil {
				overrideErr = err
			}
		case "strategies":
			f.Strategies = config.ParseStrategies(*strategies)
		case "format":
			f.Format = *format
		}
	})
	if overrideErr == nil {
		overrideErr = f.Validate()
	}
	if overrideErr != nil {
		logger.Error("invalid configuration", slog.Any("error", overrideErr))
		return exitUsage
	}

	list, err := f.StrategyList()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		return exitUsage
	}

	opts := tour.DefaultOptions()
	opts.Logger = logger

	// Validate every algorithm before solving any of them.
	algos := make([]*tour.Algorithm, 0, len(list))
	for _, s := range list {
		a := tour.NewAlgorithmWithOptions(s, f.Lowest, f.Highest, f.Initial, f.Points, opts)
		if a.HasError() {
			fmt.Fprintln(stderr, a.ErrorMessage())
			logger.Error("rejected input", slog.String("strategy", s.String()), slog.Any("error", a.Err()))
			return exitInvalid
		}
		algos = append(algos, a)
	}

	results := make([]tour.Result, 0, len(algos))
	for _, a := range algos {
		res, err := a.Result()
		if err != nil {
			logger.Error("solve", slog.String("strategy", a.Strategy().String()), slog.Any("error", err))
			return exitInvalid
		}
		logger.Info("solved",
			slog.String("strategy", res.Strategy.String()),
			slog.Int("cost", res.Cost),
			slog.Duration("elapsed", res.Elapsed),
		)
		results = append(results, res)
	}

	if err = report.Write(stdout, f.Format, report.New(algos[0].Problem(), results...)); err != nil {
		logger.Error("write report", slog.Any("error", err))
		return exitUsage
	}

	return exitOK
}

// newLogger builds the slog logger for stderr.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q", level)
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("invalid -log-format %q", format)
	}
}
