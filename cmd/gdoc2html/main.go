package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain runs the command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "go-gdoc2html %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags.common)

	// Configure GOMAXPROCS before sizing the worker pool
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		})
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, logger, env); err != nil {
		var batch *batchError
		if !errors.As(err, &batch) {
			// Per-document failures were already printed with their hints
			fmt.Fprintf(env.Stderr, "%v%s\n", err, configHint(err, flags.common.config)+hintFor(err))
		} else if !flags.common.quiet {
			fmt.Fprintln(env.Stderr, err)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// newLogger returns the text logger for diagnostics on w.
// Levels: debug with --verbose, errors only with --quiet, info otherwise.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// No timestamps on terminal output
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
