// Package appshell wraps a command entrypoint for a process: interrupt-aware
// context, help on an empty command line, and exit code normalization.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is a command entrypoint returning its exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// CodeInterrupted is returned when ctx ended before run reported a failure.
const CodeInterrupted = 130

// Main runs run with os.Args, stopping on SIGINT or SIGTERM, and exits.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr, run)
	stop()
	os.Exit(code)
}

// Run calls run, substituting --help for an empty argv. A zero code from a
// run whose ctx was canceled becomes CodeInterrupted.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer, run RunFunc) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = CodeInterrupted
	}
	return code
}
