// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"aoc2022/internal/cli"
	"aoc2022/internal/cmdutil"
	"aoc2022/internal/common"
	"aoc2022/internal/config"
	"aoc2022/internal/ctxlog"
	_ "aoc2022/internal/days"
	"aoc2022/internal/input"
	"aoc2022/internal/puzzle"
	"aoc2022/internal/version"
	"aoc2022/internal/writers"
)

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 2
	exitFailure  = 3
	exitCanceled = 130
)

// exitError carries the process exit code out of a cobra RunE.
type exitError struct {
	code  int
	err   error
	usage bool // print the command usage after the error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error { return &exitError{code: exitUsage, err: err, usage: true} }
func inputErr(err error) error { return &exitError{code: exitUsage, err: err} }
func failErr(err error) error  { return &exitError{code: exitFailure, err: err} }

// RunContext executes the aoc command line and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root := newRootCmd(outw, stderr)
	root.SetArgs(argv)
	cmd, err := root.ExecuteContextC(parent)

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return exitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return exitFailure
	}
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if !errors.As(err, &ee) {
		// Errors cobra raises itself: unknown command, bad arguments.
		ee = &exitError{code: exitUsage, err: err, usage: true}
	}
	if ee.err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", ee.err)
	}
	if ee.usage && cmd != nil {
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
	}
	return ee.code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2022 solvers",
		Long: `aoc solves Advent of Code 2022 puzzles.

Each day reads its input from <inputs-dir>/DD.txt (or <examples-dir>/DD.txt
with --example) and prints one answer per part.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetVersionTemplate("aoc version {{.Version}}\n")
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageErr(err) })
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newSolveCmd(stdout, stderr),
		newListCmd(stdout),
		newVersionCmd(stdout),
	)
	return root
}

func newSolveCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts cli.Options
	cmd := &cobra.Command{
		Use:   "solve [days...]",
		Short: "Solve one or more days",
		Long: `Solve the selected days. Days may be given as 5, 1-3, 2,4 or all;
with none, the latest day is solved.`,
		Example: `  aoc solve 5
  aoc solve all -o json
  aoc solve 5 --example --part 2
  aoc solve 5 --input - < 05.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.Flags(), opts, args, stdout, stderr)
		},
	}
	cli.Bind(cmd.Flags(), &opts)
	return cmd
}

func newListCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days solved here",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, d := range puzzle.Days() {
				s, _ := puzzle.Lookup(d)
				if _, err := fmt.Fprintf(stdout, "%2d\t%s\n", s.Day, s.Title); err != nil {
					return failErr(err)
				}
			}
			return nil
		},
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(stdout, "aoc version %s\n", version.Version)
			return err
		},
	}
}

func runSolve(ctx context.Context, flags *pflag.FlagSet, opts cli.Options, args []string, stdout, stderr io.Writer) error {
	if err := opts.Validate(); err != nil {
		return usageErr(err)
	}
	cfg, err := config.Load(opts.ConfigPath, flags)
	if err != nil {
		return inputErr(err)
	}
	logger, err := cmdutil.NewLogger(stderr, cfg.LogLevel, opts.Verbose, opts.Quiet)
	if err != nil {
		return usageErr(err)
	}
	defer func() { _ = logger.Sync() }()
	ctx = ctxlog.WithLogger(ctx, logger)

	days, err := common.ParseDays(args, puzzle.Days())
	if err != nil {
		return usageErr(err)
	}
	if opts.InputPath != "" && len(days) != 1 {
		return usageErr(fmt.Errorf("--input takes exactly one day, got %d", len(days)))
	}

	sink, err := writers.NewSink(cfg.Output, stdout, writers.Options{Header: !opts.NoHeader})
	if err != nil {
		return usageErr(err)
	}

	jobs, err := loadJobs(ctx, days, opts, cfg)
	if err != nil {
		return inputErr(err)
	}

	total, runErr := cmdutil.RunJobs(ctx, jobs, sink.Put)
	// Answers solved before a failure are still written.
	if werr := sink.Close(); writers.IsBrokenPipe(werr) {
		return nil
	} else if werr != nil {
		return failErr(werr)
	}
	if runErr != nil {
		switch {
		case writers.IsBrokenPipe(runErr):
			return nil
		case errors.Is(runErr, context.Canceled):
			return &exitError{code: exitCanceled}
		default:
			return failErr(runErr)
		}
	}
	logger.Debug("done", zap.Int("answers", total))
	return nil
}

func loadJobs(ctx context.Context, days []int, opts cli.Options, cfg config.Config) ([]cmdutil.Job, error) {
	log := ctxlog.FromContext(ctx)
	var jobs []cmdutil.Job
	for _, d := range days {
		s, ok := puzzle.Lookup(d)
		if !ok {
			return nil, fmt.Errorf("day %d is not registered", d)
		}
		path := opts.InputPath
		if path == "" {
			dir := cfg.InputsDir
			if opts.Example {
				dir = cfg.ExamplesDir
			}
			path = input.Path(dir, d)
		}
		text, err := input.Read(path)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", d, err)
		}
		if strings.TrimSpace(text) == "" {
			log.Warn("input is empty", zap.Int("day", d), zap.String("input", path))
		}
		log.Debug("loaded input", zap.Int("day", d), zap.String("input", path), zap.Int("bytes", len(text)))
		for _, p := range opts.Parts() {
			jobs = append(jobs, cmdutil.Job{Solver: s, Part: p, Input: text, Source: path})
		}
	}
	return jobs, nil
}
