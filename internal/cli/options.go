// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"aoc2022/internal/config"
)

// Options holds the solve flags that are not part of the layered config.
// Flags that are (output, directories, log level) are only registered here
// and resolved by config.Load.
type Options struct {
	// Input selection
	Part      int // 0 = both
	Example   bool
	InputPath string

	// Output
	NoHeader bool

	// Diagnostics
	Quiet   bool
	Verbose bool

	ConfigPath string
}

// Bind registers the solve flags on fs.
func Bind(fs *pflag.FlagSet, opt *Options) {
	// Input selection
	fs.IntVarP(&opt.Part, "part", "p", 0, "part to solve: 1 | 2 (0 = both)")
	fs.BoolVarP(&opt.Example, "example", "e", false, "solve the example input instead of the puzzle input")
	fs.StringVarP(&opt.InputPath, "input", "i", "", "explicit input file ('-' = stdin, .gz ok); one day only")
	fs.String("inputs-dir", config.DefaultInputsDir, "directory of DD.txt puzzle inputs")
	fs.String("examples-dir", config.DefaultExamplesDir, "directory of DD.txt example inputs")

	// Output
	fs.StringP("output", "o", config.DefaultOutput, "output format: text | json | jsonl | yaml")
	fs.BoolVar(&opt.NoHeader, "no-header", false, "suppress the header line in text output")

	// Diagnostics
	fs.String("log-level", config.DefaultLogLevel, "diagnostic level: debug | info | warn | error")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress diagnostics")
	fs.BoolVarP(&opt.Verbose, "verbose", "v", false, "debug diagnostics")

	fs.StringVar(&opt.ConfigPath, "config", "", "YAML config file (default ./aoc.yaml or $AOC_CONFIG)")
}

// Validate checks flag combinations that do not depend on config.
func (o Options) Validate() error {
	if o.Part < 0 || o.Part > 2 {
		return fmt.Errorf("--part must be 0, 1 or 2 (got %d)", o.Part)
	}
	if o.Example && o.InputPath != "" {
		return errors.New("--example conflicts with --input")
	}
	if o.Quiet && o.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// Parts returns the parts to solve, in order.
func (o Options) Parts() []int {
	if o.Part == 0 {
		return []int{1, 2}
	}
	return []int{o.Part}
}
