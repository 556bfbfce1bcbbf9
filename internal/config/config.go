// Package config parses the command line into the typed configuration the
// application layer consumes. The error threshold is accepted in percent
// and converted to a fraction here, so the core only ever sees fractions.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// Config holds the parsed command-line configuration.
type Config struct {
	// MaxError is the maximum permissible relative error as a fraction
	// (the -err flag divided by 100).
	MaxError float64
	// RatioMode selects the ratio-pair search; the single positional
	// value is then the target ratio.
	RatioMode bool
	// JSONOutput renders the result as JSON instead of a table.
	JSONOutput bool
	// NoColor disables ANSI styling.
	NoColor bool
	// Verbose enables debug logging.
	Verbose bool
	// Values are the positional target values (or the single target ratio).
	Values []float64
}

// Parse builds a Config from command-line arguments. Flag errors (unknown
// flags, a -err flag without a value) and malformed positional values are
// returned to the caller; usage has already been written to output.
//
// Parameters:
//   - name: The program name used in the usage header.
//   - args: The raw arguments, excluding the program name.
//   - output: The writer for usage and flag error messages.
//
// Returns:
//   - *Config: The parsed configuration.
//   - error: A parse error, or flag.ErrHelp when -h was requested.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	errPct := fs.Float64("err", 1.0, "maximum relative error in `percent` a series must satisfy")
	ratioMode := fs.Bool("ratio", false, "find a pair of series values approximating the given ratio")
	jsonOutput := fs.Bool("json", false, "render the result as JSON")
	noColor := fs.Bool("no-color", false, "disable colored output")
	verbose := fs.Bool("v", false, "enable debug logging")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	values := make([]float64, 0, fs.NArg())
	for _, arg := range fs.Args() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			err = fmt.Errorf("invalid value %q: %w", arg, err)
			fmt.Fprintln(output, err)
			return nil, err
		}
		values = append(values, v)
	}

	return &Config{
		MaxError:   *errPct / 100.0,
		RatioMode:  *ratioMode,
		JSONOutput: *jsonOutput,
		NoColor:    *noColor,
		Verbose:    *verbose,
		Values:     values,
	}, nil
}
