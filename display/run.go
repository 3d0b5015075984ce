// Package display is the process boundary around the parsing core: it
// translates typed parse errors into user-facing messages and exit codes,
// and handles the conventional --version flag. The core itself never
// prints or exits; everything process-shaped lives here.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/terror/arrg/core"
	"github.com/terror/arrg/errors"
	"github.com/terror/arrg/internal/common"
	"github.com/terror/arrg/schema"
)

var osExit = os.Exit // Mockable for testing

// Exit codes follow the usual CLI convention.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var errLabel = color.New(color.FgRed, color.Bold)

// Report writes a user-facing message for err and returns the exit code a
// caller should use: usage errors (bad input) map to 2, schema construction
// errors to 1.
func Report(w io.Writer, err error) int {
	errLabel.Fprint(w, "error: ")
	fmt.Fprintln(w, err)

	switch err.(type) {
	case errors.DuplicateFlagError, errors.ParseError:
		return ExitFailure
	}
	return ExitUsage
}

// Run compiles the schema, parses argv, and invokes fn with the result.
// It returns the process exit code, printing errors to w. A leading
// --version is answered from the schema before any parsing happens.
func Run(cmd *schema.Command, argv []string, w io.Writer, fn func(*core.Result) error) int {
	if len(argv) > 0 && argv[0] == "--version" && cmd.Version() != "" {
		version, err := BuildVersion(cmd)
		if err != nil {
			return Report(w, err)
		}
		fmt.Fprintln(w, version)
		return ExitSuccess
	}

	parser, err := core.Compile(cmd)
	if err != nil {
		errLabel.Fprint(w, "error: ")
		fmt.Fprintln(w, err)
		return ExitFailure
	}

	result, err := parser.Parse(argv)
	if err != nil {
		return Report(w, err)
	}

	if fn != nil {
		if err := fn(result); err != nil {
			errLabel.Fprint(w, "error: ")
			fmt.Fprintln(w, err)
			return ExitFailure
		}
	}
	return ExitSuccess
}

// RunString is Run for a single command line string, split with quote
// awareness. Convenient for tests and REPL-style callers.
func RunString(cmd *schema.Command, line string, w io.Writer, fn func(*core.Result) error) int {
	return Run(cmd, common.SplitCommandLine(line), w, fn)
}

// Main wires Run to the process: os.Args in, os.Exit out.
func Main(cmd *schema.Command, fn func(*core.Result) error) {
	osExit(Run(cmd, os.Args[1:], os.Stderr, fn))
}
