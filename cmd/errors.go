// cmd/errors.go
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/djedi23/sleep-progress/internal/interval"
)

// Exit statuses
const (
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

var (
	// errMissingInterval is returned when no NUMBER argument was given
	errMissingInterval = errors.New("missing required argument <NUMBER>")

	// errInterrupted is returned when a signal cut the wait short
	errInterrupted = errors.New("interrupted")
)

// helpHint is printed under every error the user can fix.
const helpHint = "Try `sleep-progress --help` for more information."

// usageError marks errors in how the command was invoked, as opposed to
// errors in the values given.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// exitCode maps an error returned by the root command to a process status.
func exitCode(err error) int {
	var usage *usageError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInterrupted):
		return exitInterrupted
	case errors.As(err, &usage):
		return exitUsage
	default:
		return exitFailure
	}
}

// formatError renders err the way it is shown on stderr.
func formatError(err error) string {
	if errors.Is(err, errInterrupted) {
		return ""
	}

	msg := fmt.Sprintf("%s %s\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)

	var usage *usageError
	var invalid *interval.InvalidIntervalError
	if errors.As(err, &usage) || errors.As(err, &invalid) {
		msg += color.HiBlackString("  help: %s", helpHint) + "\n"
	}
	return msg
}

func printError(w io.Writer, err error) {
	fmt.Fprint(w, formatError(err))
}
