// Package view provides terminal output formatting for mdp commands.
package view

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Reporter writes progress and diagnostic messages for a build run.
// Informational messages are verbose-gated; warnings and errors always print.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool

	warnStyle  *color.Color
	errorStyle *color.Color
}

// NewReporter creates a Reporter. When noColor is set (or the NO_COLOR
// convention applies, which fatih/color detects itself), styling is disabled.
func NewReporter(verbose, noColor bool) *Reporter {
	if noColor {
		color.NoColor = true
	}
	return &Reporter{
		out:        os.Stdout,
		errOut:     os.Stderr,
		verbose:    verbose,
		warnStyle:  color.New(color.Bold),
		errorStyle: color.New(color.Bold, color.ReverseVideo),
	}
}

// SetWriters redirects output, primarily for tests.
func (r *Reporter) SetWriters(out, errOut io.Writer) {
	r.out = out
	r.errOut = errOut
}

// Printf prints a message to stdout unconditionally.
func (r *Reporter) Printf(prefix, format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Infof prints an informational message to stdout when verbose is enabled.
func (r *Reporter) Infof(prefix, format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Warnf prints a warning to stderr in bold.
func (r *Reporter) Warnf(prefix, format string, args ...any) {
	r.warnStyle.Fprintf(r.errOut, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Errorf prints an error to stderr in emphasized form.
func (r *Reporter) Errorf(prefix, format string, args ...any) {
	r.errorStyle.Fprintf(r.errOut, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
