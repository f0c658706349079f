// Package ui prints status messages for the termgrid CLI. Everything
// goes to stderr so stdout stays clean for rendered output that may be
// piped elsewhere.
package ui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// ColorMode determines when to use colored status output.
type ColorMode int

const (
	// ColorAuto detects terminal capabilities.
	ColorAuto ColorMode = iota
	// ColorNever disables all colored output.
	ColorNever
)

// UI provides formatted status output with color support.
type UI struct {
	out     *termenv.Output
	verbose bool
}

// New creates a UI writing to stderr. It respects the NO_COLOR
// environment variable (POSIX convention).
func New(mode ColorMode, verbose bool) *UI {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	profile := termenv.ColorProfile()
	if mode == ColorNever {
		profile = termenv.Ascii
	}

	return &UI{
		out:     termenv.NewOutput(os.Stderr, termenv.WithProfile(profile)),
		verbose: verbose,
	}
}

// Error prints an error message in red.
func (u *UI) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("✗ "+msg).Foreground(termenv.ANSIRed))
}

// Warning prints a warning message in yellow.
func (u *UI) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("⚠ "+msg).Foreground(termenv.ANSIYellow))
}

// Info prints an informational message, only when verbose is enabled.
func (u *UI) Info(format string, args ...any) {
	if !u.verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("ℹ "+msg).Foreground(termenv.ANSIBlue))
}
