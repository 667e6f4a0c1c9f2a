// Package ui prints colored status lines for the extfiles tool and asks the
// user for confirmation when running interactively.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const ruleWidth = 60

// UI writes tagged status lines and runs prompts
type UI struct {
	output         io.Writer
	nonInteractive bool // If true, don't prompt user for input

	info    *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
	title   *color.Color
	dim     *color.Color
}

// New creates a UI writing to stderr, so stdout stays free for paths
func New() *UI {
	return &UI{
		output:  os.Stderr,
		info:    color.New(color.FgBlue),
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
		title:   color.New(color.FgCyan, color.Bold),
		dim:     color.New(color.Faint),
	}
}

// NewWithWriter creates a UI with custom output writer (useful for testing)
func NewWithWriter(w io.Writer) *UI {
	u := New()
	u.output = w
	return u
}

// SetNonInteractive enables or disables non-interactive mode
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// IsNonInteractive returns true if non-interactive mode is enabled
func (u *UI) IsNonInteractive() bool {
	return u.nonInteractive
}

func (u *UI) tagged(c *color.Color, tag, msg string) {
	c.Fprintf(u.output, "[%s] %s\n", tag, msg)
}

// Info prints an info message
func (u *UI) Info(msg string) { u.tagged(u.info, "INFO", msg) }

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) { u.Info(fmt.Sprintf(format, args...)) }

// Successf prints a formatted success message
func (u *UI) Successf(format string, args ...interface{}) {
	u.tagged(u.success, "✓", fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (u *UI) Warning(msg string) { u.tagged(u.warning, "WARNING", msg) }

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) { u.Warning(fmt.Sprintf(format, args...)) }

// Errorf prints a formatted error message. Copy failures reach the user
// through it.
func (u *UI) Errorf(format string, args ...interface{}) {
	u.tagged(u.failure, "ERROR", fmt.Sprintf(format, args...))
}

// Transfer reports a file that was moved or copied into the storage root
func (u *UI) Transfer(verb, source, destination string) {
	u.tagged(u.success, "✓", fmt.Sprintf("%s %s", verb, source))
	u.dim.Fprintf(u.output, "    -> %s\n", destination)
}

// Candidate prints one line of the candidate listing. The selected
// directory is marked with an asterisk.
func (u *UI) Candidate(index int, path string, selected bool, detail string) {
	line := fmt.Sprintf("  [%d] %s (%s)", index, path, detail)
	if selected {
		u.success.Fprintf(u.output, "* %s\n", strings.TrimPrefix(line, "  "))
		return
	}
	fmt.Fprintln(u.output, line)
}

// Header prints a title between two rules
func (u *UI) Header(title string) {
	border := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(u.output)
	u.title.Fprintln(u.output, border)
	u.title.Fprintf(u.output, "  %s\n", title)
	u.title.Fprintln(u.output, border)
}

// Rule prints a thin horizontal rule
func (u *UI) Rule() {
	u.title.Fprintln(u.output, strings.Repeat("-", ruleWidth))
}

// Print prints a plain message without formatting
func (u *UI) Print(msg string) {
	fmt.Fprintln(u.output, msg)
}

// Printf prints a formatted plain message
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.output, format+"\n", args...)
}
