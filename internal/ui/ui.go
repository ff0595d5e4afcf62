// Package ui prints status lines for the CLI. Results go to stdout,
// warnings and errors to stderr so pipes stay clean.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Out and Err are the destinations for status output. Tests swap them.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.FgHiBlack).SprintFunc()
)

// Successf prints a green check line to stdout.
func Successf(format string, args ...any) {
	fmt.Fprintf(Out, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// Infof prints a plain line to stdout.
func Infof(format string, args ...any) {
	fmt.Fprintf(Out, format+"\n", args...)
}

// Warnf prints a yellow warning line to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintf(Err, "%s %s\n", yellow("Warning:"), fmt.Sprintf(format, args...))
}

// Errorf prints a red error line to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(Err, "%s %s\n", red("Error:"), fmt.Sprintf(format, args...))
}

// Header prints a bold title for a block of output.
func Header(title string) {
	fmt.Fprintf(Out, "%s\n", bold(title))
}

// Dim renders de-emphasized text, for paths and counts.
func Dim(s string) string {
	return dim(s)
}
