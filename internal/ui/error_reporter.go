package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ErrorReporter prints a failed command's error as a single line.
type ErrorReporter struct {
	writer    io.Writer
	highlight *color.Color
}

// NewErrorReporter builds a reporter writing to writer; colorEnabled switches red highlighting on or off.
func NewErrorReporter(writer io.Writer, colorEnabled bool) *ErrorReporter {
	if writer == nil {
		writer = io.Discard
	}
	highlight := color.New(color.FgRed)
	if colorEnabled {
		highlight.EnableColor()
	} else {
		highlight.DisableColor()
	}
	return &ErrorReporter{writer: writer, highlight: highlight}
}

// Report writes the error message followed by a newline. A nil error writes nothing.
func (reporter *ErrorReporter) Report(failure error) {
	if reporter == nil || failure == nil {
		return
	}
	fmt.Fprintln(reporter.writer, reporter.highlight.Sprint(failure.Error()))
}

// ColorSupported reports whether colored output should be written to file given the configured preference.
func ColorSupported(file *os.File, preferred bool) bool {
	if !preferred || file == nil {
		return false
	}
	if _, noColorSet := os.LookupEnv("NO_COLOR"); noColorSet {
		return false
	}
	fileDescriptor := file.Fd()
	return isatty.IsTerminal(fileDescriptor) || isatty.IsCygwinTerminal(fileDescriptor)
}
