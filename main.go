package main

import (
	"os"

	"github.com/temirov/gitgate/cmd/cli"
	"github.com/temirov/gitgate/internal/ui"
)

// main executes the gitgate command-line application.
func main() {
	application := cli.NewApplication()
	if executionError := application.Execute(); executionError != nil {
		colorEnabled := ui.ColorSupported(os.Stderr, application.ColorEnabled())
		ui.NewErrorReporter(os.Stderr, colorEnabled).Report(executionError)
		os.Exit(1)
	}
}
