package tests

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

const (
	binaryNameConstant          = "gitgate"
	binaryDirectoryPatternConst = "gitgate-integration-*"
)

var gitgateBinaryPath string

func TestMain(m *testing.M) {
	buildDirectory, directoryError := os.MkdirTemp("", binaryDirectoryPatternConst)
	if directoryError != nil {
		fmt.Fprintln(os.Stderr, directoryError)
		os.Exit(1)
	}

	gitgateBinaryPath = filepath.Join(buildDirectory, binaryNameConstant)
	buildCommand := exec.Command("go", "build", "-o", gitgateBinaryPath, ".")
	buildCommand.Dir = ".."
	if buildOutput, buildError := buildCommand.CombinedOutput(); buildError != nil {
		fmt.Fprintf(os.Stderr, "unable to build gitgate: %v\n%s", buildError, buildOutput)
		_ = os.RemoveAll(buildDirectory)
		os.Exit(1)
	}

	exitCode := m.Run()
	_ = os.RemoveAll(buildDirectory)
	os.Exit(exitCode)
}
