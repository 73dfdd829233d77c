package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
)

const (
	environmentAssignmentSeparatorConstant = "="
	environmentAssignmentTemplateConstant  = "%s%s%s"
)

// OSCommandRunner executes commands using the operating system facilities.
type OSCommandRunner struct{}

// NewOSCommandRunner constructs a runner backed by os/exec.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run executes the supplied command using os/exec and waits for it to exit.
// A process that exits with a non-zero status yields a result and a nil error;
// only failures to start or wait on the process are returned as errors.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	if executionContext == nil {
		executionContext = context.Background()
	}

	commandArguments := append([]string{}, command.Details.Arguments...)
	executable := exec.CommandContext(executionContext, string(command.Name), commandArguments...)

	if len(command.Details.WorkingDirectory) > 0 {
		executable.Dir = command.Details.WorkingDirectory
	}

	if len(command.Details.EnvironmentVariables) > 0 {
		mergedEnvironment := append([]string{}, os.Environ()...)
		for environmentKey, environmentValue := range command.Details.EnvironmentVariables {
			mergedEnvironment = append(mergedEnvironment, fmt.Sprintf(environmentAssignmentTemplateConstant, environmentKey, environmentAssignmentSeparatorConstant, environmentValue))
		}
		executable.Env = mergedEnvironment
	}

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	executable.Stdout = &standardOutputBuffer
	executable.Stderr = &standardErrorBuffer

	runError := executable.Run()
	if runError != nil {
		exitError := &exec.ExitError{}
		if errors.As(runError, &exitError) {
			return ExecutionResult{
				StandardOutput: standardOutputBuffer.Bytes(),
				StandardError:  standardErrorBuffer.Bytes(),
				ExitCode:       exitError.ExitCode(),
			}, nil
		}
		if isExecutableMissing(runError, executable.Path) {
			return ExecutionResult{}, ExecutableNotFoundError{Executable: command.Name}
		}
		return ExecutionResult{}, SpawnFailedError{CommandLine: FormatCommandLine(command), Cause: runError}
	}

	return ExecutionResult{
		StandardOutput: standardOutputBuffer.Bytes(),
		StandardError:  standardErrorBuffer.Bytes(),
		ExitCode:       0,
	}, nil
}

// isExecutableMissing distinguishes a missing executable from other start failures,
// such as a missing working directory, that also surface as fs.ErrNotExist.
func isExecutableMissing(runError error, executablePath string) bool {
	if errors.Is(runError, exec.ErrNotFound) {
		return true
	}
	pathError := &fs.PathError{}
	if errors.As(runError, &pathError) {
		return errors.Is(pathError, fs.ErrNotExist) && pathError.Path == executablePath
	}
	return false
}
