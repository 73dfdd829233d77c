package execshell

import (
	"fmt"
	"strings"
)

const (
	executableNotFoundTemplateConstant = "%s command not found"
	spawnFailedTemplateConstant        = "failed to run '%s': %s"
	commandLineSeparatorConstant       = " "
)

// ExecutableNotFoundError reports that the executable is missing from the search path.
type ExecutableNotFoundError struct {
	Executable CommandName
}

// Error describes the missing executable.
func (notFoundError ExecutableNotFoundError) Error() string {
	return fmt.Sprintf(executableNotFoundTemplateConstant, notFoundError.Executable)
}

// SpawnFailedError reports an operating system failure to start or wait on a process.
type SpawnFailedError struct {
	CommandLine string
	Cause       error
}

// Error describes the attempted command line and the underlying failure.
func (spawnError SpawnFailedError) Error() string {
	causeMessage := ""
	if spawnError.Cause != nil {
		causeMessage = spawnError.Cause.Error()
	}
	return strings.TrimSpace(fmt.Sprintf(spawnFailedTemplateConstant, spawnError.CommandLine, causeMessage))
}

// Unwrap exposes the underlying operating system error.
func (spawnError SpawnFailedError) Unwrap() error {
	return spawnError.Cause
}

// FormatCommandLine renders the executable followed by its space-joined arguments.
func FormatCommandLine(command ShellCommand) string {
	commandParts := append([]string{string(command.Name)}, command.Details.Arguments...)
	return strings.Join(commandParts, commandLineSeparatorConstant)
}
