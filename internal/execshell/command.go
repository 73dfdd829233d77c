package execshell

import "context"

const (
	commandGitStringConstant = "git"
)

// CommandName identifies an executable supported by the shell helpers.
type CommandName string

// Supported executables.
const (
	CommandGit CommandName = CommandName(commandGitStringConstant)
)

// CommandDetails describes the arguments and environment of a single invocation.
// The executable itself is fixed by ShellCommand.Name and is not part of Arguments.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
}

// ShellCommand pairs an executable with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of a completed process.
// A non-zero ExitCode is information for the caller, not an invocation failure.
type ExecutionResult struct {
	StandardOutput []byte
	StandardError  []byte
	ExitCode       int
}

// Succeeded reports whether the process exited with status zero.
func (result ExecutionResult) Succeeded() bool {
	return result.ExitCode == 0
}

// CommandRunner executes shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}
