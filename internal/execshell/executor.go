package execshell

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const (
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
	logFieldCommandLineConstant               = "command"
	logFieldExitCodeConstant                  = "exit_code"
)

// ErrLoggerNotConfigured indicates that a nil logger was supplied.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates that a nil command runner was supplied.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// ShellExecutor runs commands through a CommandRunner while logging and publishing lifecycle events.
type ShellExecutor struct {
	logger           *zap.Logger
	runner           CommandRunner
	observer         CommandEventObserver
	messageFormatter CommandMessageFormatter
}

// NewShellExecutor constructs a ShellExecutor that discards lifecycle events.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner) (*ShellExecutor, error) {
	return NewShellExecutorWithObserver(logger, runner, nil)
}

// NewShellExecutorWithObserver constructs a ShellExecutor that reports lifecycle events to observer.
func NewShellExecutorWithObserver(logger *zap.Logger, runner CommandRunner, observer CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	if observer == nil {
		observer = noopCommandEventObserver{}
	}
	return &ShellExecutor{
		logger:           logger,
		runner:           runner,
		observer:         observer,
		messageFormatter: CommandMessageFormatter{},
	}, nil
}

// Execute runs the command and returns the runner outcome unchanged.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	commandLine := FormatCommandLine(command)

	executor.observer.CommandStarted(command)
	executor.logger.Debug(executor.messageFormatter.BuildStartedMessage(command), zap.String(logFieldCommandLineConstant, commandLine))

	executionResult, executionError := executor.runner.Run(executionContext, command)
	if executionError != nil {
		executor.observer.CommandExecutionFailed(command, executionError)
		executor.logger.Debug(executor.messageFormatter.BuildExecutionFailureMessage(command, executionError), zap.String(logFieldCommandLineConstant, commandLine), zap.Error(executionError))
		return ExecutionResult{}, executionError
	}

	executor.observer.CommandCompleted(command, executionResult)
	if executionResult.Succeeded() {
		executor.logger.Debug(executor.messageFormatter.BuildSuccessMessage(command, executionResult), zap.String(logFieldCommandLineConstant, commandLine))
	} else {
		executor.logger.Debug(executor.messageFormatter.BuildFailureMessage(command, executionResult), zap.String(logFieldCommandLineConstant, commandLine), zap.Int(logFieldExitCodeConstant, executionResult.ExitCode))
	}

	return executionResult, nil
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}
