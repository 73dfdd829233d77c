package execshell_test

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitgate/internal/execshell"
)

const (
	testShellExecutableConstant      = "sh"
	testMissingExecutableConstant    = "gitgate-missing-executable"
	testMissingDirectoryNameConstant = "missing"
)

func TestOSCommandRunnerReportsMissingExecutableRegardlessOfArguments(testInstance *testing.T) {
	testCases := []struct {
		name      string
		command   execshell.ShellCommand
		emptyPath bool
	}{
		{
			name:    "unknown_executable_without_arguments",
			command: execshell.ShellCommand{Name: execshell.CommandName(testMissingExecutableConstant)},
		},
		{
			name: "unknown_executable_with_arguments",
			command: execshell.ShellCommand{
				Name:    execshell.CommandName(testMissingExecutableConstant),
				Details: execshell.CommandDetails{Arguments: []string{"rev-parse", "--is-inside-work-tree"}},
			},
		},
		{
			name:      "git_missing_from_search_path",
			command:   execshell.ShellCommand{Name: execshell.CommandGit, Details: execshell.CommandDetails{Arguments: []string{"--version"}}},
			emptyPath: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			if testCase.emptyPath {
				testInstance.Setenv("PATH", testInstance.TempDir())
			}

			runner := execshell.NewOSCommandRunner()
			executionResult, executionError := runner.Run(context.Background(), testCase.command)

			require.Error(testInstance, executionError)
			notFoundError := execshell.ExecutableNotFoundError{}
			require.True(testInstance, errors.As(executionError, &notFoundError))
			require.Equal(testInstance, testCase.command.Name, notFoundError.Executable)
			require.Equal(testInstance, string(testCase.command.Name)+" command not found", executionError.Error())
			require.Equal(testInstance, execshell.ExecutionResult{}, executionResult)
		})
	}
}

func TestOSCommandRunnerReturnsNonZeroExitAsResult(testInstance *testing.T) {
	if _, lookupError := exec.LookPath(testShellExecutableConstant); lookupError != nil {
		testInstance.Skip("sh is not installed")
	}

	runner := execshell.NewOSCommandRunner()
	executionResult, executionError := runner.Run(context.Background(), execshell.ShellCommand{
		Name:    execshell.CommandName(testShellExecutableConstant),
		Details: execshell.CommandDetails{Arguments: []string{"-c", "printf out; printf err >&2; exit 3"}},
	})

	require.NoError(testInstance, executionError)
	require.False(testInstance, executionResult.Succeeded())
	require.Equal(testInstance, 3, executionResult.ExitCode)
	require.Equal(testInstance, "out", string(executionResult.StandardOutput))
	require.Equal(testInstance, "err", string(executionResult.StandardError))
}

func TestOSCommandRunnerPassesEnvironment(testInstance *testing.T) {
	if _, lookupError := exec.LookPath(testShellExecutableConstant); lookupError != nil {
		testInstance.Skip("sh is not installed")
	}

	runner := execshell.NewOSCommandRunner()
	executionResult, executionError := runner.Run(context.Background(), execshell.ShellCommand{
		Name: execshell.CommandName(testShellExecutableConstant),
		Details: execshell.CommandDetails{
			Arguments:            []string{"-c", "printf %s \"$GITGATE_TEST_VALUE\""},
			EnvironmentVariables: map[string]string{"GITGATE_TEST_VALUE": "present"},
		},
	})

	require.NoError(testInstance, executionError)
	require.True(testInstance, executionResult.Succeeded())
	require.Equal(testInstance, "present", string(executionResult.StandardOutput))
}

func TestOSCommandRunnerClassifiesOtherStartFailures(testInstance *testing.T) {
	if _, lookupError := exec.LookPath(testShellExecutableConstant); lookupError != nil {
		testInstance.Skip("sh is not installed")
	}

	missingDirectory := filepath.Join(testInstance.TempDir(), testMissingDirectoryNameConstant)
	runner := execshell.NewOSCommandRunner()
	_, executionError := runner.Run(context.Background(), execshell.ShellCommand{
		Name: execshell.CommandName(testShellExecutableConstant),
		Details: execshell.CommandDetails{
			Arguments:        []string{"-c", "exit 0"},
			WorkingDirectory: missingDirectory,
		},
	})

	require.Error(testInstance, executionError)
	spawnError := execshell.SpawnFailedError{}
	require.True(testInstance, errors.As(executionError, &spawnError))
	require.Equal(testInstance, "sh -c exit 0", spawnError.CommandLine)
	require.Contains(testInstance, executionError.Error(), "failed to run 'sh -c exit 0': ")
	require.NotNil(testInstance, errors.Unwrap(executionError))
}

func TestSpawnFailedErrorTrimsTrailingWhitespace(testInstance *testing.T) {
	spawnError := execshell.SpawnFailedError{
		CommandLine: execshell.FormatCommandLine(execshell.ShellCommand{Name: execshell.CommandGit, Details: execshell.CommandDetails{Arguments: []string{"rev-parse", "--is-inside-work-tree"}}}),
		Cause:       errors.New("permission denied \n"),
	}

	require.Equal(testInstance, "failed to run 'git rev-parse --is-inside-work-tree': permission denied", spawnError.Error())
}
