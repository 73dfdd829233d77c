package tests

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/gitgate/internal/execshell"
	"github.com/temirov/gitgate/internal/preflight"
)

const (
	integrationCommandTimeout       = 10 * time.Second
	gitCeilingEnvironmentKey        = "GIT_CEILING_DIRECTORIES"
	userConfigurationEnvironmentKey = "XDG_CONFIG_HOME"
	pathEnvironmentKey              = "PATH"
)

type integrationResult struct {
	standardOutput string
	standardError  string
	exitCode       int
}

type integrationInvocation struct {
	workingDirectory string
	environment      map[string]string
	arguments        []string
}

func runGitgate(testInstance *testing.T, invocation integrationInvocation) integrationResult {
	testInstance.Helper()

	executionContext, cancel := context.WithTimeout(context.Background(), integrationCommandTimeout)
	defer cancel()

	command := exec.CommandContext(executionContext, gitgateBinaryPath, invocation.arguments...)
	command.Dir = invocation.workingDirectory
	command.Env = append(os.Environ(),
		userConfigurationEnvironmentKey+"="+testInstance.TempDir(),
		gitCeilingEnvironmentKey+"="+filepath.Dir(invocation.workingDirectory),
	)
	for environmentKey, environmentValue := range invocation.environment {
		command.Env = append(command.Env, environmentKey+"="+environmentValue)
	}

	var standardOutput, standardError bytes.Buffer
	command.Stdout = &standardOutput
	command.Stderr = &standardError

	runError := command.Run()
	exitCode := 0
	var exitError *exec.ExitError
	if errors.As(runError, &exitError) {
		exitCode = exitError.ExitCode()
	} else {
		require.NoError(testInstance, runError)
	}

	return integrationResult{
		standardOutput: standardOutput.String(),
		standardError:  standardError.String(),
		exitCode:       exitCode,
	}
}

// requireSupportedGit skips the test unless a git satisfying the minimum version is installed.
func requireSupportedGit(testInstance *testing.T) {
	testInstance.Helper()

	gitExecutor, executorError := execshell.NewShellExecutor(zap.NewNop(), execshell.NewOSCommandRunner())
	require.NoError(testInstance, executorError)
	gate, gateError := preflight.NewGate(zap.NewNop(), gitExecutor)
	require.NoError(testInstance, gateError)

	if versionError := gate.RequireMinimumGitVersion(context.Background()); versionError != nil {
		testInstance.Skipf("git unavailable for integration tests: %v", versionError)
	}
}

func initializeRepository(testInstance *testing.T) string {
	testInstance.Helper()

	repositoryPath := filepath.Join(testInstance.TempDir(), "repository")
	require.NoError(testInstance, os.MkdirAll(repositoryPath, 0o755))

	initCommand := exec.Command("git", "init", "--quiet")
	initCommand.Dir = repositoryPath
	initOutput, initError := initCommand.CombinedOutput()
	require.NoError(testInstance, initError, string(initOutput))
	return repositoryPath
}

func plainDirectory(testInstance *testing.T) string {
	testInstance.Helper()

	directoryPath := filepath.Join(testInstance.TempDir(), "plain")
	require.NoError(testInstance, os.MkdirAll(directoryPath, 0o755))
	return directoryPath
}

// fakeGitDirectory returns a PATH entry holding a git script that prints versionOutput.
func fakeGitDirectory(testInstance *testing.T, versionOutput string) string {
	testInstance.Helper()

	if _, shellError := exec.LookPath("sh"); shellError != nil {
		testInstance.Skip("sh is required for the fake git executable")
	}

	binDirectory := testInstance.TempDir()
	script := "#!/bin/sh\nif [ \"$1\" = \"--version\" ]; then\n  printf '%s\\n' '" + versionOutput + "'\n  exit 0\nfi\nexit 0\n"
	require.NoError(testInstance, os.WriteFile(filepath.Join(binDirectory, "git"), []byte(script), 0o755))
	return binDirectory
}
