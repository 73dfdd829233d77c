package preflight

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/temirov/gitgate/internal/execshell"
)

const (
	gitVersionFlagConstant            = "--version"
	gitRevParseSubcommandConstant     = "rev-parse"
	gitIsInsideWorkTreeFlagConstant   = "--is-inside-work-tree"
	versionTokenIndexConstant         = 2
	invalidEncodingOffsetTemplate     = "%w at byte offset %d"
	gitVersionDetectedMessageConstant = "git version detected"
	gitVersionAcceptedMessageConstant = "git version accepted"
	workTreeConfirmedMessageConstant  = "working directory is inside a git work tree"
	logFieldDetectedVersionConstant   = "detected_version"
	logFieldMinimumVersionConstant    = "minimum_version"
)

// GitExecutor runs git commands and reports non-zero exits as results rather than errors.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Gate checks the git installation and the working directory before subcommands run.
type Gate struct {
	logger   *zap.Logger
	executor GitExecutor
}

// NewGate constructs a Gate backed by the provided git executor.
func NewGate(logger *zap.Logger, executor GitExecutor) (*Gate, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &Gate{logger: logger, executor: executor}, nil
}

// Verify requires a sufficiently new git and then a git work tree, stopping at the first failure.
func (gate *Gate) Verify(executionContext context.Context) error {
	if versionError := gate.RequireMinimumGitVersion(executionContext); versionError != nil {
		return versionError
	}
	return gate.RequireWorkTree(executionContext)
}

// RequireMinimumGitVersion fails with VersionTooOldError when the installed git predates MinimumGitVersion.
func (gate *Gate) RequireMinimumGitVersion(executionContext context.Context) error {
	detectedVersion, detectionError := gate.DetectGitVersion(executionContext)
	if detectionError != nil {
		return detectionError
	}

	requiredVersion := MinimumGitVersion()
	if detectedVersion.LessThan(requiredVersion) {
		return VersionTooOldError{Required: requiredVersion.String(), Detected: detectedVersion.String()}
	}

	gate.logger.Debug(
		gitVersionAcceptedMessageConstant,
		zap.String(logFieldDetectedVersionConstant, detectedVersion.String()),
		zap.String(logFieldMinimumVersionConstant, requiredVersion.String()),
	)
	return nil
}

// DetectGitVersion runs git --version and parses the third token of its output as a semantic version.
func (gate *Gate) DetectGitVersion(executionContext context.Context) (*semver.Version, error) {
	executionResult, executionError := gate.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitVersionFlagConstant},
	})
	if executionError != nil {
		return nil, executionError
	}

	if !executionResult.Succeeded() {
		return nil, VersionCheckFailedError{StandardError: string(executionResult.StandardError)}
	}

	versionLine, decodeError := decodeUTF8(executionResult.StandardOutput)
	if decodeError != nil {
		return nil, InvalidOutputEncodingError{Cause: decodeError}
	}

	versionTokens := strings.Fields(versionLine)
	if len(versionTokens) <= versionTokenIndexConstant {
		return nil, MalformedVersionOutputError{Output: versionLine}
	}

	detectedVersion, parseError := semver.StrictNewVersion(versionTokens[versionTokenIndexConstant])
	if parseError != nil {
		return nil, MalformedVersionOutputError{Output: versionLine, Cause: parseError}
	}

	gate.logger.Debug(gitVersionDetectedMessageConstant, zap.String(logFieldDetectedVersionConstant, detectedVersion.String()))
	return detectedVersion, nil
}

// RequireWorkTree fails with ErrNotARepository when git does not report a work tree.
// Standard error from git is not inspected.
func (gate *Gate) RequireWorkTree(executionContext context.Context) error {
	executionResult, executionError := gate.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitRevParseSubcommandConstant, gitIsInsideWorkTreeFlagConstant},
	})
	if executionError != nil {
		return executionError
	}

	if !executionResult.Succeeded() {
		return ErrNotARepository
	}

	gate.logger.Debug(workTreeConfirmedMessageConstant)
	return nil
}

func decodeUTF8(rawOutput []byte) (string, error) {
	decodedOutput, validBytes, validationError := transform.Bytes(encoding.UTF8Validator, rawOutput)
	if validationError != nil {
		return "", fmt.Errorf(invalidEncodingOffsetTemplate, validationError, validBytes)
	}
	return string(decodedOutput), nil
}
