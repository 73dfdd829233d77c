package preflight

import (
	"errors"
	"fmt"
	"strings"
)

const (
	versionCheckFailedTemplateConstant      = "failed to run 'git --version': %s"
	invalidOutputEncodingTemplateConstant   = "git version output is not utf8: %s"
	malformedVersionOutputTemplateConstant  = "git version output is not valid: %s"
	versionTooOldTemplateConstant           = "git version must be at least %s, but %s is found"
	notARepositoryMessageConstant           = "current directory is not a git repository"
	loggerNotConfiguredMessageConstant      = "logger not configured"
	gitExecutorNotConfiguredMessageConstant = "git executor not configured"
)

// ErrNotARepository indicates that the working directory is not inside a git work tree.
var ErrNotARepository = errors.New(notARepositoryMessageConstant)

// ErrLoggerNotConfigured indicates that the gate was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrGitExecutorNotConfigured indicates that the gate was constructed without a git executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorNotConfiguredMessageConstant)

// VersionCheckFailedError reports that git --version exited with a non-zero status.
type VersionCheckFailedError struct {
	StandardError string
}

func (checkError VersionCheckFailedError) Error() string {
	return fmt.Sprintf(versionCheckFailedTemplateConstant, strings.TrimSpace(checkError.StandardError))
}

// InvalidOutputEncodingError reports that git --version printed bytes that are not UTF-8.
type InvalidOutputEncodingError struct {
	Cause error
}

func (encodingError InvalidOutputEncodingError) Error() string {
	return fmt.Sprintf(invalidOutputEncodingTemplateConstant, encodingError.Cause)
}

func (encodingError InvalidOutputEncodingError) Unwrap() error {
	return encodingError.Cause
}

// MalformedVersionOutputError reports git --version output without a parsable semantic version.
// Cause is nil when the output has fewer than three whitespace-separated tokens; the message then
// carries Output with surrounding whitespace trimmed, while Output itself keeps the raw text.
type MalformedVersionOutputError struct {
	Output string
	Cause  error
}

func (malformedError MalformedVersionOutputError) Error() string {
	if malformedError.Cause != nil {
		return fmt.Sprintf(malformedVersionOutputTemplateConstant, malformedError.Cause)
	}
	return fmt.Sprintf(malformedVersionOutputTemplateConstant, strings.TrimSpace(malformedError.Output))
}

func (malformedError MalformedVersionOutputError) Unwrap() error {
	return malformedError.Cause
}

// VersionTooOldError reports an installed git older than the required minimum.
type VersionTooOldError struct {
	Required string
	Detected string
}

func (tooOldError VersionTooOldError) Error() string {
	return fmt.Sprintf(versionTooOldTemplateConstant, tooOldError.Required, tooOldError.Detected)
}
