package switching

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitgate/internal/preflight"
	"github.com/temirov/gitgate/internal/utils"
)

const (
	commandUseNameConstant          = "switch"
	commandShortDescriptionConstant = "Switch the current repository"
	commandLongDescriptionConstant  = "switch runs only after gitgate confirms git 2.30.0 or newer and a git work tree in the current directory."
	commandExampleConstant          = "gitgate switch"
	missingOptionsMessageConstant   = "root options are not available in the command context"
)

// ErrRootOptionsMissing indicates the root command did not resolve common options before dispatch.
var ErrRootOptionsMissing = errors.New(missingOptionsMessageConstant)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// HandlerProvider yields the Handler invoked by the command.
type HandlerProvider func() Handler

// CommandBuilder assembles the switch command.
type CommandBuilder struct {
	LoggerProvider  LoggerProvider
	HandlerProvider HandlerProvider
}

// Build constructs the switch command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseNameConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}
	preflight.RequirePreflight(command)
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	rootOptions, rootOptionsAvailable := utils.NewCommandContextAccessor().CommonOptions(command.Context())
	if !rootOptionsAvailable {
		return ErrRootOptionsMissing
	}
	return builder.resolveHandler().Handle(command.Context(), rootOptions, Options{})
}

func (builder *CommandBuilder) resolveHandler() Handler {
	if builder.HandlerProvider != nil {
		if handler := builder.HandlerProvider(); handler != nil {
			return handler
		}
	}
	return NewService(builder.resolveLogger())
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
