package utils

import "context"

const (
	commonOptionsContextKeyConstant = commandContextKey("commonOptions")
)

type commandContextKey string

// CommonOptions captures the root-level settings resolved before any subcommand runs.
type CommonOptions struct {
	ConfigurationFilePath string
	LogLevel              LogLevel
	LogFormat             LogFormat
	ColorEnabled          bool
}

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithCommonOptions attaches the resolved common options to the provided context.
func (accessor CommandContextAccessor) WithCommonOptions(parentContext context.Context, options CommonOptions) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, commonOptionsContextKeyConstant, options)
}

// CommonOptions extracts the common options from the provided context.
func (accessor CommandContextAccessor) CommonOptions(executionContext context.Context) (CommonOptions, bool) {
	if executionContext == nil {
		return CommonOptions{}, false
	}
	options, optionsAvailable := executionContext.Value(commonOptionsContextKeyConstant).(CommonOptions)
	return options, optionsAvailable
}
