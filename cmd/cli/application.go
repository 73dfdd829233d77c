package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/gitgate/internal/execshell"
	"github.com/temirov/gitgate/internal/initialize"
	"github.com/temirov/gitgate/internal/preflight"
	"github.com/temirov/gitgate/internal/switching"
	"github.com/temirov/gitgate/internal/ui"
	"github.com/temirov/gitgate/internal/utils"
	flagutils "github.com/temirov/gitgate/internal/utils/flags"
)

const (
	applicationNameConstant                 = "gitgate"
	applicationShortDescriptionConstant     = "Run repository commands behind git preflight checks"
	applicationLongDescriptionConstant      = "gitgate confirms that git 2.30.0 or newer is installed and that the current directory is a git work tree before running init or switch."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	commonColorConfigKeyConstant            = commonConfigurationKeyConstant + ".color"
	environmentPrefixConstant               = "GITGATE"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	userConfigurationDirectoryNameConstant  = "gitgate"
	logLevelSubjectConstant                 = "log level"
	logFormatSubjectConstant                = "log format"
	configurationInitializedMessageConstant = "configuration initialized"
	preflightStartedMessageConstant         = "running git preflight checks"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	logFieldCommandNameConstant             = "command_name"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	executorCreationErrorTemplateConstant   = "unable to create git executor: %w"
	gateCreationErrorTemplateConstant       = "unable to create git preflight gate: %w"
	defaultLogLevelConstant                 = utils.LogLevelWarn
	defaultLogFormatConstant                = utils.LogFormatStructured
	defaultColorEnabledConstant             = true
	subcommandRequiredMessageConstant       = "a subcommand is required: init or switch"
)

// ErrSubcommandRequired indicates gitgate was invoked without init or switch.
var ErrSubcommandRequired = errors.New(subcommandRequiredMessageConstant)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
}

// ApplicationCommonConfiguration stores settings shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Color     bool   `mapstructure:"color"`
}

// Application wires the Cobra root command, configuration loader, loggers, and git preflight gate.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	consoleLogger          *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	colorFlagValue         bool
	commandContextAccessor utils.CommandContextAccessor
	commandRunner          execshell.CommandRunner
	initializeHandler      initialize.Handler
	switchHandler          switching.Handler
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		configurationSearchPaths(),
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
		consoleLogger:       zap.NewNop(),
		configuration: ApplicationConfiguration{
			Common: ApplicationCommonConfiguration{
				LogLevel:  string(defaultLogLevelConstant),
				LogFormat: string(defaultLogFormatConstant),
				Color:     defaultColorEnabledConstant,
			},
		},
		commandContextAccessor: utils.NewCommandContextAccessor(),
		commandRunner:          execshell.NewOSCommandRunner(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return ErrSubcommandRequired
		},
	}

	cobraCommand.SetContext(context.Background())
	persistentFlags := cobraCommand.PersistentFlags()
	persistentFlags.StringVar(&application.configurationFilePath, flagutils.ConfigurationFlagName, "", flagutils.ConfigurationFlagUsage)
	persistentFlags.StringVar(
		&application.logLevelFlagValue,
		flagutils.LogLevelFlagName,
		"",
		flagutils.FormatChoiceUsage(string(defaultLogLevelConstant), utils.SupportedLogLevels(), flagutils.LogLevelFlagUsage),
	)
	persistentFlags.StringVar(
		&application.logFormatFlagValue,
		flagutils.LogFormatFlagName,
		"",
		flagutils.FormatChoiceUsage(string(defaultLogFormatConstant), utils.SupportedLogFormats(), flagutils.LogFormatFlagUsage),
	)
	flagutils.AddToggleFlag(persistentFlags, &application.colorFlagValue, flagutils.ColorFlagName, "", defaultColorEnabledConstant, flagutils.ColorFlagUsage)

	initializeBuilder := initialize.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		HandlerProvider: func() initialize.Handler {
			return application.initializeHandler
		},
	}
	initializeCommand, initializeBuildError := initializeBuilder.Build()
	if initializeBuildError == nil {
		cobraCommand.AddCommand(initializeCommand)
	}

	switchBuilder := switching.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		HandlerProvider: func() switching.Handler {
			return application.switchHandler
		},
	}
	switchCommand, switchBuildError := switchBuilder.Build()
	if switchBuildError == nil {
		cobraCommand.AddCommand(switchCommand)
	}

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy with the process arguments and ensures logger flushing.
func (application *Application) Execute() error {
	return application.ExecuteWithArguments(os.Args[1:])
}

// ExecuteWithArguments runs the command hierarchy with the provided arguments.
func (application *Application) ExecuteWithArguments(arguments []string) error {
	normalizedArguments := flagutils.NormalizeToggleArguments(arguments)
	if normalizedArguments == nil {
		normalizedArguments = []string{}
	}
	application.rootCommand.SetArgs(normalizedArguments)

	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// ColorEnabled reports the resolved color preference for error output.
func (application *Application) ColorEnabled() bool {
	return application.configuration.Common.Color
}

// SetOutput redirects help and usage output.
func (application *Application) SetOutput(writer io.Writer) {
	application.rootCommand.SetOut(writer)
	application.rootCommand.SetErr(writer)
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(defaultLogLevelConstant),
		commonLogFormatConfigKeyConstant: string(defaultLogFormatConstant),
		commonColorConfigKeyConstant:     defaultColorEnabledConstant,
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}
	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, flagutils.LogLevelFlagName) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}
	if application.persistentFlagChanged(command, flagutils.LogFormatFlagName) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}
	if application.persistentFlagChanged(command, flagutils.ColorFlagName) {
		application.configuration.Common.Color = application.colorFlagValue
	}

	logLevel, logLevelError := flagutils.ParseChoice(logLevelSubjectConstant, application.configuration.Common.LogLevel, utils.SupportedLogLevels())
	if logLevelError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, logLevelError)
	}
	logFormat, logFormatError := flagutils.ParseChoice(logFormatSubjectConstant, application.configuration.Common.LogFormat, utils.SupportedLogFormats())
	if logFormatError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, logFormatError)
	}
	application.configuration.Common.LogLevel = logLevel
	application.configuration.Common.LogFormat = logFormat

	loggerOutputs, loggerCreationError := application.loggerFactory.CreateLoggerOutputs(utils.LogLevel(logLevel), utils.LogFormat(logFormat))
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}
	application.logger = loggerOutputs.DiagnosticLogger
	application.consoleLogger = loggerOutputs.ConsoleLogger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, logLevel),
		zap.String(configurationLogFormatFieldConstant, logFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	if command == nil {
		return nil
	}

	updatedContext := application.commandContextAccessor.WithCommonOptions(command.Context(), application.commonOptions())
	command.SetContext(updatedContext)
	if rootCommand := command.Root(); rootCommand != nil {
		rootCommand.SetContext(updatedContext)
	}

	if !preflight.RequiresPreflight(command) {
		return nil
	}
	return application.runPreflight(command)
}

func (application *Application) runPreflight(command *cobra.Command) error {
	application.logger.Debug(preflightStartedMessageConstant, zap.String(logFieldCommandNameConstant, command.Name()))

	gitExecutor, executorError := application.newGitExecutor()
	if executorError != nil {
		return fmt.Errorf(executorCreationErrorTemplateConstant, executorError)
	}

	gate, gateError := preflight.NewGate(application.logger, gitExecutor)
	if gateError != nil {
		return fmt.Errorf(gateCreationErrorTemplateConstant, gateError)
	}

	return gate.Verify(command.Context())
}

func (application *Application) newGitExecutor() (*execshell.ShellExecutor, error) {
	if !application.humanReadableLoggingEnabled() {
		return execshell.NewShellExecutor(application.logger, application.commandRunner)
	}
	return execshell.NewShellExecutorWithObserver(
		application.logger,
		application.commandRunner,
		ui.NewConsoleCommandEventLogger(application.consoleLogger),
	)
}

func (application *Application) commonOptions() utils.CommonOptions {
	return utils.CommonOptions{
		ConfigurationFilePath: application.configurationMetadata.ConfigFileUsed,
		LogLevel:              utils.LogLevel(application.configuration.Common.LogLevel),
		LogFormat:             utils.LogFormat(application.configuration.Common.LogFormat),
		ColorEnabled:          application.configuration.Common.Color,
	}
}

func (application *Application) humanReadableLoggingEnabled() bool {
	return utils.LogFormat(application.configuration.Common.LogFormat) == utils.LogFormatConsole
}

func (application *Application) flushLogger() error {
	if syncError := syncLoggerInstance(application.logger); syncError != nil {
		return syncError
	}
	return syncLoggerInstance(application.consoleLogger)
}

func syncLoggerInstance(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}

	syncError := logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}
	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}
	return false
}

func configurationSearchPaths() []string {
	userConfigurationDirectory, userConfigurationError := os.UserConfigDir()
	if userConfigurationError != nil {
		return nil
	}
	return []string{filepath.Join(userConfigurationDirectory, userConfigurationDirectoryNameConstant)}
}
