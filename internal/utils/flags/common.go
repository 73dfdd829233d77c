package flags

const (
	// ConfigurationFlagName selects an explicit configuration file.
	ConfigurationFlagName = "config"
	// ConfigurationFlagUsage describes the configuration flag.
	ConfigurationFlagUsage = "Path to a gitgate configuration file"
	// LogLevelFlagName overrides the configured log level.
	LogLevelFlagName = "log-level"
	// LogLevelFlagUsage describes the log level flag.
	LogLevelFlagUsage = "Diagnostic log level"
	// LogFormatFlagName overrides the configured log format.
	LogFormatFlagName = "log-format"
	// LogFormatFlagUsage describes the log format flag.
	LogFormatFlagUsage = "Diagnostic log format"
	// ColorFlagName toggles colored error output.
	ColorFlagName = "color"
	// ColorFlagUsage describes the color flag.
	ColorFlagUsage = "Colorize error messages written to a terminal"
)
