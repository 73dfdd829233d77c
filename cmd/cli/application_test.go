package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/temirov/gitgate/cmd/cli"
)

const (
	testConfigurationFileNameConstant = "config.yaml"
	testColorDisabledConfiguration    = "common:\n  color: false\n"
	testUserConfigurationEnvironment  = "XDG_CONFIG_HOME"
	testColorEnvironmentVariable      = "GITGATE_COMMON_COLOR"
	testExplicitLocation              = "explicit"
	testUserLocation                  = "user"
	testWorkingDirectoryLocation      = "working_directory"
)

func TestEmbeddedDefaultConfiguration(testInstance *testing.T) {
	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)

	viperInstance := viper.New()
	viperInstance.SetConfigType(configurationType)
	require.NoError(testInstance, viperInstance.ReadConfig(bytes.NewReader(configurationData)))

	var configuration cli.ApplicationConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "mapstructure", Result: &configuration})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(viperInstance.AllSettings()))

	require.Equal(testInstance, cli.ApplicationCommonConfiguration{LogLevel: "warn", LogFormat: "structured", Color: true}, configuration.Common)
}

func TestEmbeddedDefaultConfigurationReturnsCopy(testInstance *testing.T) {
	firstCopy, _ := cli.EmbeddedDefaultConfiguration()
	firstCopy[0] = '#'

	secondCopy, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEqual(testInstance, firstCopy[0], secondCopy[0])
}

func TestApplicationColorPreferenceResolution(testInstance *testing.T) {
	testCases := []struct {
		name                  string
		configurationLocation string
		useConfigFlag         bool
		environmentValue      string
		extraArguments        []string
		expectedColorFlag     bool
	}{
		{name: "embedded_default", expectedColorFlag: true},
		{name: "explicit_configuration_file", configurationLocation: testExplicitLocation, useConfigFlag: true, expectedColorFlag: false},
		{name: "user_configuration_directory", configurationLocation: testUserLocation, expectedColorFlag: false},
		{name: "working_directory_configuration_ignored", configurationLocation: testWorkingDirectoryLocation, expectedColorFlag: true},
		{name: "environment_override", environmentValue: "false", expectedColorFlag: false},
		{name: "flag_overrides_file", configurationLocation: testExplicitLocation, useConfigFlag: true, extraArguments: []string{"--color", "yes"}, expectedColorFlag: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			userConfigurationRoot := testInstance.TempDir()
			testInstance.Setenv(testUserConfigurationEnvironment, userConfigurationRoot)
			workingDirectory := testInstance.TempDir()
			testInstance.Chdir(workingDirectory)

			arguments := []string{}
			configurationDirectory := ""
			switch testCase.configurationLocation {
			case testExplicitLocation:
				configurationDirectory = testInstance.TempDir()
			case testUserLocation:
				configurationDirectory = filepath.Join(userConfigurationRoot, "gitgate")
			case testWorkingDirectoryLocation:
				configurationDirectory = workingDirectory
			}
			if len(configurationDirectory) > 0 {
				configurationPath := writeConfiguration(testInstance, configurationDirectory, testColorDisabledConfiguration)
				if testCase.useConfigFlag {
					arguments = append(arguments, "--config", configurationPath)
				}
			}
			if len(testCase.environmentValue) > 0 {
				testInstance.Setenv(testColorEnvironmentVariable, testCase.environmentValue)
			}
			arguments = append(arguments, testCase.extraArguments...)

			application := cli.NewApplication()
			application.SetOutput(&bytes.Buffer{})

			require.ErrorIs(testInstance, application.ExecuteWithArguments(arguments), cli.ErrSubcommandRequired)
			require.Equal(testInstance, testCase.expectedColorFlag, application.ColorEnabled())
		})
	}
}

func TestApplicationIgnoresRepositoryConfigurationFile(testInstance *testing.T) {
	testInstance.Setenv(testUserConfigurationEnvironment, testInstance.TempDir())
	workingDirectory := testInstance.TempDir()
	testInstance.Chdir(workingDirectory)
	writeConfiguration(testInstance, workingDirectory, "common: [unterminated\n")

	application := cli.NewApplication()
	application.SetOutput(&bytes.Buffer{})

	require.ErrorIs(testInstance, application.ExecuteWithArguments(nil), cli.ErrSubcommandRequired)
}

func writeConfiguration(testInstance *testing.T, directory string, content string) string {
	testInstance.Helper()

	require.NoError(testInstance, os.MkdirAll(directory, 0o755))
	configurationPath := filepath.Join(directory, testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(content), 0o600))
	return configurationPath
}

func TestApplicationRejectsMissingConfigurationFile(testInstance *testing.T) {
	testInstance.Setenv(testUserConfigurationEnvironment, testInstance.TempDir())
	testInstance.Chdir(testInstance.TempDir())

	application := cli.NewApplication()
	application.SetOutput(&bytes.Buffer{})

	executionError := application.ExecuteWithArguments([]string{"--config", filepath.Join(testInstance.TempDir(), "absent.yaml")})
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "unable to load configuration")
}
