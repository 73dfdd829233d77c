package switching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/gitgate/internal/utils"
)

func TestServiceHandleSucceeds(testInstance *testing.T) {
	testCases := []struct {
		name        string
		rootOptions utils.CommonOptions
	}{
		{name: "empty_root_options", rootOptions: utils.CommonOptions{}},
		{name: "configured_root_options", rootOptions: utils.CommonOptions{ConfigurationFilePath: "/tmp/config.yaml", LogLevel: utils.LogLevelDebug}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zapcore.DebugLevel)
			service := NewService(zap.New(observerCore))

			require.NoError(testInstance, service.Handle(context.Background(), testCase.rootOptions, Options{}))

			entries := observedLogs.All()
			require.Len(testInstance, entries, 1)
			require.Equal(testInstance, zapcore.DebugLevel, entries[0].Level)
			require.Equal(testInstance, testCase.rootOptions.ConfigurationFilePath, entries[0].ContextMap()[logFieldConfigurationFileConstant])
		})
	}
}

func TestNewServiceToleratesNilLogger(testInstance *testing.T) {
	require.NoError(testInstance, NewService(nil).Handle(context.Background(), utils.CommonOptions{}, Options{}))
}
