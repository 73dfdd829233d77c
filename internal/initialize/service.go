package initialize

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/gitgate/internal/utils"
)

const (
	initializeCompletedMessageConstant = "init completed"
	logFieldLogLevelConstant           = "log_level"
	logFieldConfigurationFileConstant  = "config_file"
)

// Options configures an init run. It currently carries no settings.
type Options struct{}

// Handler performs the init operation after the git gates pass.
type Handler interface {
	Handle(executionContext context.Context, rootOptions utils.CommonOptions, options Options) error
}

// Service is the default Handler. It has no side effects beyond a debug log entry.
type Service struct {
	logger *zap.Logger
}

// NewService constructs a Service; a nil logger is replaced by a no-op logger.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Handle always succeeds.
func (service *Service) Handle(executionContext context.Context, rootOptions utils.CommonOptions, options Options) error {
	service.logger.Debug(
		initializeCompletedMessageConstant,
		zap.String(logFieldLogLevelConstant, string(rootOptions.LogLevel)),
		zap.String(logFieldConfigurationFileConstant, rootOptions.ConfigurationFilePath),
	)
	return nil
}
