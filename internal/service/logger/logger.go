package logger

import (
	"royale_backend/internal/service/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AccessLogger records request handling; DBLogger records storage activity.
var (
	AccessLogger *zap.Logger
	DBLogger     *zap.Logger
)

func newFileLogger(path string) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.OutputPaths = []string{path}
	c.EncoderConfig.TimeKey = "timestamp"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return c.Build()
}

// InitLoggers builds both global loggers with output paths taken from the
// runtime configuration.
func InitLoggers(cfg *config.Config) error {
	var err error
	if AccessLogger, err = newFileLogger(cfg.AccessLogPath); err != nil {
		return err
	}
	DBLogger, err = newFileLogger(cfg.DBLogPath)
	return err
}

func SyncLoggers() error {
	if err := AccessLogger.Sync(); err != nil {
		return err
	}
	return DBLogger.Sync()
}
