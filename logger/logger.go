package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

var logger = zap.NewNop()

// Init replaces the no-op logger with a development or production one.
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch env {
	case EnvDev:
		l, err = zap.NewDevelopment()
	case EnvProd, "":
		l, err = zap.NewProduction()
	default:
		return errors.Errorf("unknown log env %q", env)
	}

	if err != nil {
		return errors.Wrap(err, "logger init")
	}

	logger = l
	return nil
}

// Set is used by tests to capture output.
func Set(l *zap.Logger) {
	logger = l
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Sync() {
	_ = logger.Sync()
}
