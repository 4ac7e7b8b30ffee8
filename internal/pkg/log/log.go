package log

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var logger *otelzap.Logger

// Logger is the ctx-aware logging facade used by usecases and repositories.
type Logger interface {
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type zapLogger struct {
	log *otelzap.Logger
}

// Setup builds the underlying otelzap logger. Used directly by handlers and tests.
func Setup() *otelzap.Logger {
	zapLog, err := zap.NewProduction()
	if err != nil {
		zapLog = zap.NewNop()
	}
	return otelzap.New(zapLog)
}

// SetupLogger is kept as an alias of Setup for the service bootstrap.
func SetupLogger() *otelzap.Logger {
	return Setup()
}

func Init(l *otelzap.Logger) {
	logger = l
}

func GetLogger() Logger {
	return &zapLogger{log: logger}
}

func (l *zapLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.Ctx(ctx).Info(msg, fields(args)...)
}

func (l *zapLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.Ctx(ctx).Warn(msg, fields(args)...)
}

func (l *zapLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.Ctx(ctx).Error(msg, fields(args)...)
}

func fields(args []interface{}) []zap.Field {
	if len(args) == 0 {
		return nil
	}
	fs := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		fs = append(fs, zap.Any(fmt.Sprintf("arg_%d", i), arg))
	}
	return fs
}
