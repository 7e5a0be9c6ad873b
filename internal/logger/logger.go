package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// Env is the deployment environment, "dev" selects the console encoder.
	Env   string
	Level string
}

// ConfigFromEnv reads ALPHA_ENV and LOG_LEVEL.
func ConfigFromEnv() Config {
	return Config{
		Env:   os.Getenv("ALPHA_ENV"),
		Level: os.Getenv("LOG_LEVEL"),
	}
}

func New(cfg Config) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
			level = zapcore.InfoLevel
		}
	}

	var zc zap.Config
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}
	if strings.EqualFold(cfg.Env, "dev") {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		opts = append(opts, zap.Fields(zap.String("ALPHA_ENV", cfg.Env)))
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build(opts...)
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

type contextKey struct{}

func WithContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the request scoped logger, or the global one when the
// context carries none.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok && logger != nil {
			return logger
		}
	}
	return zap.S()
}

func init() {
	logger := New(ConfigFromEnv())
	zap.ReplaceGlobals(logger.Desugar())
}
