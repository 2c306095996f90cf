package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/orcastack/core/types"
)

var (
	globalLogger zerolog.Logger
	sentryDSN    string
)

func init() {
	globalLogger = zerolog.New(consoleWriter()).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// SetupLog inits the global logger and the optional sentry relay
func SetupLog(ctx context.Context, config *types.Config) error {
	level, err := zerolog.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		return err
	}
	globalLogger = zerolog.New(consoleWriter()).With().Timestamp().Logger().Level(level)

	sentryDSN = config.SentryDSN
	if sentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: sentryDSN}); err != nil {
			return err
		}
		WithFunc("log.SetupLog").Info(ctx, "sentry relay enabled")
	}
	return nil
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC822,
	}
}

// Fatalf forwards to sentry
func Fatalf(ctx context.Context, err error, format string, args ...any) {
	fatalf(ctx, err, format, nil, args...)
}

// Warnf is Warnf
func Warnf(ctx context.Context, format string, args ...any) {
	warnf(ctx, format, nil, args...)
}

// Warn is Warn
func Warn(ctx context.Context, args ...any) {
	Warnf(ctx, "%+v", args...)
}

// Infof is Infof
func Infof(ctx context.Context, format string, args ...any) {
	infof(ctx, format, nil, args...)
}

// Info is Info
func Info(ctx context.Context, args ...any) {
	Infof(ctx, "%+v", args...)
}

// Debugf is Debugf
func Debugf(ctx context.Context, format string, args ...any) {
	debugf(ctx, format, nil, args...)
}

// Debug is Debug
func Debug(ctx context.Context, args ...any) {
	Debugf(ctx, "%+v", args...)
}

// Errorf forwards to sentry
func Errorf(ctx context.Context, err error, format string, args ...any) {
	errorf(ctx, err, format, nil, args...)
}

// Error forwards to sentry
func Error(ctx context.Context, err error, args ...any) {
	Errorf(ctx, err, "%+v", args...)
}
