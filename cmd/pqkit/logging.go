package main

import (
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// LoggerConfig holds the logging flags and the logger built from them.
type LoggerConfig struct {
	Level string

	out    io.Writer
	logger log.Logger
}

// Register adds the logging flags to app and builds the logger before any command runs.
func (l *LoggerConfig) Register(app *kingpin.Application) {
	app.Flag("log.level", "Only log messages with the given severity or above. One of: debug, info, warn, error.").
		Default("info").
		Envar(envPrefix + "LOG_LEVEL").
		EnumVar(&l.Level, "debug", "info", "warn", "error")
	app.PreAction(l.setup)
}

func (l *LoggerConfig) setup(*kingpin.ParseContext) error {
	var allow level.Option
	switch l.Level {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(l.out))
	logger = level.NewFilter(logger, allow)
	l.logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	return nil
}

// Logger returns the configured logger, or a no-op logger before setup.
func (l *LoggerConfig) Logger() log.Logger {
	if l.logger == nil {
		return log.NewNopLogger()
	}

	return l.logger
}
