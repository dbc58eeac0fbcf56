// Package logger builds the application's zap logger.
//
// The TUI owns stdout, so log records go to a rotated file. Development
// mode additionally tees a console core to stderr for non-interactive
// commands.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/abhisek/fractiz/internal/config"
)

// Options selects the sinks for New.
type Options struct {
	// Console tees a human-readable core to Stderr. Ignored unless the
	// config selects the development environment.
	Console bool

	// Stderr is the console sink. Defaults to os.Stderr.
	Stderr io.Writer
}

// New builds a logger from cfg. The returned closer flushes and closes the
// log file.
func New(cfg *config.Config, opts Options) (*zap.Logger, func() error, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	path := cfg.Log.File
	if path == "" {
		path, err = config.DefaultLogPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   true,
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), level),
	}

	if opts.Console && cfg.Development() {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		consoleConfig := encoderConfig
		consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleConfig),
			zapcore.AddSync(stderr),
			level,
		))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	if cfg.Development() {
		log = log.WithOptions(zap.Development())
	}

	closer := func() error {
		_ = log.Sync()
		return rotator.Close()
	}
	return log, closer, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
