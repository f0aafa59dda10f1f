// Package logging provides structured logging for boxnote using zap.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger for structured logging across the
// accessor, render, and CLI packages.
type Logger struct {
	*zap.SugaredLogger
	config *Config
}

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum log level to output (debug, info, warn, error).
	Level string

	// Format determines output format: "console" (human-readable) or
	// "json" (machine-parseable).
	Format string

	// OutputPath is the file path for log output (empty = stdout only).
	OutputPath string

	// EnableCaller adds caller information to log entries.
	EnableCaller bool
}

var defaultLogger *Logger

// New creates a new logger instance with the provided configuration.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = &Config{Level: "info", Format: "console"}
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if cfg.Format == "json" {
		encoderConfig = zap.NewProductionEncoderConfig()
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	writeSyncs := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.OutputPath != "" {
		file, err := os.OpenFile(cfg.OutputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", cfg.OutputPath, err)
		}
		writeSyncs = append(writeSyncs, zapcore.AddSync(file))
	}
	writer := zapcore.NewMultiWriteSyncer(writeSyncs...)

	core := zapcore.NewCore(encoder, writer, level)

	var opts []zap.Option
	if cfg.EnableCaller {
		opts = append(opts, zap.AddCaller())
	}

	zapLogger := zap.New(core, opts...)

	return &Logger{SugaredLogger: zapLogger.Sugar(), config: cfg}, nil
}

// Init initializes the global logger instance.
func Init(cfg *Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	defaultLogger = l
	return nil
}

// Get returns the global logger instance, creating a default one if Init
// was never called.
func Get() *Logger {
	if defaultLogger == nil {
		l, _ := New(nil)
		defaultLogger = l
	}
	return defaultLogger
}

// WithFields returns a logger with the given key/value pairs attached.
func (l *Logger) WithFields(fields ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.With(fields...), config: l.config}
}

// WithNoteID returns a logger with note_id attached.
func (l *Logger) WithNoteID(noteID string) *Logger {
	return l.WithFields("note_id", noteID)
}

// WithPageID returns a logger with page_id attached.
func (l *Logger) WithPageID(pageID string) *Logger {
	return l.WithFields("page_id", pageID)
}

// WithStrokeID returns a logger with stroke_id attached.
func (l *Logger) WithStrokeID(strokeID string) *Logger {
	return l.WithFields("stroke_id", strokeID)
}

// WithError returns a logger with error attached.
func (l *Logger) WithError(err error) *Logger {
	return l.WithFields("error", err)
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q", level)
	}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}
