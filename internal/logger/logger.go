// Package logger provides leveled logging backed by zap.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes leveled, timestamped messages to stderr. Log output never
// shares the terminal line with the interactive prompt on stdout.
type Logger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
}

// Config holds logger configuration
type Config struct {
	Level string
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{Level: "info"}
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a
// zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// New creates a new logger
func New(config Config) (*Logger, error) {
	parsed, err := ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}

	level := zap.NewAtomicLevelAt(parsed)
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return &Logger{
		sugar: zap.New(core).Sugar(),
		level: level,
	}, nil
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Info logs an informational message
func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level zapcore.Level) {
	l.level.SetLevel(level)
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() zapcore.Level {
	return l.level.Level()
}

// Close flushes any buffered log entries
func (l *Logger) Close() error {
	return l.sugar.Sync()
}
