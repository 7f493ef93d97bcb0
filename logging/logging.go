package logging

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultMaxSizeMB is the rotation size of the log file when none is set.
const DefaultMaxSizeMB = 64

// ErrNegativeRotation is returned when a rotation limit is negative.
var ErrNegativeRotation = errors.New("log rotation limits must not be negative")

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// SetDefaults fills the rotation size for file output and reports whether
// anything changed.
func (c *LoggerConfig) SetDefaults() bool {
	if c.File != "" && c.MaxSizeMB == 0 {
		c.MaxSizeMB = DefaultMaxSizeMB

		return true
	}

	return false
}

// Validate validates the LoggerConfig.
func (c *LoggerConfig) Validate() error {
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		return ErrNegativeRotation
	}

	return nil
}

// NewLogger creates a new slog.Logger with JSON handler and the specified output.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// Output returns a rotating file writer when config.File is set, otherwise
// fallback. The file writer must be closed by the caller.
func Output(config LoggerConfig, fallback io.Writer) io.Writer {
	if config.File == "" {
		return fallback
	}

	config.SetDefaults()

	return &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
		Compress:   config.Compress,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
