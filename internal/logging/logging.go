// Package logging builds clocky's logger: a rotated file under the config
// directory, mirrored to stderr in debug mode.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	// Dir is the config directory; logs go to Dir/logs/clocky.log.
	// Empty disables file logging.
	Dir string

	// Debug lowers the level to debug and mirrors records to Stderr.
	Debug bool

	Stderr io.Writer
}

// New creates the logger. The returned close function flushes and closes
// the log file and is always non-nil.
func New(cfg Config) (*log.Logger, func() error, error) {
	closer := func() error { return nil }
	var sinks []io.Writer

	if cfg.Dir != "" {
		logDir := filepath.Join(cfg.Dir, "logs")
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, closer, err
		}
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "clocky.log"),
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		sinks = append(sinks, fileWriter)
		closer = fileWriter.Close
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
		if cfg.Stderr != nil {
			sinks = append(sinks, cfg.Stderr)
		}
	}

	var writer io.Writer
	switch len(sinks) {
	case 0:
		writer = io.Discard
	case 1:
		writer = sinks[0]
	default:
		writer = io.MultiWriter(sinks...)
	}

	logger := log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "clocky",
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// DebugEnabled reports whether CLOCKY_DEBUG asks for debug logging.
func DebugEnabled() bool {
	switch os.Getenv("CLOCKY_DEBUG") {
	case "", "0", "false":
		return false
	default:
		return true
	}
}
