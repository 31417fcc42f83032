// Package logger holds the process-wide charmbracelet logger. Output goes to
// a rotated file under the config directory and, when asked, to stderr.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/moodpet/internal/constants"
)

// Rotation limits for the log file
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

// Logger is nil until Init succeeds. The package helpers and Component
// tolerate that, so packages may log before main configures output.
var Logger *log.Logger

// Config selects where log lines go and how verbose they are
type Config struct {
	Debug     bool
	ConfigDir string
	// Stderr mirrors log output to stderr even outside debug mode. The TUI
	// leaves this off so log lines never tear the alt screen.
	Stderr bool
}

// File is the path of the active log file for configDir
func File(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

// Init builds the global logger from cfg
func Init(cfg Config) error {
	path := File(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	Logger = log.NewWithOptions(cfg.output(path), log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           cfg.level(),
		Prefix:          constants.AppName,
	})
	return nil
}

func (cfg Config) level() log.Level {
	if cfg.Debug {
		return log.DebugLevel
	}
	return log.InfoLevel
}

func (cfg Config) output(path string) io.Writer {
	var out io.Writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	if cfg.Debug || cfg.Stderr {
		out = io.MultiWriter(os.Stderr, out)
	}
	return out
}

// Component returns a logger tagged with name. Before Init it discards output.
func Component(name string) *log.Logger {
	if Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{Prefix: name})
	}
	return Logger.With("component", name)
}

func logAt(level log.Level, msg string, keyvals []interface{}) {
	if Logger != nil {
		Logger.Log(level, msg, keyvals...)
	}
}

func Debug(msg string, keyvals ...interface{}) { logAt(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...interface{}) { logAt(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...interface{}) { logAt(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...interface{}) { logAt(log.ErrorLevel, msg, keyvals) }
