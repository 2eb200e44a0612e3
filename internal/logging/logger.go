// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // One shared logger for the whole process.
var (
	defaultMu     sync.Mutex
	defaultLogger *log.Logger
)

// levelNames maps accepted level strings to charmbracelet levels.
//
//nolint:gochecknoglobals // Lookup table.
var levelNames = map[string]log.Level{
	"debug":   log.DebugLevel,
	"info":    log.InfoLevel,
	"warn":    log.WarnLevel,
	"warning": log.WarnLevel,
	"error":   log.ErrorLevel,
}

// ParseLevel resolves a level name case-insensitively, defaulting to
// info for anything it does not recognize.
func ParseLevel(level string) log.Level {
	if l, ok := levelNames[strings.ToLower(level)]; ok {
		return l
	}
	return log.InfoLevel
}

// New creates a logger writing to stderr at the given level. Timestamps
// and caller reporting stay off.
func New(level string) *log.Logger {
	logger := log.New(os.Stderr)
	logger.SetLevel(ParseLevel(level))
	return logger
}

// Default returns the shared default logger, creating it at info level
// on first use.
func Default() *log.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault replaces the shared default logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SetLevel updates the level of the shared default logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
