// Package logging is the diagnostic channel for imgx. Everything here goes
// to stderr so that stdout stays reserved for rendered model output.
package logging

import (
	"io"
	"log"
	"os"
)

// Level represents the logging level.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var (
	level  = LevelInfo
	logger = log.New(os.Stderr, "", 0)
)

// SetLevel sets the global log level.
func SetLevel(l Level) {
	level = l
}

// SetDebug enables debug-level logging.
func SetDebug(debug bool) {
	if debug {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}
}

// SetOutput redirects log output, primarily for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Errorf logs an error message.
func Errorf(format string, args ...any) {
	if level >= LevelError {
		logger.Printf("[ERROR] "+format, args...)
	}
}

// Warnf logs a warning message.
func Warnf(format string, args ...any) {
	if level >= LevelWarn {
		logger.Printf("[WARN] "+format, args...)
	}
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	if level >= LevelInfo {
		logger.Printf(format, args...)
	}
}

// Debugf logs a debug message, visible only with --debug.
func Debugf(format string, args ...any) {
	if level >= LevelDebug {
		logger.Printf("[DEBUG] "+format, args...)
	}
}
