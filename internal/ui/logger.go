package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// Logger writes leveled, colored output to the console. Core packages
// never log; screens and commands do.
type Logger struct{}

// NewLogger creates a new logger
func NewLogger() *Logger {
	return &Logger{}
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	infoColor.Printf("[INFO] %s\n", fmt.Sprintf(format, args...))
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	warnColor.Printf("[WARN] %s\n", fmt.Sprintf(format, args...))
}

// Error logs an error message to stderr
func (l *Logger) Error(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, "[ERROR] %s\n", fmt.Sprintf(format, args...))
}

// Success logs a success message
func (l *Logger) Success(format string, args ...interface{}) {
	successColor.Printf("[OK] %s\n", fmt.Sprintf(format, args...))
}
