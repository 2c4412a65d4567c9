// Package logger provides structured logging for simsub commands.
package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Formatter formats log entries.
type Formatter = logrus.Formatter

// Logger handles structured logging of messages from code.
type Logger struct {
	logrus *logrus.Logger
	entry  *logrus.Entry
}

// New returns a new Logger instance. Arguments after the namespace are
// key-value pairs added to every message.
func New(ns string, args ...interface{}) *Logger {
	base := logrus.New()
	f := fields(args...)
	f["ns"] = ns
	return &Logger{base, base.WithFields(logrus.Fields(f))}
}

// NewLogger returns a new Logger instance configured by the given config.
func NewLogger(ns string, conf Config) *Logger {
	l := New(ns)
	l.Configure(conf)
	return l
}

// SetLevel sets the level of logging.
func (l *Logger) SetLevel(lvl string) {
	switch lvl {
	case "debug":
		l.logrus.SetLevel(logrus.DebugLevel)
	case "info":
		l.logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		l.logrus.SetLevel(logrus.WarnLevel)
	case "error":
		l.logrus.SetLevel(logrus.ErrorLevel)
	default:
		l.logrus.SetLevel(logrus.InfoLevel)
	}
}

// SetFormatter sets the formatter.
func (l *Logger) SetFormatter(f Formatter) {
	l.logrus.SetFormatter(f)
}

// SetOutput sets the logging output stream.
func (l *Logger) SetOutput(w io.Writer) {
	l.logrus.SetOutput(w)
}

// Discard configures the logger to discard all logs.
func (l *Logger) Discard() {
	l.SetOutput(io.Discard)
}

// Debug logs a debug message.
//
// After the first argument, arguments are key-value pairs which are
// written as structured logs.
//
//	log.Debug("Some message here", "key1", value1, "key2", value2)
func (l *Logger) Debug(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry.WithFields(logrus.Fields(fields(args...))).Debug(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry.WithFields(logrus.Fields(fields(args...))).Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry.WithFields(logrus.Fields(fields(args...))).Warn(msg)
}

// Error logs an error message.
//
// Error has a two-argument version that can be used as a shortcut.
//
//	err := submit()
//	log.Error("Couldn't submit job", err)
func (l *Logger) Error(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry.WithFields(logrus.Fields(fields(args...))).Error(msg)
}

// WithFields returns a child logger with the given fields added to all
// its messages.
func (l *Logger) WithFields(args ...interface{}) *Logger {
	defer recoverLogErr()
	return &Logger{l.logrus, l.entry.WithFields(logrus.Fields(fields(args...)))}
}

// PrintSimpleError prints out an error message with a red "ERROR:" prefix.
func PrintSimpleError(err error) {
	fmt.Printf("\x1b[31m%s\x1b[0m %s\n", "ERROR:", err.Error())
}

// recoverLogErr is used to recover from any panics during logging.
// Panics aren't expected of course, but logging should never crash
// a program, so this failsafe tries to prevent those crashes.
func recoverLogErr() {
	if r := recover(); r != nil {
		fmt.Println("Recovered from logging panic", r)
	}
}

func fields(args ...interface{}) map[string]interface{} {
	f := make(map[string]interface{}, len(args)/2)
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			f["error"] = err.Error()
		} else {
			f["unknown"] = args[0]
		}
		return f
	}
	for i := 0; i < len(args)-1; i += 2 {
		k, ok := args[i].(string)
		if !ok {
			k = fmt.Sprintf("%v", args[i])
		}
		f[k] = args[i+1]
	}
	if len(args)%2 != 0 && len(args) > 1 {
		f["unknown"] = args[len(args)-1]
	}
	return f
}
