package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Logger is the interface for logging
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

// Fields is a set of structured key/value pairs attached to log lines.
type Fields = log.Fields

// Init configures the standard logger. format is "text" (default) or "json".
func Init(level, format string) {
	log.SetOutput(os.Stdout)
	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	// default info
	l, err := log.ParseLevel(level)
	if err != nil {
		l = log.InfoLevel
	}
	log.SetLevel(l)
}

func L() *log.Logger { return log.StandardLogger() }

// NewDefaultLogger creates a default logger
func NewDefaultLogger() Logger {
	return log.StandardLogger()
}

// With returns a logger that attaches fields to every line. Loggers that are
// not backed by logrus are returned unchanged.
func With(l Logger, fields Fields) Logger {
	switch v := l.(type) {
	case *log.Logger:
		return v.WithFields(fields)
	case *log.Entry:
		return v.WithFields(fields)
	case nil:
		return log.WithFields(fields)
	default:
		return l
	}
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
