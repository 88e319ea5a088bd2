// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger writing to stderr at info level.
func New() Logger {
	return newLogger(os.Stderr, logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing to stderr at the named
// level (e.g. "debug", "info", "error").
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return newLogger(os.Stderr, lvl), nil
}

func newLogger(w io.Writer, level logrus.Level) *logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return &logger{Logger: l}
}

func (l *logger) Fatal(str string) {
	l.Logger.Fatal(str)
}
