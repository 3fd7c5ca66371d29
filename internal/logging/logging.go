// Package logging builds the logrus logger shared by the commands.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel applies when neither flag nor config sets one.
const DefaultLevel = "info"

// ParseLevel accepts debug, info, warn and error. Empty means DefaultLevel.
func ParseLevel(s string) (logrus.Level, error) {
	switch s {
	case "":
		return logrus.InfoLevel, nil
	case "debug", "info", "warn", "error":
		return logrus.ParseLevel(s)
	}
	return logrus.InfoLevel, fmt.Errorf("invalid log level %q (debug | info | warn | error)", s)
}

// New returns a logger writing plain text to w. quiet forces error level.
func New(w io.Writer, level logrus.Level, quiet bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	if quiet {
		level = logrus.ErrorLevel
	}
	log.SetLevel(level)
	return log
}
