package logger

import (
	"io"
	"os"
	"strings"

	"github.com/devfolio/dashboard/config"
	"github.com/sirupsen/logrus"
)

var levels = map[string]logrus.Level{
	"error":   logrus.ErrorLevel,
	"warn":    logrus.WarnLevel,
	"warning": logrus.WarnLevel,
	"info":    logrus.InfoLevel,
	"debug":   logrus.DebugLevel,
}

// Setup configures the standard logrus logger from the LOGS section, writing to stderr
func Setup(cfg config.Config) {
	SetupWriter(cfg, os.Stderr)
}

// SetupWriter is Setup with an explicit destination
func SetupWriter(cfg config.Config, w io.Writer) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if cfg.Logs.OutputLogsAsJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetLevel(Level(cfg.Logs.Level))
}

// Level converts a case insensitive level name. Unknown names fall back to
// error so a typo never floods the output.
func Level(name string) logrus.Level {
	if level, found := levels[strings.ToLower(strings.TrimSpace(name))]; found {
		return level
	}
	return logrus.ErrorLevel
}

// Component returns an entry tagged with the emitting component
func Component(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}
