package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// New creates a configured logrus logger. Development gets human readable
// text at debug level, every other environment JSON at info level. A valid
// level string overrides the environment default.
func New(appName, env, level string) *logrus.Logger {
	return NewWithOutput(appName, env, level, os.Stdout)
}

// NewWithOutput is New writing to out.
func NewWithOutput(appName, env, level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(lvl)
		} else {
			logger.WithField("level", level).Warn("unknown log level, keeping default")
		}
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Debug("logger initialized")
	return logger
}

// Badger routes badger's internal log output through logger. Badger reports
// compaction and startup chatter at info level; it is demoted to debug.
func Badger(logger logrus.FieldLogger) badger.Logger {
	if logger == nil {
		return nil
	}
	return &badgerLogger{entry: logger.WithField("component", "badger")}
}

type badgerLogger struct {
	entry *logrus.Entry
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.entry.Error(trim(format, args))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.entry.Warn(trim(format, args))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.entry.Debug(trim(format, args))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debug(trim(format, args))
}

func trim(format string, args []interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
