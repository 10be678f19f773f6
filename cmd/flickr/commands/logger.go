package commands

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logrusLogger implements flickr.Logger on top of logrus.
type logrusLogger struct {
	entry *logrus.Entry
}

// newLogger returns a stderr logger. Debug output is enabled by --verbose.
func newLogger(verbose bool) *logrusLogger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return &logrusLogger{entry: log.WithFields(logrus.Fields{"component": "flickr"})}
}

func (l *logrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}
