package logging

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var levelNames = map[string]logrus.Level{
	"debug":   logrus.DebugLevel,
	"info":    logrus.InfoLevel,
	"warn":    logrus.WarnLevel,
	"warning": logrus.WarnLevel,
	"error":   logrus.ErrorLevel,
}

var baseLogger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Level = logrus.InfoLevel
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.000000"}
	return l
}

// SetLogLevel parses and sets the global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	baseLogger.SetLevel(l)
}

// GetLogLevel returns the current global log level.
func GetLogLevel() logrus.Level { return baseLogger.GetLevel() }

// Logger exposes the underlying logger (tests attach hooks to it).
func Logger() *logrus.Logger { return baseLogger }

// Public helpers
func Debugf(format string, a ...interface{}) { baseLogger.Debugf(format, a...) }
func Infof(format string, a ...interface{})  { baseLogger.Infof(format, a...) }
func Warnf(format string, a ...interface{})  { baseLogger.Warnf(format, a...) }
func Errorf(format string, a ...interface{}) { baseLogger.Errorf(format, a...) }

// TimeTrack logs the duration of a phase at debug level.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
