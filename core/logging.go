package core

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	loggerOnce sync.Once
	logger     *log.Logger
)

func getLogger() *log.Logger {
	loggerOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			CallerOffset:    1,
		})
		logger.SetLevel(log.InfoLevel)
	})
	return logger
}

// ConfigureLogging sets the prefix and level of the process logger. Level is
// one of debug, info, warn, error.
func ConfigureLogging(prefix, level string) error {
	l := getLogger()
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	l.SetPrefix(prefix)
	l.SetLevel(lvl)
	return nil
}

// SetLogOutput redirects the process logger, mostly for tests.
func SetLogOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

// LogFatal logs and exits with status 1.
func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
