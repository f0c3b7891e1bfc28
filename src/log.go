package aprs

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Library use should be quiet, so only warnings and above by default.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.WarnLevel,
	Prefix: "latlong",
})

// SetLogger replaces the package logger, e.g. to share one with an application.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func Logger() *log.Logger {
	return logger
}

func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}

// NewLogger builds a logger in the style used by the command line tools.
func NewLogger(w io.Writer, level log.Level, timestamps bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "latlong",
		ReportTimestamp: timestamps,
	})
}
