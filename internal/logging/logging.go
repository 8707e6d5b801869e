package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns a logger writing plain text to out. Stdout is kept
// free for QIF output, so callers normally pass stderr.
func SetupLogging(out io.Writer, verbose bool) *logrus.Logger {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   out,
		Level: level,
		Hooks: make(logrus.LevelHooks),
	}

	return &logger
}
