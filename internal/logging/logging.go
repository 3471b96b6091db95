package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup returns the process logger. JSON formatting keeps warnings
// machine-parseable when the CLI is scripted; warn level keeps normal runs
// quiet.
func Setup() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stderr,
		Level: logrus.WarnLevel,
	}

	return &logger
}
