package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger. JSON output is used
// when LOG_FORMAT=json so log shippers can parse fields directly.
func Init() {
	if os.Getenv("LOG_FORMAT") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(os.Stdout)

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	}
}

func Info(msg string, fields map[string]any) {
	logrus.WithFields(fields).Info(msg)
}

func Warn(msg string, fields map[string]any) {
	logrus.WithFields(fields).Warn(msg)
}

func Error(msg string, fields map[string]any) {
	logrus.WithFields(fields).Error(msg)
}

func Fatal(msg string, fields map[string]any) {
	logrus.WithFields(fields).Fatal(msg)
}
