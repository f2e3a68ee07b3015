package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger builds a logrus.Logger configured from the recognized level
// labels (trace, debug, info, warn, error) and format names (text, json).
// An unrecognized level falls back to info rather than failing startup.
func newLogger(level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
