package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

func setupLogging(out io.Writer, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	switch strings.ToLower(format) {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format: %s", format)
	}

	logrus.SetOutput(out)
	logrus.SetLevel(lvl)
	return nil
}
