package logger

import (
	"os"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	logger.Out = os.Stdout
	logger.Formatter = &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}

	// LOG_LEVEL accepts the usual logrus names (debug, info, warn, error).
	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
}

// GetLogger returns an entry annotated with the calling function.
func GetLogger() *log.Entry {
	pc, _, _, _ := runtime.Caller(1)
	return logger.WithField("function", runtime.FuncForPC(pc).Name())
}
