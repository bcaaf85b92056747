package api

import (
	"fmt"
	"log/slog"
	"strings"
)

// restyLogger forwards the HTTP library's printf-style logs to slog.
type restyLogger struct {
	logger *slog.Logger
}

func newRestyLogger(logger *slog.Logger) *restyLogger {
	return &restyLogger{logger: logger.With("context", "robotoff_http")}
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(l.format(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(l.format(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(l.format(format, v...))
}

func (l *restyLogger) format(format string, v ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
