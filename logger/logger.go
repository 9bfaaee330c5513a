package logger

import (
	"context"
	"log/slog"
	"os"
	"time"
)

type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

func NewLogger(service string) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

func (l *Logger) Info(action, message string) {
	l.log(slog.LevelInfo, action, message)
}

func (l *Logger) Warn(action, message string) {
	l.log(slog.LevelWarn, action, message)
}

func (l *Logger) Error(action, message string, err error) {
	l.handler.LogAttrs(
		context.TODO(),
		slog.LevelError,
		message,
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("error", err.Error()),
	)
}

func (l *Logger) log(level slog.Level, action, message string) {
	l.handler.LogAttrs(
		context.TODO(),
		level,
		message,
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
	)
}
