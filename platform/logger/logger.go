// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("component", name)),
	}
}

// ScoringEvent logs the outcome of a scoring run for one customer.
func (l *Logger) ScoringEvent(customerID string, score int, temperature string) {
	l.Info("scoring_event",
		slog.String("customer_id", customerID),
		slog.Int("score", score),
		slog.String("temperature", temperature),
	)
}

// WorkflowEvent logs a state mutation produced by the workflow trigger.
func (l *Logger) WorkflowEvent(customerID, action, detail string) {
	l.Info("workflow_event",
		slog.String("customer_id", customerID),
		slog.String("action", action),
		slog.String("detail", detail),
	)
}

// ValidationRejected logs a rejected input (e.g. a weight configuration).
func (l *Logger) ValidationRejected(subject, reason string) {
	l.Warn("validation_rejected",
		slog.String("subject", subject),
		slog.String("reason", reason),
	)
}

// StoreError logs in-memory store errors.
func (l *Logger) StoreError(operation string, err error) {
	l.Error("store_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}
