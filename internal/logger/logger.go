package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// EventIDField is the context key under which the per-request event ID is
// stored. Records logged with a context carrying it get the ID as an
// attribute.
const EventIDField = "event_id"

var (
	ErrLoggerInvalidLogLevel  = fmt.Errorf("invalid log level")
	ErrLoggerInvalidLogFormat = fmt.Errorf("invalid log format")
)

func NewLogger(logLevel, logFormat string) (*slog.Logger, error) {
	slogLevel, err := getSlogLevel(logLevel)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	switch logFormat {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})
	case "text":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})
	case "tint":
		handler = tint.NewHandler(os.Stdout, &tint.Options{Level: slogLevel})
	default:
		return nil, errors.Join(ErrLoggerInvalidLogFormat, fmt.Errorf("log format: %s", logFormat))
	}

	return slog.New(eventIDHandler{Handler: handler}), nil
}

// eventIDHandler copies the event ID out of the record's context so the
// log lines of one request can be correlated.
type eventIDHandler struct {
	slog.Handler
}

func (h eventIDHandler) Handle(ctx context.Context, record slog.Record) error {
	if eventID, ok := ctx.Value(EventIDField).(string); ok {
		record.AddAttrs(slog.String(EventIDField, eventID))
	}

	return h.Handler.Handle(ctx, record)
}

func (h eventIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return eventIDHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h eventIDHandler) WithGroup(name string) slog.Handler {
	return eventIDHandler{Handler: h.Handler.WithGroup(name)}
}

func getSlogLevel(logLevel string) (slog.Level, error) {
	switch logLevel {
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	}

	return slog.LevelInfo, errors.Join(ErrLoggerInvalidLogLevel, fmt.Errorf("log level: %s", logLevel))
}
