package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewLogger(t *testing.T) {
	testCases := []struct {
		name          string
		loglevel      string
		logformat     string
		expectedError error
	}{
		{
			name:          "valid logger",
			loglevel:      "INFO",
			logformat:     "text",
			expectedError: nil,
		},
		{
			name:          "valid logger",
			loglevel:      "INFO",
			logformat:     "json",
			expectedError: nil,
		},
		{
			name:          "valid logger",
			loglevel:      "DEBUG",
			logformat:     "tint",
			expectedError: nil,
		},
		{
			name:          "invalid log format",
			loglevel:      "INFO",
			logformat:     "invalid format",
			expectedError: ErrLoggerInvalidLogFormat,
		},
		{
			name:          "invalid log level",
			loglevel:      "INVALID_LEVEL",
			logformat:     "text",
			expectedError: ErrLoggerInvalidLogLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			sut, err := NewLogger(tc.loglevel, tc.logformat)

			if sut != nil {
				sut.Info("test")
			}

			// then
			assert.ErrorIs(t, err, tc.expectedError)
			if tc.expectedError == nil {
				assert.Equal(t, sut.Enabled(context.Background(), slog.LevelInfo), true)
			}
		})
	}
}

func Test_EventIDHandler(t *testing.T) {
	t.Run("event ID from context ends up in the record", func(t *testing.T) {
		// given
		buf := &bytes.Buffer{}
		sut := slog.New(eventIDHandler{Handler: slog.NewJSONHandler(buf, nil)})

		//nolint:staticcheck // use string key on purpose
		ctx := context.WithValue(context.Background(), EventIDField, "e4b1")

		// when
		sut.InfoContext(ctx, "broadcast accepted")

		// then
		require.Contains(t, buf.String(), `"event_id":"e4b1"`)
	})

	t.Run("no event ID, no attribute", func(t *testing.T) {
		// given
		buf := &bytes.Buffer{}
		sut := slog.New(eventIDHandler{Handler: slog.NewJSONHandler(buf, nil)})

		// when
		sut.InfoContext(context.Background(), "broadcast accepted")

		// then
		require.NotContains(t, buf.String(), "event_id")
	})
}
