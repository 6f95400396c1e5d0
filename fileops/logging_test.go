package fileops

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/errors"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{"", LogLevelInfo, false},
		{"warning", LogLevelWarn, false},
		{" error ", LogLevelError, false},
		{"verbose", LogLevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelWarn, Output: &buf})

	logger.Info(context.Background(), "hidden")
	logger.Warn(context.Background(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelDebug, Output: &buf, JSON: true}).
		WithOperation(OpDelete).
		WithPath("a.txt")

	logger.Error(context.Background(), "boom", "attempt", 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "boom", record["msg"])
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "delete", record["operation"])
	assert.Equal(t, "a.txt", record["path"])
	assert.Equal(t, float64(2), record["attempt"])
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	assert.Same(t, logger, logger.With("k", "v"))
	logger.Error(context.Background(), "discarded")

	var nilLogger *Logger
	assert.Nil(t, nilLogger.With("k", "v"))
	nilLogger.Info(context.Background(), "discarded")
}

func TestLogOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelDebug, Output: &buf, JSON: true})

	err := errors.New(errors.CodeBusy, "file is in use")
	logOperation(context.Background(), logger.WithOperation(OpMove).WithPath("a.txt"),
		3*time.Millisecond, []any{"dest", "b.txt"}, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "move", record["operation"])
	assert.Equal(t, "a.txt", record["path"])
	assert.Equal(t, "b.txt", record["dest"])
	assert.Equal(t, "RESOURCE_BUSY", record["code"])
	assert.Equal(t, false, record["success"])
	assert.Equal(t, float64(3), record["duration_ms"])

	buf.Reset()
	logOperation(context.Background(), logger, 0, nil, errors.New(errors.CodeInternal, "broken invariant"))
	record = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])

	logOperation(context.Background(), nil, 0, nil, nil)
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "warn", LogLevelWarn.String())
	assert.Equal(t, "LogLevel(9)", LogLevel(9).String())
}
