package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestInfoIncludesServiceAndMessage(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Service: "draft-orders", Output: &buf})

	log.Info(context.Background(), "request completed")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "draft-orders", entry["service"])
	assert.Equal(t, "request completed", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.NotEmpty(t, entry["time"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Service: "draft-orders", Level: zerolog.InfoLevel, Output: &buf})

	log.Debug(context.Background(), "noise")

	assert.Zero(t, buf.Len())
}

func TestContextFieldsCarryAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Service: "draft-orders", Output: &buf})

	ctx := log.WithRequestID(context.Background(), "req-123")
	ctx = log.WithFields(ctx, map[string]any{"function": "create-draft-order"})
	log.Info(ctx, "done")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "create-draft-order", entry["function"])
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Service: "draft-orders", Output: &buf})

	log.Error(context.Background(), "upstream call failed", errors.New("connection refused"))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "connection refused", entry["error"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		Title    string
		Value    string
		Expected zerolog.Level
	}{
		{Title: "empty defaults to info", Value: "", Expected: zerolog.InfoLevel},
		{Title: "debug", Value: "debug", Expected: zerolog.DebugLevel},
		{Title: "mixed case", Value: " WARN ", Expected: zerolog.WarnLevel},
		{Title: "unknown defaults to info", Value: "loud", Expected: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			assert.Equal(t, tt.Expected, ParseLevel(tt.Value))
		})
	}
}
