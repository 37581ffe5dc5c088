package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValueFields(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.Warn("contestant lookup failed", "contestant_id", "c-1", "error", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "c-1", fields["contestant_id"])
	assert.Equal(t, "boom", fields["error"])
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	core, logs := observer.New(LevelInfo)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "http request", "path", "/v1/contestants")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
}

func TestLogger_DropsBelowLevel(t *testing.T) {
	core, logs := observer.New(LevelWarn)
	logger := FromZap(zap.New(core))

	logger.Debug("noise")
	logger.Info("noise")
	logger.Error("signal")

	assert.Equal(t, 1, logs.Len())
}

func TestNew_WritesJSONWithServiceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Service: "contestants-api", Version: "v1.2.3", Output: &buf})

	logger.Info("started", "addr", ":8080")
	require.NoError(t, logger.Sync())

	var line map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "started", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "contestants-api", line["service"])
	assert.Equal(t, "v1.2.3", line["version"])
	assert.Equal(t, ":8080", line["addr"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, LevelError, ParseLevel("fatal"))
}

func TestDefaultLogger_NilSafe(t *testing.T) {
	SetDefault(nil)
	assert.NotNil(t, Default())

	var logger *Logger
	logger.Info("nil receiver does not panic")
	assert.NoError(t, logger.Sync())
}
