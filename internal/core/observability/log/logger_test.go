package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: LevelDebug, Format: FormatJSON, Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)

	logger.With(String("run_id", "abc")).Info("validated",
		Int("count", 3),
		Hex("digest", 0xff),
		Strings("ids", []string{"a.b.c"}),
		Duration("elapsed", time.Second),
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "validated", entry["msg"])
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Equal(t, "00000000000000ff", entry["digest"])
}

func TestUnknownFormat(t *testing.T) {
	_, err := New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestSetLevelFiltersEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewFromCore(core)

	logger.Debug("first")
	logger.SetLevel(LevelWarn)
	assert.Equal(t, LevelWarn, logger.GetLevel())
	logger.Info("dropped")
	logger.Error("kept", Error(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "kept", entries[1].Message)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestDerivedLoggerSharesLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewFromCore(core)
	child := logger.With(String("file", "x.json"))

	logger.SetLevel(LevelError)
	child.Info("dropped")
	child.Error("kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "x.json", logs.All()[0].ContextMap()["file"])
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Info("nothing")
	assert.Equal(t, LevelError, logger.GetLevel())
}
