package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"WARN":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got, s)
	}

	_, ok := ParseLogLevel("verbose")
	require.False(t, ok)
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zapcore.DebugLevel)

	ctx := ToContext(context.Background(), l)
	ctx = WithName(ctx, "tick")
	ctx = WithKV(ctx, "pin", 4)

	InfoKV(ctx, "display changed", "text", "Motion")
	Debugf(ctx, "sample %v", true)

	out := buf.String()
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "tick")
	require.Contains(t, out, "display changed")
	require.Contains(t, out, `"text": "Motion"`)
	require.Contains(t, out, `"pin": 4`)
	require.Contains(t, out, "sample true")
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	require.Same(t, Logger(), FromContext(context.Background()))
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	ctx := ToContext(context.Background(), New(&buf, zapcore.WarnLevel))

	Infof(ctx, "hidden")
	Warnf(ctx, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}
