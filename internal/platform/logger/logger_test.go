package logger_test

import (
	"context"
	"testing"

	"pet-adoption/internal/platform/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logger.Level{
		"debug":   logger.Debug,
		"":        logger.Info,
		"INFO":    logger.Info,
		"warning": logger.Warn,
		"error":   logger.Error,
		"bogus":   logger.Info,
	}
	for in, want := range cases {
		require.Equal(t, want, logger.ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	require.Equal(t, logger.FormatJSON, logger.ParseFormat(" JSON "))
	require.Equal(t, logger.FormatText, logger.ParseFormat("text"))
	require.Equal(t, logger.FormatText, logger.ParseFormat(""))
}

func TestNew_RespectsLevel(t *testing.T) {
	l := logger.New(logger.Options{Level: logger.Warn, Format: logger.FormatJSON, App: "pet-adoption"})
	require.False(t, l.Core().Enabled(logger.Info))
	require.True(t, l.Core().Enabled(logger.Error))
}

func TestGet_FallsBackToDefault_AndWithFieldsScopes(t *testing.T) {
	core, logs := observer.New(logger.Debug)
	logger.Setup(zap.New(core))
	t.Cleanup(func() { logger.Setup(nil) })

	ctx := logger.WithFields(context.Background(), zap.String("request_id", "abc"))
	logger.Get(ctx).Info("hello")
	logger.Get(context.Background()).Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "abc", entries[0].ContextMap()["request_id"])
	require.NotContains(t, entries[1].ContextMap(), "request_id")
}
