package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestInit_DoesNotPanic(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: "development", Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		l := Init(cfg)
		l.Infof(WithRequestID(context.Background(), "abc"), "hello %s", "world")
		l.Debug(context.Background(), "debug line")
	}
	NewNop().Warn(context.Background(), "discarded")
}
