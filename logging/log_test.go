package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel(LevelInfo) })

	cases := []struct {
		in       string
		expected zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelFatal, zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel},
	}

	for _, c := range cases {
		SetLevel(c.in)
		assert.Equal(t, c.expected, zapLevel.Level(), "SetLevel(%q)", c.in)
	}
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, Default, OrDefault(nil))

	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core).Sugar()
	got := OrDefault(l)
	got.Warnf("hello %s", "world")

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello world", logs.All()[0].Message)
}
