package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)
	l.Error("shown %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 2")
	assert.Contains(t, out, "[ERROR] shown 3")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Info("nothing") })
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.Debug("before")
	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	l.Debug("after")
	assert.Contains(t, buf.String(), "[DEBUG] after")
	assert.NotContains(t, buf.String(), "before")
}
