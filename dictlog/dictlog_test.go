package dictlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerFiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)
	l.Debug("should not appear")
	l.Info("should not appear either")
	require.Equal(t, 0, buf.Len())

	l.Warn("visible warning")
	require.Contains(t, buf.String(), "[WARN] visible warning")
}

func TestLoggerFormatsArgs(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)
	l.Error("count=%d name=%s", 3, "x")
	require.Contains(t, buf.String(), "[ERROR] count=3 name=x")
}

func TestSetLevelChangesFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)
	l.Info("hidden")
	require.Equal(t, 0, buf.Len())

	l.SetLevel(LevelInfo)
	l.Info("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestSetOutputRedirects(t *testing.T) {
	var first, second bytes.Buffer
	l := New(&first, LevelDebug)
	l.Info("to first")
	l.SetOutput(&second)
	l.Info("to second")

	require.True(t, strings.Contains(first.String(), "to first"))
	require.False(t, strings.Contains(first.String(), "to second"))
	require.Contains(t, second.String(), "to second")
}

func TestLevelStringNames(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "FATAL", LevelFatal.String())
}

func TestPackageLevelSetOutputAndSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelDebug)
	Debug("package level debug")
	require.Contains(t, buf.String(), "package level debug")

	SetLevel(LevelInfo)
	SetOutput(&buf)
}
