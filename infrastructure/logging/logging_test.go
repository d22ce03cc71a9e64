package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"solid-example/config"
	"solid-example/domain/shared"
	"solid-example/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

func TestFileLoggerOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logFile.txt")
	l := NewFileLogger(path)

	require.NoError(t, l.Log("first failure"))
	require.NoError(t, l.Log("second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	assert.Equal(t, path, l.FileName())
}

func TestFileLoggerContentsEqualMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logFile.txt")
	l := NewFileLogger(path)

	rapid.Check(t, func(rt *rapid.T) {
		msg := rapid.String().Draw(rt, "message")
		require.NoError(rt, l.Log(msg))

		data, err := os.ReadFile(path)
		require.NoError(rt, err)
		if string(data) != msg {
			rt.Fatalf("file contents %q, want %q", data, msg)
		}
	})
}

func TestFileLoggerUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "logFile.txt")

	err := NewFileLogger(path).Log("boom")

	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrIOFailure)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRotatingLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "db.log")
	l := NewRotatingLogger(config.LoggerConfig{FilePath: path, MaxSizeMB: 1})
	defer l.Close()

	require.NoError(t, l.Log("one"))
	require.NoError(t, l.Log("two"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, strings.Split(strings.TrimSpace(string(data)), "\n"))
}

func TestZapLoggerForwardsAtErrorLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer logger.Replace(zap.New(core))()

	require.NoError(t, NewZapLogger("database").Log("connection refused"))

	entries := logs.FilterMessage("connection refused").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "database", entries[0].ContextMap()["component"])
}

func TestErrorLoggerPrefixes(t *testing.T) {
	var got []string
	l := NewErrorLogger(shared.LoggerFunc(func(m string) error {
		got = append(got, m)
		return nil
	}))

	require.NoError(t, l.LogError("disk full"))
	assert.Equal(t, []string{"ERROR: disk full"}, got)
}
