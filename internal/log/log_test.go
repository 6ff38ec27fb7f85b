package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverPanic(t *testing.T) {
	dir := t.TempDir()
	cleaned := false

	func() {
		defer RecoverPanic("test", dir, func() { cleaned = true })
		panic("boom")
	}()

	assert.True(t, cleaned)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "atelier-panic-test-"))

	b, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Panic in test: boom")
	assert.Contains(t, string(b), "Stack Trace:")
}

func TestRecoverPanicNoPanic(t *testing.T) {
	dir := t.TempDir()
	cleaned := false

	func() {
		defer RecoverPanic("test", dir, func() { cleaned = true })
	}()

	assert.False(t, cleaned)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSetupLogsRecoveredPanics(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "atelier.log")

	Setup(logFile, true)
	require.True(t, Initialized())

	func() {
		defer RecoverPanic("setup", t.TempDir(), nil)
		panic("kaboom")
	}()

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"Recovered from panic"`)
	assert.Contains(t, string(b), `"panic":"kaboom"`)
}
