package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Level: "WARN"})
	assert.NoError(t, err)
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixmystl.log")

	l, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	l.Debug("hidden message")
	l.Info("mesh loaded", zap.Int("triangles", 12))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mesh loaded")
	assert.Contains(t, string(data), `"triangles":12`)
	assert.NotContains(t, string(data), "hidden message")
}

func TestInitReplacesGlobal(t *testing.T) {
	t.Cleanup(func() { Log = zap.NewNop() })

	require.NoError(t, Init("debug", ""))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))
	assert.Error(t, Init("loud", ""))
}

func TestNopBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Named("test").Info("dropped")
		Warn("dropped")
	})
}
