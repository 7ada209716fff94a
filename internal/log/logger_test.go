package log

import (
	stdlog "log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, false)
	require.NoError(t, err)

	logger.Zap().Info("game ignored", zap.String("title", "Braid"))
	logger.Printf("saved %s", "darkMode")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"game ignored"`)
	assert.Contains(t, string(data), `"title":"Braid"`)
	assert.Contains(t, string(data), "saved darkMode")
}

func TestNew_DebugLevel(t *testing.T) {
	dir := t.TempDir()

	quiet, err := New(dir, false)
	require.NoError(t, err)
	quiet.Zap().Debug("hidden")
	require.NoError(t, quiet.Close())

	loud, err := New(dir, true)
	require.NoError(t, err)
	loud.Zap().Debug("visible")
	require.NoError(t, loud.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestL_BeforeInitIsNop(t *testing.T) {
	require.NoError(t, Close())
	assert.NotNil(t, L())
	L().Info("dropped")
}

func TestInit_SetsGlobal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, false))
	t.Cleanup(func() {
		_ = Close()
		stdlog.SetOutput(os.Stderr)
	})

	L().Warn("from global")
	Errorf("boom %d", 1)
	require.NoError(t, Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "from global")
	assert.Contains(t, string(data), "boom 1")
}
