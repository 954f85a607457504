package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/fixedstep/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	level, err := logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zap.InfoLevel, level)

	level, err = logging.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zap.WarnLevel, level)

	_, err = logging.ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.log")

	logger, err := logging.New("debug", path)
	require.NoError(t, err)

	logger.Debug("loop started", zap.Int("scene", 0))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"loop started"`)
	assert.Contains(t, string(data), `"scene":0`)
}
