package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	content := `
log_level: DEBUG
engine:
  endpoint: "orca://127.0.0.1:5001"
  call_timeout: 10
`
	path := filepath.Join(t.TempDir(), "core.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.LogLevel, "DEBUG")
	assert.Equal(t, config.Engine.Endpoint, "orca://127.0.0.1:5001")
	assert.Equal(t, config.Engine.CallTimeout, 10*time.Second)
	// defaults
	assert.Equal(t, config.Engine.MaxProfiles, 10000)
}
