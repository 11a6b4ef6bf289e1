package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptation-engine/capability"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, capability.DefaultDistanceCacheSize, cfg.DistanceCacheSize)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default().Log, cfg.Log)
	assert.Equal(t, capability.DefaultDistanceCacheSize, cfg.DistanceCacheSize)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adaptation.yaml")
	content := `
log:
  level: debug
  format: json
metrics:
  enabled: true
distance_cache_size: 64
manifest: plugs/adaptation.yaml
packages:
  - ./plugs
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	require.NoError(t, Init(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 64, cfg.DistanceCacheSize)
	assert.Equal(t, "plugs/adaptation.yaml", cfg.Manifest)
	assert.Equal(t, []string{"./plugs"}, cfg.Packages)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ADAPTATION_LOG_LEVEL", "info")
	t.Setenv("ADAPTATION_DISTANCE_CACHE_SIZE", "128")

	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 128, cfg.DistanceCacheSize)
}

func TestInit_MissingExplicitFile(t *testing.T) {
	v := viper.New()
	require.Error(t, Init(v, filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.DistanceCacheSize = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "log.format")
	assert.Contains(t, err.Error(), "distance_cache_size")
}
