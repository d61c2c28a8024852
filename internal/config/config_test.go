package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
current_rate: "0.1353"
tou_location: seattle
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.1353", cfg.CurrentRate)
	assert.Equal(t, "seattle", cfg.TouLocation)
	assert.Nil(t, cfg.TouRates)
}

func TestLoad_ExplicitRates(t *testing.T) {
	path := writeConfig(t, `
current_rate: "0.10"
tou_rates:
  off: "0.05"
  mid: "0.10"
  peak: "0.20"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.TouRates)
	assert.Equal(t, "0.05", cfg.TouRates.Off)
	assert.Equal(t, "0.10", cfg.TouRates.Mid)
	assert.Equal(t, "0.20", cfg.TouRates.Peak)
}

func TestLoad_MissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "current_rate: [not, a, scalar")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_LocationAndRatesAreExclusive(t *testing.T) {
	path := writeConfig(t, `
tou_location: seattle
tou_rates:
  off: "0.05"
  mid: "0.10"
  peak: "0.20"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}
