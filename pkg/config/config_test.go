package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/darealghost7/data-vis/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, uint64(42), c.Steps.Seed)
	require.Equal(t, 15, c.Steps.Participants)
	require.Equal(t, 14, c.Steps.Days)
	require.Equal(t, "adult.csv", c.Income.Input)
	require.Equal(t, "info", c.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datavis.yaml")
	content := "log_level: debug\nsteps:\n  seed: 7\n  participants: 30\nincome:\n  input: /data/census.csv\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, uint64(7), c.Steps.Seed)
	require.Equal(t, 30, c.Steps.Participants)
	require.Equal(t, 14, c.Steps.Days) // default survives partial file
	require.Equal(t, "/data/census.csv", c.Income.Input)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
