package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("CLUSTER_HOSTNAME", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "cluster", cfg.Host)
	require.Equal(t, "1:00:00", cfg.Defaults.Walltime)
	require.Equal(t, 1, cfg.Defaults.Nodes)
	require.Equal(t, "sleep 365d", cfg.Defaults.Command)
}

func TestLoadYamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: frontend\ndefaults:\n  walltime: \"2:00:00\"\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("CLUSTER_HOSTNAME", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "frontend", cfg.Host)
	require.Equal(t, "2:00:00", cfg.Defaults.Walltime)
	// fields absent from the file keep their defaults
	require.Equal(t, 1, cfg.Defaults.Nodes)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: frontend\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("CLUSTER_HOSTNAME", "nova.example.org")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "nova.example.org", cfg.Host)
}

func TestDescribe(t *testing.T) {
	desc := Default().Describe()
	require.Contains(t, desc, "Cluster Hostname: cluster")
	require.Contains(t, desc, "Default Walltime: 1:00:00")
	require.Contains(t, desc, "oarsub -l <resources> <command>")
}
