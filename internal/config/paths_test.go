package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := GlobalConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".polaris"), dir)
}

func TestGlobalConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".polaris", "config.yaml"), path)
}

func TestProjectConfigPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".polaris", ProjectConfigDir())
	assert.Equal(t, filepath.Join(".polaris", "config.yaml"), ProjectConfigPath())
	assert.Equal(t, filepath.Join(".polaris", "specs.yaml"), DefaultSpecsPath())
}
