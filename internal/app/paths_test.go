package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	p := NewPaths("/project")
	assert.Equal(t, filepath.Join("/project", ".adco"), p.Root)
	assert.Equal(t, filepath.Join("/project", ".adco", "adco.db"), p.DB)
	assert.Equal(t, filepath.Join("/project", ".adco", "config.yaml"), p.Config)
	assert.Equal(t, filepath.Join("/project", ".adco", "log"), p.LogDir)
	assert.Equal(t, filepath.Join("/project", ".adco", "log", "adco.log"), p.Log)
}

func TestEnsureDirs(t *testing.T) {
	dir := t.TempDir()
	p := NewPaths(dir)

	// First call creates directories.
	require.NoError(t, p.EnsureDirs())
	for _, d := range []string{p.Root, p.LogDir} {
		info, err := os.Stat(d)
		require.NoError(t, err, "dir %s should exist", d)
		assert.True(t, info.IsDir())
	}

	// Second call is idempotent.
	require.NoError(t, p.EnsureDirs())
}

func TestResolve(t *testing.T) {
	p := NewPaths("/project")
	assert.Equal(t, "", p.Resolve(""))
	assert.Equal(t, "/elsewhere/x.db", p.Resolve("/elsewhere/x.db"))
	assert.Equal(t, filepath.Join("/project", "inputs"), p.Resolve("inputs"))
}

func TestInputFile(t *testing.T) {
	assert.Equal(t, filepath.Join("inputs", "day07.txt"), InputFile("inputs", 7))
	assert.Equal(t, filepath.Join("inputs", "day12.txt"), InputFile("inputs", 12))
}
