package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExpandsEnvVars(t *testing.T) {
	t.Setenv("PYDEVKIT_TEST_DIR", "/tmp/proj")

	got, err := Resolve("$PYDEVKIT_TEST_DIR/data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/proj", "data"), got)
}

func TestResolveExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Resolve("~/notes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes"), got)
}

func TestResolveAbsolutizesRelativePaths(t *testing.T) {
	got, err := Resolve("relative/dir")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}
