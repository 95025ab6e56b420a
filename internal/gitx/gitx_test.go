package gitx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	// Resolve symlinks so comparisons survive /tmp -> /private/tmp setups.
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func TestFindRootFromRepositoryRoot(t *testing.T) {
	root := initRepo(t)

	got, err := FindRoot(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, root, gotResolved)
}

func TestFindRootFromNestedDirectory(t *testing.T) {
	root := initRepo(t)
	nested := filepath.Join(root, "pkg", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	got, err := FindRoot(nested)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, root, gotResolved)
}

func TestFindRootWithoutRepository(t *testing.T) {
	dir := t.TempDir()

	_, err := FindRoot(dir)
	assert.ErrorIs(t, err, ErrNoRepository)
}

func TestAuthorNameFromRepositoryConfig(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.User.Name = "Test Author"
	require.NoError(t, repo.SetConfig(cfg))

	assert.Equal(t, "Test Author", AuthorName(dir))
}

func TestAuthorNameMissingRepository(t *testing.T) {
	assert.Equal(t, "", AuthorName(t.TempDir()))
}
