package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindModule(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/demo\n"), 0o644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, dir, err := FindModule(nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/demo", path)

	wantDir, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, wantDir, dir)

	importPath, err := ImportPath(path, dir, nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/demo/a/b", importPath)

	importPath, err = ImportPath(path, dir, root)
	require.NoError(t, err)
	assert.Equal(t, "example.com/demo", importPath)
}

func TestFindModule_MissingDirective(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("go 1.25\n"), 0o644))

	_, _, err := FindModule(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing module directive")
}

func TestFindModule_ThisRepository(t *testing.T) {
	path, _, err := FindModule(".")
	require.NoError(t, err)
	assert.Equal(t, "teehistorian-gen", path)
}
