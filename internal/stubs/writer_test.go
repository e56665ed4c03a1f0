package stubs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNoTempFiles(t *testing.T, dirs ...string) {
	t.Helper()

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)

		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), tempPrefix), "leftover %s", e.Name())
		}
	}
}

func TestWriteTargets(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "out", "_rust.pyi")
	second := filepath.Join(root, "pkg", "teehistorian_py", "_rust.pyi")

	require.NoError(t, os.MkdirAll(filepath.Dir(second), 0o755))
	require.NoError(t, os.WriteFile(second, []byte("old"), 0o644))

	require.NoError(t, WriteTargets(context.Background(), []byte("stub"), first, second))

	for _, target := range []string{first, second} {
		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "stub", string(got))
	}

	assertNoTempFiles(t, filepath.Dir(first), filepath.Dir(second))
}

func TestWriteTargets_StageFailureLeavesTargetsUntouched(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "_rust.pyi")
	require.NoError(t, os.WriteFile(first, []byte("old"), 0o644))

	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := WriteTargets(context.Background(), []byte("stub"), first, filepath.Join(blocker, "sub", "_rust.pyi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging")

	got, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	assertNoTempFiles(t, root)
}

func TestWriteTargets_ReplaceFailureRollsBack(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "a.pyi")
	created := filepath.Join(root, "b.pyi")
	failing := filepath.Join(root, "c.pyi")

	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	boom := errors.New("boom")
	orig := replaceFile
	replaceFile = func(from, to string) error {
		if to == failing {
			return boom
		}

		return orig(from, to)
	}

	t.Cleanup(func() { replaceFile = orig })

	err := WriteTargets(context.Background(), []byte("stub"), existing, created, failing)
	require.ErrorIs(t, err, boom)

	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	assert.NoFileExists(t, created)
	assert.NoFileExists(t, failing)
	assertNoTempFiles(t, root)
}

func TestWriteTargets_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	target := filepath.Join(t.TempDir(), "_rust.pyi")

	err := WriteTargets(ctx, []byte("stub"), target)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, target)
}

func TestWriteTargets_NoTargets(t *testing.T) {
	require.Error(t, WriteTargets(context.Background(), []byte("stub")))
}
