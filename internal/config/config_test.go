package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)

	root, err := filepath.Abs(".")
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, "chunks"), cfg.Generate.OutputDir)
	assert.Equal(t, "zz_generated.chunks.go", cfg.Generate.Filename)
	assert.Equal(t, "chunks", cfg.Generate.Package)
	assert.Empty(t, cfg.Generate.ModulePath)
	assert.Equal(t, []string{"./internal/schema", "./chunks"}, cfg.Reflect.Patterns)
	assert.Equal(t, "teehistorian_py._rust", cfg.Stubs.Module)
	assert.Equal(t, []string{
		filepath.Join(root, "build", "_rust.pyi"),
		filepath.Join(root, "python", "teehistorian_py", "_rust.pyi"),
	}, cfg.Stubs.Targets)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, level)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf", "chunkgen.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	content := `[generate]
output_dir = "gen"
module_path = "example.com/demo"

[stubs]
targets = ["/abs/a.pyi", "rel/b.pyi"]

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	root := filepath.Dir(path)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, filepath.Join(root, "gen"), cfg.Generate.OutputDir)
	assert.Equal(t, "example.com/demo", cfg.Generate.ModulePath)
	assert.Equal(t, "chunks", cfg.Generate.Package)
	assert.Equal(t, []string{"/abs/a.pyi", filepath.Join(root, "rel", "b.pyi")}, cfg.Stubs.Targets)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chunkgen.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))

	t.Setenv("CHUNKGEN_LOG_LEVEL", "error")
	t.Setenv("CHUNKGEN_GENERATE_PACKAGE", "records")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "records", cfg.Generate.Package)
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(FileName, []byte("[stubs]\nmodule = \"demo._ext\"\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "demo._ext", cfg.Stubs.Module)
	assert.NotEmpty(t, cfg.File)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[log\nlevel ="), 0o644))

	_, err = Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[log]\nlevel = \"loud\"\n[generate]\npackage = \"not-ident\"\n"), 0o644))

	_, err = Load(invalid)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "generate.package")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Generate.Filename = "catalog.txt"
	cfg.Stubs.Targets = nil
	cfg.Reflect.Patterns = nil

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "generate.filename")
	assert.Contains(t, err.Error(), "stubs.targets")
	assert.Contains(t, err.Error(), "reflect.patterns")
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunkgen.toml")

	require.NoError(t, WriteDefault(path))
	require.ErrorIs(t, WriteDefault(path), ErrConfigExists)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := DefaultConfig()
	assert.Equal(t, want.Generate.Package, cfg.Generate.Package)
	assert.Equal(t, want.Reflect.Patterns, cfg.Reflect.Patterns)
	assert.Equal(t, want.Stubs.Module, cfg.Stubs.Module)
	assert.Equal(t, cfg.Resolve("chunks"), cfg.Generate.OutputDir)
}

func TestResolve(t *testing.T) {
	cfg := &Config{Root: "/repo"}

	assert.Equal(t, filepath.Join("/repo", "a"), cfg.Resolve("a"))
	assert.Equal(t, "/abs", cfg.Resolve("/abs"))
	assert.Empty(t, cfg.Resolve(""))
}
