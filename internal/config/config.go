package config

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = "chunkgen.toml"
	// EnvPrefix prefixes environment overrides, e.g. CHUNKGEN_LOG_LEVEL.
	EnvPrefix = "CHUNKGEN"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrConfigExists is returned by WriteDefault when the file exists.
	ErrConfigExists = errors.New("config file already exists")
)

// Config is the complete chunkgen configuration.
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate"`
	Reflect  ReflectConfig  `mapstructure:"reflect" toml:"reflect"`
	Stubs    StubsConfig    `mapstructure:"stubs" toml:"stubs"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`

	// Root is the directory relative paths were resolved against: the
	// directory of the config file, or the working directory without one.
	Root string `mapstructure:"-" toml:"-"`
	// File is the config file used, empty when running on defaults.
	File string `mapstructure:"-" toml:"-"`
}

// GenerateConfig configures the catalog compiler.
type GenerateConfig struct {
	// OutputDir receives the generated catalog file.
	OutputDir string `mapstructure:"output_dir" toml:"output_dir"`
	// Filename of the generated catalog file.
	Filename string `mapstructure:"filename" toml:"filename"`
	// Package is the Go package name of the generated file.
	Package string `mapstructure:"package" toml:"package"`
	// ModulePath overrides the module path read from go.mod.
	ModulePath string `mapstructure:"module_path" toml:"module_path,omitempty"`
}

// ReflectConfig configures the source reflector.
type ReflectConfig struct {
	// Patterns are package patterns holding declarations, relative to Root.
	Patterns []string `mapstructure:"patterns" toml:"patterns"`
}

// StubsConfig configures the stub emitter.
type StubsConfig struct {
	// Module is the Python module the stubs describe.
	Module string `mapstructure:"module" toml:"module"`
	// Targets all receive the same stub document.
	Targets []string `mapstructure:"targets" toml:"targets"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			OutputDir: "chunks",
			Filename:  "zz_generated.chunks.go",
			Package:   "chunks",
		},
		Reflect: ReflectConfig{
			Patterns: []string{"./internal/schema", "./chunks"},
		},
		Stubs: StubsConfig{
			Module:  "teehistorian_py._rust",
			Targets: []string{"build/_rust.pyi", "python/teehistorian_py/_rust.pyi"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration. An empty path looks for FileName in the
// working directory and falls back to defaults when it is missing; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("generate.output_dir", defaults.Generate.OutputDir)
	v.SetDefault("generate.filename", defaults.Generate.Filename)
	v.SetDefault("generate.package", defaults.Generate.Package)
	v.SetDefault("generate.module_path", defaults.Generate.ModulePath)
	v.SetDefault("reflect.patterns", defaults.Reflect.Patterns)
	v.SetDefault("stubs.module", defaults.Stubs.Module)
	v.SetDefault("stubs.targets", defaults.Stubs.Targets)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.File = v.ConfigFileUsed()

	root := "."
	if cfg.File != "" {
		root = filepath.Dir(cfg.File)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving config root: %w", err)
	}

	cfg.Root = abs
	cfg.Generate.OutputDir = cfg.Resolve(cfg.Generate.OutputDir)

	for i, t := range cfg.Stubs.Targets {
		cfg.Stubs.Targets[i] = cfg.Resolve(t)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve makes path absolute relative to Root.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(c.Root, path)
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	var errs []error

	if c.Generate.OutputDir == "" {
		errs = append(errs, errors.New("generate.output_dir is empty"))
	}

	if !strings.HasSuffix(c.Generate.Filename, ".go") || strings.ContainsRune(c.Generate.Filename, filepath.Separator) {
		errs = append(errs, fmt.Errorf("generate.filename %q is not a Go file name", c.Generate.Filename))
	}

	if !token.IsIdentifier(c.Generate.Package) {
		errs = append(errs, fmt.Errorf("generate.package %q is not an identifier", c.Generate.Package))
	}

	if len(c.Reflect.Patterns) == 0 {
		errs = append(errs, errors.New("reflect.patterns is empty"))
	}

	if len(c.Stubs.Targets) == 0 {
		errs = append(errs, errors.New("stubs.targets is empty"))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// WriteDefault writes the default configuration to path. An existing file
// is never overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	header := "# chunkgen configuration. Relative paths are resolved against this file.\n" +
		"# Every key can be overridden with " + EnvPrefix + "_<SECTION>_<KEY>.\n\n"

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
