// Package config loads chunkgen settings with viper. Built-in defaults are
// overridden by chunkgen.toml, which is overridden by CHUNKGEN_* environment
// variables.
package config
