package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"teehistorian-gen/internal/config"
)

// app carries the state shared by all subcommands. It is filled by the
// root command's PersistentPreRunE.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "chunkgen",
		Short: "Teehistorian chunk catalog generator",
		Long: `chunkgen keeps the teehistorian chunk catalog in sync with its declarations.

The Go records in package chunks are generated from internal/schema, and the
Python type stubs are reconstructed from the same source without executing it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newStubsCmd(a),
		newDescribeCmd(a),
		newCatalogCmd(a),
		newEncodeCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// skipConfigAnnotation marks commands that run without a loaded config.
const skipConfigAnnotation = "chunkgen/skip-config"

func (a *app) init(cmd *cobra.Command) error {
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "chunkgen",
	})

	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	if cmd.Annotations[skipConfigAnnotation] == "true" {
		return nil
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	a.cfg = cfg

	if !a.verbose {
		level, err := cfg.Level()
		if err != nil {
			return err
		}

		a.logger.SetLevel(level)
	}

	if cfg.File != "" {
		a.logger.Debug("loaded config", "file", cfg.File)
	} else {
		a.logger.Debug("no config file, using defaults", "root", cfg.Root)
	}

	return nil
}
