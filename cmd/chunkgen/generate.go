package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"teehistorian-gen/internal/compiler"
	"teehistorian-gen/internal/schema"
)

// errStale is returned by generate --check when the output differs.
var errStale = errors.New("generated catalog is out of date")

func newGenerateCmd(a *app) *cobra.Command {
	var (
		check  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the Go chunk catalog from the declarations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := compiler.NewGenerator(compiler.GeneratorConfig{
				PackageName: a.cfg.Generate.Package,
				OutputDir:   a.cfg.Generate.OutputDir,
				Filename:    a.cfg.Generate.Filename,
				ModulePath:  a.cfg.Generate.ModulePath,
			}, a.logger.WithPrefix("compiler"))

			files, err := gen.Generate(schema.Declarations)
			if err != nil {
				return err
			}

			switch {
			case stdout:
				for _, f := range files {
					if _, err := cmd.OutOrStdout().Write(f.Content); err != nil {
						return err
					}
				}

				return nil
			case check:
				return checkFiles(files, a.cfg.Generate.OutputDir)
			}

			changed, err := compiler.WriteFiles(files, a.cfg.Generate.OutputDir)
			if err != nil {
				return err
			}

			if changed == 0 {
				a.logger.Info("catalog up to date", "dir", a.cfg.Generate.OutputDir)
			} else {
				a.logger.Info("wrote catalog", "dir", a.cfg.Generate.OutputDir, "files", changed)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "fail if the generated files on disk are out of date")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the generated source instead of writing it")
	cmd.MarkFlagsMutuallyExclusive("check", "stdout")

	return cmd
}

func checkFiles(files []compiler.GeneratedFile, dir string) error {
	var stale []string

	for _, f := range files {
		current, err := os.ReadFile(filepath.Join(dir, f.Filename))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading %s: %w", f.Filename, err)
		}

		if !bytes.Equal(current, f.Content) {
			stale = append(stale, f.Filename)
		}
	}

	if len(stale) > 0 {
		return fmt.Errorf("%w: %v", errStale, stale)
	}

	return nil
}
