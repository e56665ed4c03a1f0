package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"teehistorian-gen/internal/reflector"
	"teehistorian-gen/internal/stubs"
)

func newStubsCmd(a *app) *cobra.Command {
	var (
		module string
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "stubs",
		Short: "Write the Python type stubs of the chunk catalog",
		Long: `Reflects the chunk declarations from source and writes one .pyi document
to every configured target. Either all targets are replaced or none is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.reflect()
			if err != nil {
				return err
			}

			if module == "" {
				module = a.cfg.Stubs.Module
			}

			content, err := stubs.NewEmitter(module, a.logger.WithPrefix("stubs")).Emit(records)
			if err != nil {
				return err
			}

			if stdout {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}

			if err := stubs.WriteTargets(cmd.Context(), content, a.cfg.Stubs.Targets...); err != nil {
				return err
			}

			for _, target := range a.cfg.Stubs.Targets {
				a.logger.Info("wrote stubs", "path", target, "records", len(records))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&module, "module", "", "Python module named in the stub header")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the stubs instead of writing the targets")

	return cmd
}

// reflect loads the configured packages and returns their records. Any
// error diagnostic fails the run; warnings are logged by the reflector.
func (a *app) reflect() ([]reflector.Record, error) {
	r := reflector.NewReflector(a.cfg.Root, a.logger.WithPrefix("reflector"))
	if err := r.LoadPackages(a.cfg.Reflect.Patterns...); err != nil {
		return nil, err
	}

	diags := r.Diagnostics()
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("reflecting declarations: %w", err)
	}

	records := r.Records()
	a.logger.Debug("reflected records", "count", len(records), "warnings", len(diags.Warnings))

	return records, nil
}
