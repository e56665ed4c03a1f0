package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"teehistorian-gen/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the chunkgen configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: func(_ *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}

			if err := config.WriteDefault(path); err != nil {
				return err
			}

			a.logger.Info("wrote config", "path", path)

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := toml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	})

	return cmd
}
