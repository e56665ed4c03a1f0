package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"teehistorian-gen/internal/match"
	"teehistorian-gen/internal/reflector"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [NAME...]",
		Short: "Print the reflected chunk records as YAML",
		Long: `Prints the metadata the stub emitter works from: surface name, doc,
category and fields of every record, or of the named records only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.reflect()
			if err != nil {
				return err
			}

			records, err = selectRecords(records, args)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(records); err != nil {
				return fmt.Errorf("encoding records: %w", err)
			}

			return enc.Close()
		},
	}
}

// selectRecords keeps the records named in names, in the order given.
// No names selects every record.
func selectRecords(records []reflector.Record, names []string) ([]reflector.Record, error) {
	if len(names) == 0 {
		return records, nil
	}

	byName := make(map[string]reflector.Record, len(records))
	known := make([]string, 0, len(records))

	for _, rec := range records {
		byName[rec.Name] = rec
		known = append(known, rec.Name)
	}

	res := make([]reflector.Record, 0, len(names))

	for _, name := range names {
		rec, ok := byName[name]
		if !ok {
			if best := match.Suggest(name, known).WithinDistance(match.DefaultMaxDistance).Best(); best != nil {
				return nil, fmt.Errorf("unknown record %q (did you mean %q?)", name, best.Name)
			}

			return nil, fmt.Errorf("unknown record %q", name)
		}

		res = append(res, rec)
	}

	return res, nil
}
