package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"teehistorian-gen/chunks"
)

var (
	catalogHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	catalogCategoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	catalogNameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	catalogFieldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

func newCatalogCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the compiled chunk catalog by category",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups := chunks.Categories()
			if category != "" {
				names, ok := groups[category]
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}

				groups = map[string][]string{category: names}
			}

			out, err := renderCatalog(groups)
			if err != nil {
				return err
			}

			a.logger.Debug("listed catalog", "categories", len(groups))

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list one category")

	return cmd
}

func renderCatalog(groups map[string][]string) (string, error) {
	categories := make([]string, 0, len(groups))
	total := 0

	for c, names := range groups {
		categories = append(categories, c)
		total += len(names)
	}

	sort.Strings(categories)

	var b strings.Builder

	b.WriteString(catalogHeaderStyle.Render(fmt.Sprintf("Chunk catalog (%d records)", total)))
	b.WriteString("\n")

	for _, c := range categories {
		b.WriteString("\n")
		b.WriteString(catalogCategoryStyle.Render(c))
		b.WriteString("\n")

		for _, name := range groups[c] {
			d, err := chunks.Lookup(name)
			if err != nil {
				return "", err
			}

			b.WriteString("  ")
			b.WriteString(catalogNameStyle.Render(name))

			if len(d.Fields) > 0 {
				b.WriteString(" ")
				b.WriteString(catalogFieldStyle.Render("(" + strings.Join(d.Fields, ", ") + ")"))
			}

			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
