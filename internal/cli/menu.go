package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pizza/builder"
	"github.com/katalvlaran/pizza/internal/render"
)

// NewMenuCommand creates the menu command.
func NewMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List builder variants and their default pizzas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := rendererFor(GetConfig(cmd.Context()))
			if err != nil {
				return err
			}
			entries, err := Menu()
			if err != nil {
				return err
			}
			return r.Entries(cmd.OutOrStdout(), entries)
		},
	}
}

// Menu returns one entry per builder variant with its default pizza.
func Menu() ([]render.Entry, error) {
	kinds := builder.Kinds()
	entries := make([]render.Entry, 0, len(kinds))
	for _, k := range kinds {
		p, err := builder.Defaults(k)
		if err != nil {
			return nil, err
		}
		entries = append(entries, render.Entry{Label: k.String(), Pizza: p})
	}
	return entries, nil
}
