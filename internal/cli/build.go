package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pizza/builder"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build one pizza from flags, environment or config file",
		Long: `Build one pizza. The chosen variant supplies the defaults; --size and
--shape override them and every --topping is appended in order.

Examples:
  pizza build --size Large --shape square --topping Bacon
  pizza build --kind four-cheese -o table
  PIZZA_KIND=pepperoni PIZZA_TOPPINGS=Mushrooms,Tomato pizza build`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			r, err := rendererFor(cfg)
			if err != nil {
				return err
			}

			order, err := cfg.Order()
			if err != nil {
				return err
			}
			p, err := order.Build()
			if err != nil {
				return err
			}

			logger := componentLogger("build")
			logger.Debug().
				Stringer("kind", order.Kind).
				Stringer("pizza", p).
				Msg("pizza built")

			return r.Pizza(cmd.OutOrStdout(), order.Kind.String(), p)
		},
	}

	cmd.Flags().String("kind", "", "Builder variant (general|four-cheese|pepperoni)")
	cmd.Flags().String("size", "", "Size override (Small|Medium|Large)")
	cmd.Flags().String("shape", "", "Shape override (Round|square)")
	cmd.Flags().StringSlice("topping", nil, "Topping to append; repeatable")

	_ = cmd.RegisterFlagCompletionFunc("kind", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		kinds := builder.Kinds()
		out := make([]string, len(kinds))
		for i, k := range kinds {
			out[i] = k.String()
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("topping", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		toppings := builder.Toppings()
		out := make([]string, len(toppings))
		for i, t := range toppings {
			out[i] = string(t)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
