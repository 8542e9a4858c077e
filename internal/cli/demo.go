package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pizza/builder"
	"github.com/katalvlaran/pizza/internal/log"
	"github.com/katalvlaran/pizza/internal/render"
)

// Labels printed in front of each demo pizza.
const (
	labelCustom     = "Custom pizza"
	labelFourCheese = "Four cheese pizza"
	labelPepperoni  = "Pepperoni pizza"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the builder/director walkthrough",
		Long: `Instantiate every builder variant, drive a director through one custom
order (Large, square, Bacon) and the two specialty pizzas, and print them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := rendererFor(GetConfig(cmd.Context()))
			if err != nil {
				return err
			}
			entries, err := DemoPizzas(log.Base())
			if err != nil {
				return err
			}
			return r.Entries(cmd.OutOrStdout(), entries)
		},
	}
}

// RunDemo writes the three demo pizzas to w as text lines.
func RunDemo(w io.Writer, logger zerolog.Logger) error {
	entries, err := DemoPizzas(logger)
	if err != nil {
		return err
	}
	return render.New(render.FormatText).Entries(w, entries)
}

// DemoPizzas builds the demo sequence: a custom pizza on the general
// builder, then the four-cheese and pepperoni specialties after rebinding
// the same director. logger should not carry a component field; the
// director adds its own.
func DemoPizzas(logger zerolog.Logger) ([]render.Entry, error) {
	pizzaBuilder := builder.NewPizzaBuilder()
	fourCheeseBuilder := builder.NewFourCheeseBuilder()
	pepperoniBuilder := builder.NewPepperoniBuilder()

	director := builder.NewDirector(pizzaBuilder, builder.WithLogger(logger))

	custom, err := director.CreateCustomPizza(builder.Large, builder.Square, builder.Bacon)
	if err != nil {
		return nil, fmt.Errorf("custom pizza: %w", err)
	}

	director.SetBuilder(fourCheeseBuilder)
	fourCheese, err := director.CreateFourCheesePizza()
	if err != nil {
		return nil, fmt.Errorf("four cheese pizza: %w", err)
	}

	director.SetBuilder(pepperoniBuilder)
	pepperoni, err := director.CreatePepperoniPizza()
	if err != nil {
		return nil, fmt.Errorf("pepperoni pizza: %w", err)
	}

	return []render.Entry{
		{Label: labelCustom, Pizza: custom},
		{Label: labelFourCheese, Pizza: fourCheese},
		{Label: labelPepperoni, Pizza: pepperoni},
	}, nil
}
