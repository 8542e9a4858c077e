package config

import (
	"github.com/katalvlaran/pizza/builder"
)

// Order is a typed pizza order: a variant plus overrides. A zero Size or
// Shape keeps the variant default.
type Order struct {
	Kind     builder.Kind
	Size     builder.Size
	Shape    builder.Shape
	Toppings []builder.Topping
}

// Apply configures b with the order's overrides and extra toppings.
func (o Order) Apply(b builder.PizzaBuilder) builder.PizzaBuilder {
	if o.Size != "" {
		b.SetSize(o.Size)
	}
	if o.Shape != "" {
		b.SetShape(o.Shape)
	}
	for _, t := range o.Toppings {
		b.AddTopping(t)
	}

	return b
}

// Build creates a builder of the order's kind, applies the order and
// finalizes it.
func (o Order) Build() (builder.Pizza, error) {
	b, err := builder.NewBuilder(o.Kind)
	if err != nil {
		return builder.Pizza{}, err
	}

	return o.Apply(b).Build(), nil
}
