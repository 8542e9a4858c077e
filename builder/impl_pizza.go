// SPDX-License-Identifier: MIT
// Package: pizza/builder
//
// impl_pizza.go - the PizzaBuilder implementation shared by every variant,
// and the general-purpose NewPizzaBuilder constructor.
//
// Contract:
//   - State is a single in-progress Pizza owned by the builder.
//   - After construction and after every Build/Reset the state equals the
//     variant defaults (variants.go), on freshly allocated storage.
//   - Configuration mutates only the in-progress pizza.
//   - Values are stored as given; no validation, no panics.
//
// Complexity:
//   - SetSize/SetShape/Kind: O(1).
//   - AddTopping: amortized O(1).
//   - Build/Reset: O(d) where d is the number of default toppings.

package builder

// pizzaBuilder is the concrete PizzaBuilder. The kind selects its defaults.
type pizzaBuilder struct {
	kind  Kind  // variant tag, fixed at construction
	pizza Pizza // in-progress product
}

// newVariantBuilder returns a builder already holding the defaults of kind.
// kind must be a key of variants; callers are the constructors below.
func newVariantBuilder(kind Kind) *pizzaBuilder {
	b := &pizzaBuilder{kind: kind}
	b.Reset()

	return b
}

// NewPizzaBuilder returns the general-purpose builder.
// Defaults: Small, Round, no toppings.
func NewPizzaBuilder() PizzaBuilder {
	return newVariantBuilder(KindGeneral)
}

// Kind implements PizzaBuilder.
func (b *pizzaBuilder) Kind() Kind {
	return b.kind
}

// SetSize implements PizzaBuilder.
func (b *pizzaBuilder) SetSize(size Size) PizzaBuilder {
	b.pizza.Size = size

	return b
}

// SetShape implements PizzaBuilder.
func (b *pizzaBuilder) SetShape(shape Shape) PizzaBuilder {
	b.pizza.Shape = shape

	return b
}

// AddTopping implements PizzaBuilder.
func (b *pizzaBuilder) AddTopping(topping Topping) PizzaBuilder {
	b.pizza.Toppings = append(b.pizza.Toppings, topping)

	return b
}

// Build implements PizzaBuilder. Ownership of the in-progress pizza moves to
// the caller; the builder continues on a new allocation.
func (b *pizzaBuilder) Build() Pizza {
	built := b.pizza
	b.Reset()

	return built
}

// Reset implements PizzaBuilder.
func (b *pizzaBuilder) Reset() {
	b.pizza = variants[b.kind].fresh()
}
