// SPDX-License-Identifier: MIT
// Package: pizza/builder
//
// impl_four_cheese.go - the four-cheese builder variant.
//
// Contract:
//   - Kind() == KindFourCheese; Director.CreateFourCheesePizza accepts it.
//   - Defaults: Medium, Round, CheeseRegular, CheeseMozzarella, CheeseGouda,
//     CheeseDorblue (in that order).
//   - The defaults describe the initial state only: size, shape and toppings
//     can still be changed before Build.

package builder

// NewFourCheeseBuilder returns a builder pre-loaded with the four-cheese
// defaults.
func NewFourCheeseBuilder() PizzaBuilder {
	return newVariantBuilder(KindFourCheese)
}
