// SPDX-License-Identifier: MIT
// Package: pizza/builder
//
// impl_pepperoni.go - the pepperoni builder variant.
//
// Contract:
//   - Kind() == KindPepperoni; Director.CreatePepperoniPizza accepts it.
//   - Defaults: Medium, Round, Pepperoni.
//   - Full configuration surface stays available.

package builder

// NewPepperoniBuilder returns a builder pre-loaded with the pepperoni
// defaults.
func NewPepperoniBuilder() PizzaBuilder {
	return newVariantBuilder(KindPepperoni)
}
