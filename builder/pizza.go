// SPDX-License-Identifier: MIT
// Package: pizza/builder
//
// pizza.go: the product type handed out by every builder.

package builder

import (
	"fmt"
	"strings"
)

// toppingSeparator joins toppings in the rendered description.
const toppingSeparator = ", "

// Pizza is the finished product of a builder.
//
// A Pizza has no identity beyond its field values. Once returned by
// PizzaBuilder.Build it is owned by the caller: the builder starts over on
// a freshly allocated pizza and never touches a returned one again.
type Pizza struct {
	// Size is one of Small, Medium, Large.
	Size Size `json:"size" yaml:"size"`
	// Shape is one of Round, Square.
	Shape Shape `json:"shape" yaml:"shape"`
	// Toppings keeps insertion order; duplicates are allowed.
	Toppings []Topping `json:"toppings" yaml:"toppings"`
}

// String renders the pizza as
//
//	Size: <size>, Shape: <shape>, Toppings: <t1>, <t2>, ...
//
// An empty topping list renders as nothing after "Toppings: ".
func (p Pizza) String() string {
	names := make([]string, len(p.Toppings))
	for i, t := range p.Toppings {
		names[i] = string(t)
	}

	return fmt.Sprintf("Size: %s, Shape: %s, Toppings: %s",
		p.Size, p.Shape, strings.Join(names, toppingSeparator))
}

// Clone returns a deep copy of p; the toppings backing array is not shared.
func (p Pizza) Clone() Pizza {
	p.Toppings = append(make([]Topping, 0, len(p.Toppings)), p.Toppings...)

	return p
}

// Equal reports whether p and other have the same size, shape and toppings
// in the same order. A nil and an empty topping list are equal.
func (p Pizza) Equal(other Pizza) bool {
	if p.Size != other.Size || p.Shape != other.Shape || len(p.Toppings) != len(other.Toppings) {
		return false
	}
	for i := range p.Toppings {
		if p.Toppings[i] != other.Toppings[i] {
			return false
		}
	}

	return true
}
