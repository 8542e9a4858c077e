// SPDX-License-Identifier: MIT
// Package: pizza/builder
//
// types.go: closed enumerations consumed by every builder variant.
//
// Contract:
//   • Each enumeration is a string type whose values are literal data and
//     are rendered verbatim by Pizza.String (no case normalization).
//   • Go string types are open, so membership is explicit: Valid() on the
//     value, Parse*() at untyped boundaries (config files, flags).
//   • Listing helpers return fresh slices in declaration order.

package builder

import (
	"fmt"
	"strings"
)

//-----------------------------------------------------------------------------
// Size
//-----------------------------------------------------------------------------

// Size is the diameter class of a pizza.
type Size string

const (
	// Small is the default size of the general builder.
	Small Size = "Small"
	// Medium is the default size of the specialty builders.
	Medium Size = "Medium"
	// Large is the biggest size on the menu.
	Large Size = "Large"
)

// sizeOrder fixes the declaration order used by Sizes and ParseSize.
var sizeOrder = []Size{Small, Medium, Large}

// Sizes returns every Size in declaration order.
func Sizes() []Size {
	return append([]Size(nil), sizeOrder...)
}

// Valid reports whether s is a member of the Size enumeration.
func (s Size) Valid() bool {
	for _, m := range sizeOrder {
		if s == m {
			return true
		}
	}

	return false
}

// ParseSize converts text into a Size. An exact match wins; otherwise the
// first case-insensitive match is returned.
// Unknown text yields an error wrapping ErrUnknownSize.
func ParseSize(text string) (Size, error) {
	for _, m := range sizeOrder {
		if string(m) == text {
			return m, nil
		}
	}
	for _, m := range sizeOrder {
		if strings.EqualFold(string(m), text) {
			return m, nil
		}
	}

	return "", fmt.Errorf("%s: %q: %w", MethodParseSize, text, ErrUnknownSize)
}

//-----------------------------------------------------------------------------
// Shape
//-----------------------------------------------------------------------------

// Shape is the outline of a pizza.
//
// The Square value is the lower-case literal "square" while Round is
// capitalized. The mismatch is kept as data so rendered output stays
// compatible; it is most likely unintentional upstream.
type Shape string

const (
	// Round is the default shape of every variant.
	Round Shape = "Round"
	// Square renders as the lower-case literal "square".
	Square Shape = "square"
)

var shapeOrder = []Shape{Round, Square}

// Shapes returns every Shape in declaration order.
func Shapes() []Shape {
	return append([]Shape(nil), shapeOrder...)
}

// Valid reports whether s is a member of the Shape enumeration.
func (s Shape) Valid() bool {
	for _, m := range shapeOrder {
		if s == m {
			return true
		}
	}

	return false
}

// ParseShape converts text into a Shape; see ParseSize for matching rules.
// Unknown text yields an error wrapping ErrUnknownShape.
func ParseShape(text string) (Shape, error) {
	for _, m := range shapeOrder {
		if string(m) == text {
			return m, nil
		}
	}
	for _, m := range shapeOrder {
		if strings.EqualFold(string(m), text) {
			return m, nil
		}
	}

	return "", fmt.Errorf("%s: %q: %w", MethodParseShape, text, ErrUnknownShape)
}

//-----------------------------------------------------------------------------
// Topping
//-----------------------------------------------------------------------------

// Topping is a single ingredient placed on a pizza. Toppings are kept in
// insertion order and may repeat.
type Topping string

const (
	CheeseRegular    Topping = "CheeseRegular"
	CheeseMozzarella Topping = "CheeseMozzarella"
	CheeseGouda      Topping = "CheeseGouda"
	CheeseDorblue    Topping = "CheeseDorblue"
	Bacon            Topping = "Bacon"
	Tomato           Topping = "Tomato"
	Mushrooms        Topping = "Mushrooms"
	Pepperoni        Topping = "Pepperoni"
)

var toppingOrder = []Topping{
	CheeseRegular, CheeseMozzarella, CheeseGouda, CheeseDorblue,
	Bacon, Tomato, Mushrooms, Pepperoni,
}

// Toppings returns every Topping in declaration order.
func Toppings() []Topping {
	return append([]Topping(nil), toppingOrder...)
}

// Valid reports whether t is a member of the Topping enumeration.
func (t Topping) Valid() bool {
	for _, m := range toppingOrder {
		if t == m {
			return true
		}
	}

	return false
}

// ParseTopping converts text into a Topping; see ParseSize for matching rules.
// Unknown text yields an error wrapping ErrUnknownTopping.
func ParseTopping(text string) (Topping, error) {
	for _, m := range toppingOrder {
		if string(m) == text {
			return m, nil
		}
	}
	for _, m := range toppingOrder {
		if strings.EqualFold(string(m), text) {
			return m, nil
		}
	}

	return "", fmt.Errorf("%s: %q: %w", MethodParseTopping, text, ErrUnknownTopping)
}

// ParseToppings converts every element of texts with ParseTopping, stopping
// at the first failure. A nil or empty input returns an empty, non-nil slice.
func ParseToppings(texts []string) ([]Topping, error) {
	out := make([]Topping, 0, len(texts))
	for _, text := range texts {
		t, err := ParseTopping(text)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}
