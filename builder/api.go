// SPDX-License-Identifier: MIT
// Package: pizza/builder
//
// api.go - public surface of the builder package.
//
// Design contract (strict):
//   - One capability: PizzaBuilder. Every variant implements the full surface;
//     variants differ only in their default in-progress pizza (variants.go).
//   - Variant identity is an explicit Kind tag checked by value, never by
//     runtime type identity.
//   - Build hands the in-progress pizza to the caller and starts over on a
//     freshly allocated default; returned pizzas never alias builder state.
//   - Safety: builders never panic and never validate; membership checks
//     live at untyped boundaries (Parse*) and in the Director.
//   - Not safe for concurrent use: one builder per construction sequence.

package builder

import (
	"fmt"
	"strings"
)

// PizzaBuilder incrementally configures a pizza and produces it on demand.
//
// The configuration methods return the builder itself so calls chain:
//
//	p := builder.NewPizzaBuilder().SetSize(builder.Large).AddTopping(builder.Bacon).Build()
type PizzaBuilder interface {
	// Kind identifies the variant; the Director branches on it.
	Kind() Kind
	// SetSize overwrites the in-progress size.
	SetSize(size Size) PizzaBuilder
	// SetShape overwrites the in-progress shape.
	SetShape(shape Shape) PizzaBuilder
	// AddTopping appends to the in-progress toppings (duplicates allowed).
	AddTopping(topping Topping) PizzaBuilder
	// Build returns the in-progress pizza and reinitializes the builder to
	// its variant defaults.
	Build() Pizza
	// Reset discards the in-progress configuration and reinitializes the
	// builder to its variant defaults.
	Reset()
}

//-----------------------------------------------------------------------------
// Kind
//-----------------------------------------------------------------------------

// Kind tags a builder variant.
type Kind int

const (
	// KindGeneral is the general-purpose builder (Small, Round, no toppings).
	KindGeneral Kind = iota
	// KindFourCheese is the four-cheese builder (Medium, Round, four cheeses).
	KindFourCheese
	// KindPepperoni is the pepperoni builder (Medium, Round, Pepperoni).
	KindPepperoni
)

var kindNames = map[Kind]string{
	KindGeneral:    "general",
	KindFourCheese: "four-cheese",
	KindPepperoni:  "pepperoni",
}

// kindOrder fixes the iteration order of Kinds.
var kindOrder = []Kind{KindGeneral, KindFourCheese, KindPepperoni}

// Kinds returns every builder Kind in declaration order.
func Kinds() []Kind {
	return append([]Kind(nil), kindOrder...)
}

// String returns the canonical lower-case name, or "Kind(n)" for values that
// name no variant.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k names a builder variant.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]

	return ok
}

// ParseKind converts a variant name into a Kind. Matching ignores case and
// treats "_" and " " like "-", so "Four_Cheese" and "four cheese" both parse.
// Unknown text yields an error wrapping ErrUnknownKind.
func ParseKind(text string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(text))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for _, k := range kindOrder {
		if kindNames[k] == norm {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%s: %q: %w", MethodParseKind, text, ErrUnknownKind)
}

//-----------------------------------------------------------------------------
// Factories (implemented in impl_*.go)
//-----------------------------------------------------------------------------

// NewBuilder returns a fresh builder of the requested variant.
// Unknown kinds yield an error wrapping ErrUnknownKind.
func NewBuilder(kind Kind) (PizzaBuilder, error) {
	switch kind {
	case KindGeneral:
		return NewPizzaBuilder(), nil
	case KindFourCheese:
		return NewFourCheeseBuilder(), nil
	case KindPepperoni:
		return NewPepperoniBuilder(), nil
	default:
		return nil, fmt.Errorf("%s: %s: %w", MethodNewBuilder, kind, ErrUnknownKind)
	}
}

// Defaults returns the default pizza of a variant, the same value a fresh
// builder of that kind produces on Build. The result is a private copy.
func Defaults(kind Kind) (Pizza, error) {
	v, ok := variants[kind]
	if !ok {
		return Pizza{}, fmt.Errorf("%s: %s: %w", MethodDefaults, kind, ErrUnknownKind)
	}

	return v.fresh(), nil
}
