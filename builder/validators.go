// Package builder provides validation helpers used by the Director before it
// touches a bound builder.
//
// Each function returns a sentinel wrapped with the method context when its
// precondition is violated.
package builder

import "fmt"

// validateOrder checks that size, shape and topping are enumeration members.
// The first failing field wins, checked in argument order.
//
// Complexity: O(|Size| + |Shape| + |Topping|), all constant.
func validateOrder(method string, size Size, shape Shape, topping Topping) error {
	if !size.Valid() {
		return fmt.Errorf("%s: size %q: %w", method, size, ErrUnknownSize)
	}
	if !shape.Valid() {
		return fmt.Errorf("%s: shape %q: %w", method, shape, ErrUnknownShape)
	}
	if !topping.Valid() {
		return fmt.Errorf("%s: topping %q: %w", method, topping, ErrUnknownTopping)
	}

	return nil
}

// validateKind checks that b is bound and tagged want.
func validateKind(method string, b PizzaBuilder, want Kind) error {
	if b == nil {
		return fmt.Errorf("%s: %w", method, ErrNilBuilder)
	}
	if got := b.Kind(); got != want {
		return fmt.Errorf("%s: bound builder is %s, want %s: %w", method, got, want, ErrInvalidBuilderKind)
	}

	return nil
}
