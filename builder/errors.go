// SPDX-License-Identifier: MIT
// Package: pizza/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context with a method prefix and `%w`:
//       fmt.Errorf("%s: bound builder is %s: %w", MethodCreateFourCheese, kind, ErrInvalidBuilderKind)
//   • Builders and the director MUST NOT panic; panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrInvalidBuilderKind indicates that a specialty Director operation was
// invoked while the bound builder is not the matching variant.
// Classification: caller-usage error; surface immediately, never retry.
// Usage: if errors.Is(err, ErrInvalidBuilderKind) { /* rebind the director */ }.
var ErrInvalidBuilderKind = errors.New("builder: invalid builder kind")

// ErrNilBuilder indicates that a Director operation ran with no builder bound.
var ErrNilBuilder = errors.New("builder: no builder bound")

// ErrUnknownSize indicates text or a value outside the Size enumeration.
var ErrUnknownSize = errors.New("builder: unknown size")

// ErrUnknownShape indicates text or a value outside the Shape enumeration.
var ErrUnknownShape = errors.New("builder: unknown shape")

// ErrUnknownTopping indicates text or a value outside the Topping enumeration.
var ErrUnknownTopping = errors.New("builder: unknown topping")

// ErrUnknownKind indicates text or a value that names no builder variant.
var ErrUnknownKind = errors.New("builder: unknown builder kind")
