// SPDX-License-Identifier: MIT
// Package: pizza/builder
//
// director.go - Director sequences calls against a bound PizzaBuilder.
//
// Contract:
//   - The Director holds one shared builder reference; the caller owns the
//     builder's lifetime and may rebind at any time with SetBuilder.
//   - CreateCustomPizza works with any variant.
//   - Specialty operations verify the bound Kind by value before delegating
//     and fail with ErrInvalidBuilderKind otherwise; on success they call
//     Build only, relying on the variant defaults.
//   - Errors are sentinels wrapped with the method name; no panics.
//   - Not safe for concurrent use.

package builder

import "fmt"

// Director produces named pizza configurations from the bound builder.
type Director struct {
	builder PizzaBuilder
	cfg     directorConfig
}

// NewDirector returns a Director bound to b. A nil b is allowed; operations
// then fail with ErrNilBuilder until SetBuilder is called.
func NewDirector(b PizzaBuilder, opts ...DirectorOption) *Director {
	return &Director{builder: b, cfg: newDirectorConfig(opts...)}
}

// SetBuilder replaces the bound builder.
func (d *Director) SetBuilder(b PizzaBuilder) {
	d.builder = b
}

// Builder returns the bound builder, or nil.
func (d *Director) Builder() PizzaBuilder {
	return d.builder
}

// CreateCustomPizza applies SetSize, SetShape and AddTopping in that order
// to the bound builder and returns the result of Build.
//
// Arguments are validated before the builder is touched, so a failed call
// leaves the in-progress configuration untouched.
func (d *Director) CreateCustomPizza(size Size, shape Shape, topping Topping) (Pizza, error) {
	if d.builder == nil {
		return Pizza{}, d.fail(MethodCreateCustom, fmt.Errorf("%s: %w", MethodCreateCustom, ErrNilBuilder))
	}
	if err := validateOrder(MethodCreateCustom, size, shape, topping); err != nil {
		return Pizza{}, d.fail(MethodCreateCustom, err)
	}

	p := d.builder.
		SetSize(size).
		SetShape(shape).
		AddTopping(topping).
		Build()
	d.built(MethodCreateCustom, p)

	return p, nil
}

// CreateFourCheesePizza builds the bound four-cheese builder as-is.
// Fails with ErrInvalidBuilderKind if the bound builder is another variant.
func (d *Director) CreateFourCheesePizza() (Pizza, error) {
	return d.createSpecialty(MethodCreateFourCheese, KindFourCheese)
}

// CreatePepperoniPizza builds the bound pepperoni builder as-is.
// Fails with ErrInvalidBuilderKind if the bound builder is another variant.
func (d *Director) CreatePepperoniPizza() (Pizza, error) {
	return d.createSpecialty(MethodCreatePepperoni, KindPepperoni)
}

// createSpecialty is the shared body of the specialty operations.
func (d *Director) createSpecialty(method string, want Kind) (Pizza, error) {
	if err := validateKind(method, d.builder, want); err != nil {
		d.cfg.logger.Warn().
			Str(logFieldMethod, method).
			Stringer(logFieldWant, want).
			Err(err).
			Msg("builder kind mismatch")
		return Pizza{}, err
	}

	p := d.builder.Build()
	d.built(method, p)

	return p, nil
}

// built logs a finished construction.
func (d *Director) built(method string, p Pizza) {
	d.cfg.logger.Debug().
		Str(logFieldMethod, method).
		Stringer(logFieldKind, d.builder.Kind()).
		Stringer(logFieldPizza, p).
		Msg("pizza built")
}

// fail logs a rejected custom order and returns err unchanged.
func (d *Director) fail(method string, err error) error {
	d.cfg.logger.Warn().
		Str(logFieldMethod, method).
		Err(err).
		Msg("pizza order rejected")

	return err
}
