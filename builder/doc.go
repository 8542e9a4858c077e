// Package builder implements the Builder creational pattern around pizzas:
// a fluent PizzaBuilder capability, three concrete variants that differ only
// in their defaults, and a Director that sequences calls against whichever
// builder is currently bound.
//
// The package offers the following key components:
//
//   - Enumerations (types.go):
//     – Size:    Small, Medium, Large.
//     – Shape:   Round, Square (rendered as the literal "square").
//     – Topping: CheeseRegular, CheeseMozzarella, CheeseGouda, CheeseDorblue,
//     Bacon, Tomato, Mushrooms, Pepperoni.
//     – Valid() and Parse*() for explicit membership checks.
//   - Product (pizza.go):
//     – Pizza{Size, Shape, Toppings} with String, Clone, Equal.
//   - Builders (impl_*.go):
//     – NewPizzaBuilder:      Small, Round, no toppings.
//     – NewFourCheeseBuilder: Medium, Round, the four cheeses.
//     – NewPepperoniBuilder:  Medium, Round, Pepperoni.
//     – NewBuilder(kind):     factory over Kind.
//   - Director (director.go):
//     – CreateCustomPizza(size, shape, topping): any variant.
//     – CreateFourCheesePizza / CreatePepperoniPizza: matching Kind only.
//     – WithLogger / WithComponent options (zerolog).
//
// Guarantees:
//
//   - Build always reinitializes the builder to its variant defaults on fresh
//     storage; a returned Pizza is never affected by later builder calls.
//   - Variant checks compare the explicit Kind tag, not the dynamic type.
//   - Structured errors: sentinels (ErrInvalidBuilderKind, ErrNilBuilder,
//     ErrUnknownSize, ...) wrapped with the method name; use errors.Is.
//   - No I/O, no goroutines, no panics outside option constructors.
//
// Quick example:
//
//	d := builder.NewDirector(builder.NewPizzaBuilder())
//	p, _ := d.CreateCustomPizza(builder.Large, builder.Square, builder.Bacon)
//	fmt.Println(p) // Size: Large, Shape: square, Toppings: Bacon
package builder
