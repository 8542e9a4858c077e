// Package builder defines the default in-progress pizza of each builder
// variant. These tables are not exposed publicly but drive the builders in
// impl_*.go and the Defaults helper.
package builder

// variant describes the initial state a builder returns to after
// construction, Build and Reset.
type variant struct {
	// size is the default in-progress size.
	size Size
	// shape is the default in-progress shape.
	shape Shape
	// toppings are copied, never shared, into each fresh pizza.
	toppings []Topping
}

// variants maps each Kind to its defaults.
var variants = map[Kind]variant{
	// General: blank canvas.
	KindGeneral: {size: Small, shape: Round},
	// Four cheese: all four cheeses in menu order.
	KindFourCheese: {
		size:     Medium,
		shape:    Round,
		toppings: []Topping{CheeseRegular, CheeseMozzarella, CheeseGouda, CheeseDorblue},
	},
	// Pepperoni: a single pepperoni topping.
	KindPepperoni: {size: Medium, shape: Round, toppings: []Topping{Pepperoni}},
}

// fresh allocates a new default pizza. The toppings slice is always non-nil
// and never shares its backing array with the table or an earlier pizza.
func (v variant) fresh() Pizza {
	toppings := make([]Topping, len(v.toppings))
	copy(toppings, v.toppings)

	return Pizza{Size: v.size, Shape: v.shape, Toppings: toppings}
}
