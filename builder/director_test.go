package builder_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pizza/builder"
)

// DirectorSuite exercises the Director against every variant.
type DirectorSuite struct {
	suite.Suite
	general    builder.PizzaBuilder
	fourCheese builder.PizzaBuilder
	pepperoni  builder.PizzaBuilder
	director   *builder.Director
}

func (s *DirectorSuite) SetupTest() {
	s.general = builder.NewPizzaBuilder()
	s.fourCheese = builder.NewFourCheeseBuilder()
	s.pepperoni = builder.NewPepperoniBuilder()
	s.director = builder.NewDirector(s.general)
}

// TestCustomPizza verifies the end-to-end rendered string.
func (s *DirectorSuite) TestCustomPizza() {
	p, err := s.director.CreateCustomPizza(builder.Large, builder.Square, builder.Bacon)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Size: Large, Shape: square, Toppings: Bacon", p.String())
}

// TestCustomPizzaOnSpecialtyBuilder verifies custom orders work with any
// variant and append to its default toppings.
func (s *DirectorSuite) TestCustomPizzaOnSpecialtyBuilder() {
	s.director.SetBuilder(s.pepperoni)

	p, err := s.director.CreateCustomPizza(builder.Small, builder.Square, builder.Mushrooms)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Size: Small, Shape: square, Toppings: Pepperoni, Mushrooms", p.String())
}

// TestCustomPizzaResetsBuilder verifies the bound builder returns to defaults.
func (s *DirectorSuite) TestCustomPizzaResetsBuilder() {
	_, err := s.director.CreateCustomPizza(builder.Large, builder.Square, builder.Bacon)
	require.NoError(s.T(), err)

	p := s.general.Build()
	require.Equal(s.T(), builder.Small, p.Size)
	require.Empty(s.T(), p.Toppings)
}

// TestFourCheeseWithGeneralBuilder verifies the kind check.
func (s *DirectorSuite) TestFourCheeseWithGeneralBuilder() {
	s.general.AddTopping(builder.Tomato)

	_, err := s.director.CreateFourCheesePizza()
	require.ErrorIs(s.T(), err, builder.ErrInvalidBuilderKind)
	require.Contains(s.T(), err.Error(), "general")
	require.Contains(s.T(), err.Error(), "four-cheese")

	// The rejected call must not consume the in-progress pizza.
	require.Equal(s.T(), []builder.Topping{builder.Tomato}, s.general.Build().Toppings)
}

// TestFourCheese verifies the four-cheese defaults come back unchanged.
func (s *DirectorSuite) TestFourCheese() {
	s.director.SetBuilder(s.fourCheese)

	p, err := s.director.CreateFourCheesePizza()
	require.NoError(s.T(), err)
	require.Equal(s.T(), builder.Medium, p.Size)
	require.Equal(s.T(), builder.Round, p.Shape)
	require.Equal(s.T(), []builder.Topping{
		builder.CheeseRegular, builder.CheeseMozzarella, builder.CheeseGouda, builder.CheeseDorblue,
	}, p.Toppings)
}

// TestPepperoni verifies the pepperoni defaults and the kind check.
func (s *DirectorSuite) TestPepperoni() {
	_, err := s.director.CreatePepperoniPizza()
	require.ErrorIs(s.T(), err, builder.ErrInvalidBuilderKind)

	s.director.SetBuilder(s.fourCheese)
	_, err = s.director.CreatePepperoniPizza()
	require.ErrorIs(s.T(), err, builder.ErrInvalidBuilderKind)

	s.director.SetBuilder(s.pepperoni)
	p, err := s.director.CreatePepperoniPizza()
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Size: Medium, Shape: Round, Toppings: Pepperoni", p.String())
}

// TestSpecialtyKeepsCallerConfiguration verifies the specialty operation
// calls Build only, so prior caller overrides on the bound builder survive.
func (s *DirectorSuite) TestSpecialtyKeepsCallerConfiguration() {
	s.director.SetBuilder(s.pepperoni)
	s.pepperoni.SetSize(builder.Large)

	p, err := s.director.CreatePepperoniPizza()
	require.NoError(s.T(), err)
	require.Equal(s.T(), builder.Large, p.Size)
}

// TestSetBuilder verifies rebinding.
func (s *DirectorSuite) TestSetBuilder() {
	require.Same(s.T(), s.general, s.director.Builder())
	s.director.SetBuilder(s.fourCheese)
	require.Same(s.T(), s.fourCheese, s.director.Builder())
}

func TestDirectorSuite(t *testing.T) {
	suite.Run(t, new(DirectorSuite))
}

// TestDirector_NilBuilder verifies every operation fails cleanly when unbound.
func TestDirector_NilBuilder(t *testing.T) {
	t.Parallel()

	d := builder.NewDirector(nil)

	_, err := d.CreateCustomPizza(builder.Large, builder.Round, builder.Bacon)
	require.ErrorIs(t, err, builder.ErrNilBuilder)
	_, err = d.CreateFourCheesePizza()
	require.ErrorIs(t, err, builder.ErrNilBuilder)
	_, err = d.CreatePepperoniPizza()
	require.ErrorIs(t, err, builder.ErrNilBuilder)
}

// TestDirector_InvalidArguments verifies membership validation happens
// before the builder is touched.
func TestDirector_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    builder.Size
		shape   builder.Shape
		topping builder.Topping
		wantErr error
	}{
		{"size", builder.Size("Huge"), builder.Round, builder.Bacon, builder.ErrUnknownSize},
		{"shape", builder.Small, builder.Shape("Triangle"), builder.Bacon, builder.ErrUnknownShape},
		{"topping", builder.Small, builder.Round, builder.Topping("Pineapple"), builder.ErrUnknownTopping},
		{"first failure wins", builder.Size(""), builder.Shape(""), builder.Topping(""), builder.ErrUnknownSize},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := builder.NewPizzaBuilder()
			b.AddTopping(builder.Tomato)
			d := builder.NewDirector(b)

			_, err := d.CreateCustomPizza(tc.size, tc.shape, tc.topping)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, []builder.Topping{builder.Tomato}, b.Build().Toppings)
		})
	}
}

// TestDirector_Logging verifies debug and warn entries reach the logger.
func TestDirector_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	d := builder.NewDirector(builder.NewPizzaBuilder(),
		builder.WithLogger(logger),
		builder.WithComponent("kitchen"),
	)

	_, err := d.CreateCustomPizza(builder.Large, builder.Square, builder.Bacon)
	require.NoError(t, err)
	_, err = d.CreateFourCheesePizza()
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"component":"kitchen"`)
	assert.Contains(t, out, `"method":"CreateCustomPizza"`)
	assert.Contains(t, out, `"pizza":"Size: Large, Shape: square, Toppings: Bacon"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"want":"four-cheese"`)
}

// TestWithComponent_PanicsOnEmpty verifies option constructors fail fast.
func TestWithComponent_PanicsOnEmpty(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithComponent("") })
}
