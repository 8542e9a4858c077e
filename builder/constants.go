// Package builder defines shared constants used by builders and the director,
// keeping error prefixes and log fields consistent across the package.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors and tag log entries with the operation name.
//-----------------------------------------------------------------------------

const (
	// MethodCreateCustom is the canonical name for Director.CreateCustomPizza.
	MethodCreateCustom = "CreateCustomPizza"
	// MethodCreateFourCheese is the canonical name for Director.CreateFourCheesePizza.
	MethodCreateFourCheese = "CreateFourCheesePizza"
	// MethodCreatePepperoni is the canonical name for Director.CreatePepperoniPizza.
	MethodCreatePepperoni = "CreatePepperoniPizza"
	// MethodNewBuilder is the canonical name for the NewBuilder factory.
	MethodNewBuilder = "NewBuilder"
	// MethodDefaults is the canonical name for Defaults.
	MethodDefaults = "Defaults"
	// MethodParseSize is the canonical name for ParseSize.
	MethodParseSize = "ParseSize"
	// MethodParseShape is the canonical name for ParseShape.
	MethodParseShape = "ParseShape"
	// MethodParseTopping is the canonical name for ParseTopping.
	MethodParseTopping = "ParseTopping"
	// MethodParseKind is the canonical name for ParseKind.
	MethodParseKind = "ParseKind"
)

//-----------------------------------------------------------------------------
// Log Field Keys
//-----------------------------------------------------------------------------

const (
	logFieldMethod = "method"
	logFieldKind   = "kind"
	logFieldWant   = "want"
	logFieldPizza  = "pizza"
)
