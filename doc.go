// Package pizza is a small, complete demonstration of the Builder creational
// pattern: configurable pizzas assembled through a fluent builder and a
// director that knows the specialty recipes.
//
// What is inside?
//
//	builder/          enumerations, Pizza, PizzaBuilder variants, Director
//	internal/config/  layered configuration (defaults, YAML, env, flags)
//	internal/log/     structured logging setup
//	internal/render/  text / table / JSON / YAML output of pizzas
//	internal/cli/     the `pizza` command tree (demo, build, menu, version)
//	cmd/pizza/        program entry point
//
// The library in builder/ performs no I/O and starts no goroutines; every
// builder belongs to one construction sequence at a time.
//
//	go run ./cmd/pizza demo
package pizza
