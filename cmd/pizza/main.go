// Package main provides the pizza command-line tool.
package main

import (
	"os"

	"github.com/katalvlaran/pizza/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
