// Package main is the entry point for the formcheck CLI.
package main

import (
	"os"

	"github.com/dmitrymomot/formkit/cmd/formcheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
