// Package main is the entry point for the pricecalc CLI.
package main

import (
	"os"

	"github.com/Simplici0/pricing-calculator/cmd/pricecalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
