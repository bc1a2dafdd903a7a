// Package main - entry point for the cpqctl offline tooling.
package main

import (
	"os"

	"cartonquote/cmd/cpqctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
