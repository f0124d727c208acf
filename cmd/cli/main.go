// Package main is the entry point for the signcost CLI.
package main

import (
	"os"

	"signcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
