// Package main is the entry point for the docload CLI.
package main

import (
	"os"

	"github.com/jmylchreest/docload/cmd/docload/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
