package main

import (
	"os"

	"github.com/wonny/edgefinder/cmd/edgefinder/commands"
)

// main is the entry point for the EdgeFinder CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
