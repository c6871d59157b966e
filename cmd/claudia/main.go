// Package main is the entry point for the claudia CLI tool.
package main

import (
	"os"

	"github.com/TotoroFxx/claudia-backup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
