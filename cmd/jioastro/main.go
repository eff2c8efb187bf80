// Package main provides the CLI for the JioAstro yoga catalog and timing engine.
package main

import (
	"os"

	"github.com/arytiwari/jioastro-sub006/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
