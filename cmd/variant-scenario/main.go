// Package main provides the CLI entrypoint for variant-scenario.
//
// variant-scenario replays YAML scripts of variant operations:
//   - Runs every step against two demo variants sharing one schema
//   - Prints the state both variants are left in after each step
//   - Optionally traces which engine path each mutation took
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
