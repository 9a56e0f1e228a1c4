// adco solves Advent of Code 2020 puzzles with a parser-combinator engine.
// Inputs are read from stdin or a file; answers are cached per input.
package main

import (
	"fmt"
	"os"

	"github.com/corey/adco/cmd/adco/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
