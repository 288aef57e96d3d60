// Package main provides the CLI entrypoint for bytematch.
//
// bytematch scores an actual artifact against an expected reference:
//   - Reads both files as raw bytes
//   - Counts positional byte mismatches plus the length difference
//   - Prints 1 - mismatches/len(expected), clamped to [0, 1], to six decimals
package main

import (
	"os"

	"bytematch/internal/command"
)

func main() {
	os.Exit(int(command.Run(os.Args, os.Stdout, os.Stderr)))
}
