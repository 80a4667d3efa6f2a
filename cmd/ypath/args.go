package main

import (
	"io"
	"os"
	"strconv"

	"go.ypath.dev/ypath"
)

// parseArgs converts repeated --arg flag values into bound [ypath.Arg]s,
// substituted positionally for each `%` token encountered in the path. A
// value that parses as a base-10 unsigned integer becomes an index
// argument; anything else becomes a string argument.
func parseArgs(values []string) []ypath.Arg {
	args := make([]ypath.Arg, len(values))

	for i, v := range values {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			args[i] = ypath.ArgIndex(n)

			continue
		}

		args[i] = ypath.ArgString(v)
	}

	return args
}

// readInput reads path, or stdin if path is "-", matching
// cmd/magicschema's stdin-or-file convention.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}
