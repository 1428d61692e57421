// Command sha2 prints the SHA-256 hex digest of a file, or of standard
// input when no file is given.
//
// Usage:
//
//	sha2 [FILENAME]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gohash/sha2kit/sha2"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "sha2:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	name := "-"
	source := stdin

	if len(args) > 0 {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		defer f.Close()
		source = f
	}

	h := sha2.New256()
	if _, err := io.Copy(h, source); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	fmt.Fprintln(stdout, h.HexDigest(), name)
	return nil
}
