// Command dictctl is a small interactive driver for the dict package: a
// thin binary wiring a root cobra command onto the library underneath.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
