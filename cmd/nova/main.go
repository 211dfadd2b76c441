// Command nova is the driver for the nova compiler: it reads one .nova
// source file, runs it through the pipeline in internal/compiler, and
// either writes the resulting C or hands it to a host C toolchain to build
// and run, per spec.md §6.1.
package main

import (
	"os"

	"github.com/novalang/nova/cmd/nova/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
