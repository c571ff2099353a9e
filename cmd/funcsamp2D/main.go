// Command funcsamp2D integrates a catalog test function over the unit
// square with pre-generated sample sequences and reports the sampling error
// for increasing sample counts.
package main

import (
	"os"

	"funcsamp/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
