// Command vetrina renders indexed document snapshots through
// declarative field configuration.
package main

import (
	"os"

	"github.com/custodia-labs/vetrina/internal/adapters/driving/cli"
)

func main() {
	cli.SetWire(cli.Wire)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
