// Command minilang is the CLI front end over pkg/minilang, used to try
// programs and read their diagnostics from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/mlang/minilang/cmd/minilang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
