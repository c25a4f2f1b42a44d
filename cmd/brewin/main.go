// Command brewin runs the Brewin interpreter from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-brewin/cmd/brewin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
