// Command brewin is the CLI entry point for the Brewin interpreter.
package main

import (
	"os"

	"github.com/RuralBrick/brewin-interpreter/cmd/brewin/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
