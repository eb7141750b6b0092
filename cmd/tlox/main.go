// Command tlox is the interpreter's command-line entry point: a REPL when
// given no arguments, a file executor when given exactly one, grounded on
// the teacher's cmd/dwscript cobra-based CLI idiom.
package main

import (
	"os"

	"github.com/tlox-lang/tlox/cmd/tlox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
