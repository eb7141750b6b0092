package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tlox-lang/tlox/internal/runner"
)

// runREPL implements spec.md §6.2's interactive mode: prompt `> `, one line
// of input at a time, a blank line ends the session. Bindings persist across
// lines via a single runner.Session, the way a user expects a REPL to work —
// grounded on the teacher's run.go driver loop, generalized from "run a
// single file once" to "run successive lines against one shared state".
//
// The REPL's own exit code is always 0: a line that fails to lex, parse,
// resolve, or evaluate reports its diagnostic and the session simply
// continues, rather than aborting the whole interactive process.
func runREPL(in io.Reader, out io.Writer, errOut io.Writer, color bool) int {
	scanner := bufio.NewScanner(in)
	session := runner.NewSession(out)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			break
		}
		session.Run(line, errOut, color)
	}
	return runner.ExitSuccess
}
