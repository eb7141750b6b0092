package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/tlox-lang/tlox/internal/ast"
	"github.com/tlox-lang/tlox/internal/diagnostics"
)

// Interpreter holds the three pieces of state §4.5 calls for: the globals
// environment (the chain's root), the current environment (swapped on
// block/function entry), and the resolver's distance map. control carries
// the currently active non-local control transfer, if any (§9). Grounded on
// the teacher's Interpreter struct (env + output writer), generalized from
// DWScript's case-insensitive global registry to this language's plain
// lexical globals.
type Interpreter struct {
	globals   *Environment
	env       *Environment
	distances map[ast.NodeID]int
	output    io.Writer
	control   controlSignal
}

// New creates an Interpreter that writes `print` output to output and
// resolves variable references using distances (the map Resolve produced).
// The clock native is pre-bound in globals per §1/§10.
func New(output io.Writer, distances map[ast.NodeID]int) *Interpreter {
	globals := NewEnvironment()
	i := &Interpreter{globals: globals, env: globals, distances: distances, output: output}
	globals.Define("clock", &NativeFunction{
		FnName:   "clock",
		ArgCount: 0,
		Fn: func(args []Value) Value {
			return Number(float64(time.Now().UnixNano()) / float64(time.Second))
		},
	})
	return i
}

// Interpret executes program's statements in order. A runtime error anywhere
// aborts the run and is returned; everything up to that point has already
// taken effect, matching §7.2's "unwind to the top-level driver" policy. A
// control signal (return or break) still active after the last top-level
// statement means one escaped its defining construct — an evaluator bug per
// §7.3, since the resolver rejects bare return/break at this level — so it
// is reported as a genuine Go panic rather than folded into the error return.
func (i *Interpreter) Interpret(program *ast.Program) *diagnostics.RuntimeError {
	for _, stmt := range program.Statements {
		if err := i.execStmt(stmt); err != nil {
			return err
		}
		if i.control.kind != signalNone {
			panic("interp: uncaught control signal escaped to top level")
		}
	}
	return nil
}

// Extend merges additional resolver output into the interpreter's distance
// map. ast.NodeID is assigned monotonically for the lifetime of the process
// and never reused, so distances from separate resolver runs never collide;
// this is what lets a REPL session resolve and run one line at a time while
// reusing a single Interpreter (and therefore its globals) across lines.
func (i *Interpreter) Extend(distances map[ast.NodeID]int) {
	for id, d := range distances {
		i.distances[id] = d
	}
}

// distanceOf returns the recorded scope distance for id and whether one was
// recorded at all (§3.5: absence means "global").
func (i *Interpreter) distanceOf(id ast.NodeID) (int, bool) {
	d, ok := i.distances[id]
	return d, ok
}

func (i *Interpreter) print(v Value) {
	if i.output == nil {
		return
	}
	fmt.Fprintln(i.output, v.String())
}
