package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tlox-lang/tlox/internal/runner"
)

// runCLI invokes Execute with args set on rootCmd, resetting the shared
// exitCode so successive calls in one test don't see stale state.
func runCLI(t *testing.T, args ...string) int {
	t.Helper()
	exitCode = runner.ExitSuccess
	rootCmd.SetArgs(args)
	return Execute()
}

func TestExecutingAFileReturnsItsExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.tlox")
	if err := os.WriteFile(path, []byte(`print 1 + 1;`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if got := runCLI(t, path); got != runner.ExitSuccess {
		t.Fatalf("exit = %d, want %d", got, runner.ExitSuccess)
	}
}

func TestExecutingAMissingFileIsUsageError(t *testing.T) {
	if got := runCLI(t, filepath.Join(t.TempDir(), "missing.tlox")); got != runner.ExitUsageError {
		t.Fatalf("exit = %d, want %d", got, runner.ExitUsageError)
	}
}

func TestExecutingAFileWithARuntimeErrorExits70(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.tlox")
	if err := os.WriteFile(path, []byte(`print 1 + "a";`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if got := runCLI(t, path); got != runner.ExitRuntimeError {
		t.Fatalf("exit = %d, want %d", got, runner.ExitRuntimeError)
	}
}

func TestExecutingAFileWithAStaticErrorExits65(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "syntax.tlox")
	if err := os.WriteFile(path, []byte(`var = 1;`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if got := runCLI(t, path); got != runner.ExitStaticError {
		t.Fatalf("exit = %d, want %d", got, runner.ExitStaticError)
	}
}

func TestTooManyPositionalArgumentsIsUsageError(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.tlox")
	b := filepath.Join(dir, "b.tlox")
	os.WriteFile(a, []byte(`print 1;`), 0o644)
	os.WriteFile(b, []byte(`print 2;`), 0o644)

	if got := runCLI(t, a, b); got != runner.ExitUsageError {
		t.Fatalf("exit = %d, want %d", got, runner.ExitUsageError)
	}
}

func TestNoArgumentsEntersREPLAndExitsZeroOnEOF(t *testing.T) {
	// An empty stdin closes the scanner immediately, so the REPL loop itself
	// (exercised directly, not through the cobra entry point, since that
	// path always reads os.Stdin) should return success.
	if got := runREPL(strings.NewReader(""), io.Discard, io.Discard, false); got != runner.ExitSuccess {
		t.Fatalf("exit = %d, want %d", got, runner.ExitSuccess)
	}
}
