package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlox-lang/tlox/internal/runner"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// colorOutput requests the ANSI-colored diagnostic rendering; off by default
// because spec.md §6.5 pins the exact plain-text stderr format for scripted
// comparison (see internal/diagnostics).
var colorOutput bool

// exitCode is set by whichever RunE handler actually ran and read by
// Execute after rootCmd.Execute returns, since cobra itself only
// distinguishes "no error" from "error" and this CLI needs the precise
// 0/64/65/70 contract of spec.md §6.3.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "tlox [path]",
	Short: "tlox interpreter",
	Long: `tlox is a tree-walking interpreter for a small dynamically typed,
class-based scripting language: closures, single inheritance with this/super,
block scoping, and the usual control flow.

With no arguments it starts a REPL. With one argument it executes that file.`,
	Args:    cobra.MaximumNArgs(1),
	Version: Version,
	RunE:    runRoot,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&colorOutput, "color", false, "colorize diagnostic output")
}

// Execute runs the root command and returns the process exit code — the
// caller (main) is responsible for os.Exit, keeping this package testable
// without terminating the test binary.
func Execute() int {
	if err := rootCmd.Execute(); err != nil && exitCode == runner.ExitSuccess {
		// cobra already printed the error and usage (e.g. too many
		// positional arguments); §6.2 maps any such CLI usage error to 64.
		exitCode = runner.ExitUsageError
	}
	return exitCode
}

func runRoot(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		exitCode = runREPL(os.Stdin, os.Stdout, os.Stderr, colorOutput)
		return nil
	}

	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tlox: %v\n", err)
		exitCode = runner.ExitUsageError
		return nil
	}

	exitCode = runner.Run(string(source), os.Stdout, os.Stderr, colorOutput)
	return nil
}
