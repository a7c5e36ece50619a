// Package cmd implements golox's command-line driver: the bare root
// command runs a script file or starts the REPL (spec.md §6); tokenize
// and parse are debug subcommands added by the ambient stack.
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/loxlang/golox/lox"
	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
)

var noColor bool
var trace bool

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "A tree-walking interpreter for Lox",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "trace statement execution to stderr")
	rootCmd.AddCommand(tokenizeCmd, parseCmd)
}

// Execute runs the CLI and returns the process exit code, per spec.md §6:
// 0 on a clean run, 64 on a usage error, 65 when a static error was
// reported, 70 when an uncaught runtime error occurred.
func Execute() int {
	if noColor {
		color.NoColor = true
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	return lastExit
}

var lastExit = exitOK

func runRoot(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}
	switch len(args) {
	case 0:
		lastExit = runREPL()
	case 1:
		lastExit = runFile(args[0])
	}
	return nil
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	l := lox.New(os.Stdout, noColor)
	if trace {
		l.SetTrace(os.Stderr)
	}
	l.Run(string(source))

	if l.Reporter.HadStaticError {
		return exitStatic
	}
	if l.Reporter.HadRuntimeError {
		return exitRuntime
	}
	return exitOK
}

func runREPL() int {
	l := lox.New(os.Stdout, noColor)
	if trace {
		l.SetTrace(os.Stderr)
	}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return exitOK
		}
		l.Run(scanner.Text())
	}
}
