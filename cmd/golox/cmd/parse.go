package cmd

import (
	"fmt"
	"os"

	"github.com/loxlang/golox/ast"
	"github.com/loxlang/golox/loxerr"
	"github.com/loxlang/golox/parser"
	"github.com/loxlang/golox/scanner"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <script>",
	Short: "Print the parsed AST for a script",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		lastExit = exitUsage
		return err
	}

	reporter := loxerr.New(os.Stdout)
	reporter.NoColor = noColor
	tokens := scanner.New(string(source), reporter).Scan()
	stmts := parser.New(tokens, reporter).Parse()

	fmt.Print(ast.PrintProgram(stmts))

	if reporter.HadStaticError {
		lastExit = exitStatic
	}
	return nil
}
