package cmd

import (
	"fmt"
	"os"

	"github.com/loxlang/golox/loxerr"
	"github.com/loxlang/golox/scanner"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <script>",
	Short: "Print the token stream for a script",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		lastExit = exitUsage
		return err
	}

	reporter := loxerr.New(os.Stdout)
	reporter.NoColor = noColor
	tokens := scanner.New(string(source), reporter).Scan()
	for _, tok := range tokens {
		fmt.Println(tok)
	}

	if reporter.HadStaticError {
		lastExit = exitStatic
	}
	return nil
}
