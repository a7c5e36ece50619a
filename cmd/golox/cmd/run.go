package cmd

import "github.com/spf13/cobra"

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a script file, or start the REPL with no arguments",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoot,
}

func init() {
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace statement execution to stderr")
	rootCmd.AddCommand(runCmd)
}
