package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errReported marks failures whose output was already written
var errReported = errors.New("failure already reported")

// NewRootCmd assembles the inside command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "inside",
		Short: "inside - front end for a small expression language",
		Long: `inside tokenizes and parses programs written in a small language
of var/fix bindings over arithmetic, string and call expressions.

Commands:
  tokens   - show the token stream of a file
  parse    - print the syntax tree of a file
  check    - validate files and report diagnostics
  history  - browse the journal of past checks
  repl     - parse lines interactively`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "settings file (default: ./inside.toml or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newHistoryCmd(a),
		newReplCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd, err)
	}
	return err
}

func printError(cmd *cobra.Command, err error) {
	out := cmd.ErrOrStderr()
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}
