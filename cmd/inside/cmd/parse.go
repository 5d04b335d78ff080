package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dipakw/inside/foundation/lang/ast"
)

func newParseCmd(a *app) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a file (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat("output", output, "text", "json", "yaml"); err != nil {
				return err
			}

			name, code, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			prog, err := a.engine.Parse(a.context(cmd), name, code)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), a.renderer.Error(code, err))
				return errReported
			}

			if output == "text" {
				if len(prog.Body) == 0 {
					return nil
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), prog.String())
				return err
			}
			return writeStructured(cmd.OutOrStdout(), output, ast.Dump(prog))
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return c
}
