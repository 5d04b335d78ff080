package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dipakw/inside/foundation/lang/lexer"
)

type tokenView struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

func newTokensCmd(a *app) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "tokens FILE",
		Short: "Show the token stream of a file (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat("format", format, "table", "text", "json", "yaml"); err != nil {
				return err
			}

			name, code, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			toks, err := a.engine.Tokenize(a.context(cmd), name, code)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), a.renderer.Error(code, err))
				return errReported
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				_, err = fmt.Fprintln(out, lexer.Format(toks))
			case "table":
				_, err = fmt.Fprint(out, a.renderer.Tokens(toks))
			default:
				views := make([]tokenView, len(toks))
				for i, tok := range toks {
					views[i] = tokenView{Kind: tok.Kind.String(), Text: tok.Text, Line: tok.Line, Column: tok.Column}
				}
				err = writeStructured(out, format, views)
			}
			return err
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "table", "output format: table, text, json or yaml")
	return c
}
