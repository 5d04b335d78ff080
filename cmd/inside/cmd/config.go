package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dipakw/inside/pkg/core/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat("output", output, "toml", "yaml"); err != nil {
				return err
			}

			file := config.FromSettings(a.settings)
			render := file.TOML
			if output == "yaml" {
				render = file.YAML
			}
			data, err := render()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.configPath != "" {
				fmt.Fprintf(out, "# loaded from %s\n", a.configPath)
			}
			_, err = out.Write(data)
			return err
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "toml", "output format: toml or yaml")
	return c
}
