package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/dipakw/inside/foundation/core/log"
	"github.com/dipakw/inside/internal/journal"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		record      bool
		journalPath string
	)

	c := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate files and report the first diagnostic",
		Long: `check parses each file in order and stops at the first file that
fails, printing its diagnostic with a source excerpt. With --journal (or
journal.enabled in the settings file) every run is recorded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var store journal.Store
			if record || a.settings.JournalEnabled {
				s, err := a.openJournal(journalPath)
				if err != nil {
					return err
				}
				defer s.Close()
				store = s
			}

			ctx := a.context(cmd)
			for _, arg := range args {
				name, code, err := readSource(cmd, arg)
				if err != nil {
					return err
				}

				res := a.engine.Compile(ctx, name, code)
				if store != nil {
					if err := store.Record(ctx, journal.NewEntry(res, a.requestID)); err != nil {
						a.logger.WarnWithErr("failed to record run", err, mdwlog.Fields{"source": name})
					}
				}

				if !res.OK() {
					fmt.Fprint(cmd.ErrOrStderr(), a.renderer.Error(code, res.Err))
					return errReported
				}
				fmt.Fprint(cmd.OutOrStdout(), a.renderer.Success(name, len(res.Program.Body)))
			}
			return nil
		},
	}

	c.Flags().BoolVar(&record, "journal", false, "record runs in the journal")
	c.Flags().StringVar(&journalPath, "journal-path", "", "journal database (default: journal.path or the user cache dir)")
	return c
}
