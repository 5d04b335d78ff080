package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dipakw/inside/internal/journal"
	"github.com/dipakw/inside/internal/repl"
)

func newReplCmd(a *app) *cobra.Command {
	var (
		record      bool
		journalPath string
	)

	c := &cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := repl.Options{
				Engine:   a.engine,
				Renderer: a.renderer,
				Logger:   a.logger,
			}

			if record || a.settings.JournalEnabled {
				store, err := a.openJournal(journalPath)
				if err != nil {
					return err
				}
				defer store.Close()
				opts.Journal = journal.Store(store)
			}
			return repl.Run(opts)
		},
	}

	c.Flags().BoolVar(&record, "journal", false, "record entries in the journal")
	c.Flags().StringVar(&journalPath, "journal-path", "", "journal database (default: journal.path or the user cache dir)")
	return c
}
