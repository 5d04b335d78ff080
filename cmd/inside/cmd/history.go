package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/dipakw/inside/internal/journal"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit       int
		failedOnly  bool
		source      string
		since       time.Duration
		output      string
		journalPath string
	)

	c := &cobra.Command{
		Use:   "history",
		Short: "List recorded check runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat("output", output, "text", "json", "yaml"); err != nil {
				return err
			}

			store, err := a.openJournal(journalPath)
			if err != nil {
				return err
			}
			defer store.Close()

			filter := journal.Filter{Source: source, FailedOnly: failedOnly, Limit: limit}
			if since > 0 {
				filter.Since = time.Now().Add(-since)
			}
			entries, err := store.List(a.context(cmd), filter)
			if err != nil {
				return err
			}

			if output != "text" {
				if entries == nil {
					entries = []*journal.Entry{}
				}
				return writeStructured(cmd.OutOrStdout(), output, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{shortID(e.ID), e.CreatedAt.Local().Format("2006-01-02 15:04:05"), status(e), e.Source, outcome(e)}
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer.Table([]string{"ID", "TIME", "STATUS", "SOURCE", "RESULT"}, rows))
			return nil
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs")
	c.Flags().BoolVar(&failedOnly, "failed", false, "only failed runs")
	c.Flags().StringVar(&source, "source", "", "only runs of this source")
	c.Flags().DurationVar(&since, "since", 0, "only runs newer than this age, e.g. 24h")
	c.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	c.PersistentFlags().StringVar(&journalPath, "journal-path", "", "journal database (default: journal.path or the user cache dir)")

	c.AddCommand(
		newHistoryShowCmd(a, &journalPath),
		newHistoryStatsCmd(a, &journalPath),
		newHistoryPruneCmd(a, &journalPath),
	)
	return c
}

func newHistoryShowCmd(a *app, journalPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one run; a unique ID prefix is enough",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openJournal(*journalPath)
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := store.Get(a.context(cmd), args[0])
			if err != nil {
				return err
			}
			return writeStructured(cmd.OutOrStdout(), "yaml", entry)
		},
	}
}

func newHistoryStatsCmd(a *app, journalPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openJournal(*journalPath)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(a.context(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "runs:   %d\n", stats.Total)
			fmt.Fprintf(out, "failed: %d\n", stats.Failed)
			if !stats.LastRun.IsZero() {
				fmt.Fprintf(out, "last:   %s\n", stats.LastRun.Local().Format(time.RFC3339))
			}
			for _, code := range sortedKeys(stats.ByCode) {
				fmt.Fprintf(out, "  %-26s %d\n", code, stats.ByCode[code])
			}
			return nil
		},
	}
}

func newHistoryPruneCmd(a *app, journalPath *string) *cobra.Command {
	var olderThan time.Duration

	c := &cobra.Command{
		Use:   "prune",
		Short: "Delete runs older than --older-than",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openJournal(*journalPath)
			if err != nil {
				return err
			}
			defer store.Close()

			deleted, err := store.Prune(a.context(cmd), olderThan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pruned %d runs\n", deleted)
			return nil
		},
	}

	c.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "age of runs to delete")
	return c
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func status(e *journal.Entry) string {
	if e.OK {
		return "ok"
	}
	return "failed"
}

func outcome(e *journal.Entry) string {
	if e.OK {
		return fmt.Sprintf("%d statements", e.Statements)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
