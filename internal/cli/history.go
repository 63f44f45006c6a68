package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tessro/stepwise/internal/errors"
	"github.com/tessro/stepwise/internal/history"
	"github.com/tessro/stepwise/internal/render"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:         "history",
	Short:       "Show recently viewed topics",
	Annotations: map[string]string{skipContent: "true"},
	RunE:        runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all viewed topics",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of entries (default from config)")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func requireHistory() (*history.Store, error) {
	store, err := openHistory()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.WithSuggestion(
			fmt.Errorf("%w: disabled in config", errors.ErrHistoryUnavailable),
			"Run 'stepwise config set history.enabled true'",
		)
	}
	return store, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	store, err := requireHistory()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	limit := historyLimit
	if limit <= 0 {
		limit = cfg.History.Limit
	}
	entries, err := store.Recent(limit)
	if err != nil {
		return err
	}

	if JSONOutput() {
		if entries == nil {
			entries = []history.Entry{}
		}
		return printJSON(out, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No history yet. Open a topic with 'stepwise show'.")
		return nil
	}

	table := NewTable(out, "TITLE", "ID", "VIEWED")
	for _, e := range entries {
		table.Row(render.Truncate(e.Title, 40), e.TopicID, render.Ago(e.ViewedAt))
	}
	table.Flush()
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := requireHistory()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
	return nil
}
