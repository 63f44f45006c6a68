package cli

import (
	"github.com/spf13/cobra"
	"github.com/tessro/stepwise/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:     "ui [topic-id]",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive study guide",
	Long: `Launch the full-screen study guide.

The home screen lists every topic with your recently viewed topics beside
it. Open a topic to step through its explanation, walk through code
examples line by line, browse patterns and practice problems.

Keyboard shortcuts:
  /, Ctrl+K  Search topics
  Space      Play / pause the walkthrough
  n, p       Next / previous step
  Tab        Next section
  ?          Show help
  q          Quit

Examples:
  stepwise ui
  stepwise ui graphs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		log.Warn("history unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer func() { _ = store.Close() }()
	}

	var start string
	if len(args) > 0 {
		start = args[0]
	}

	return tui.Run(tui.Options{
		Corpus:     corpus,
		Config:     cfg,
		History:    store,
		Logger:     log,
		StartTopic: start,
	})
}
