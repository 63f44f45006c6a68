package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/search"
	"github.com/tessro/stepwise/internal/wizard"
)

var searchInteractive bool

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search topics",
	Long: `Search topic titles, descriptions, tags and difficulty.
Matching is a case-insensitive substring test; at most 8 results are shown,
in catalog order.

Examples:
  stepwise search tree
  stepwise search beginner
  stepwise search -i`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false, "search interactively")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if searchInteractive || len(args) == 0 {
		interactive := wizard.NewInteractive(corpus, searchOptions()...)
		if !interactive.CanInteract() {
			return fmt.Errorf("no query given")
		}
		picked, err := interactive.PromptSearch()
		if err != nil || picked == nil {
			return err
		}
		recordView(*picked)
		return printTopic(out, *picked)
	}

	query := strings.Join(args, " ")
	results := search.Filter(query, corpus.Topics(), searchOptions()...)

	if JSONOutput() {
		if results == nil {
			results = []core.Topic{}
		}
		return printJSON(out, summarize(results))
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No topics match %q.\n", query)
		if s := corpus.Suggestions(core.SuggestionCount); len(s) > 0 {
			fmt.Fprintln(out, "\nPopular topics:")
			for _, t := range s {
				fmt.Fprintf(out, "  %s  %s\n", t.ID, t.Title)
			}
		}
		return nil
	}

	topicTable(out, results)
	return nil
}
