package cli

import (
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:     "topics",
	Aliases: []string{"ls", "list"},
	Short:   "List available topics",
	Args:    cobra.NoArgs,
	RunE:    runTopics,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	topics := corpus.Topics()

	if JSONOutput() {
		return printJSON(out, summarize(topics))
	}

	topicTable(out, topics)
	return nil
}
