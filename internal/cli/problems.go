package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tessro/stepwise/internal/browser"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/errors"
)

var problemsOpen int

var problemsCmd = &cobra.Command{
	Use:   "problems <topic-id>",
	Short: "List a topic's practice problems",
	Long: `List a topic's practice problems, or open one on its judge.

Examples:
  stepwise problems arrays
  stepwise problems trees --open 2`,
	Args: cobra.ExactArgs(1),
	RunE: runProblems,
}

func init() {
	problemsCmd.Flags().IntVarP(&problemsOpen, "open", "o", 0, "open problem N (1-based) in the browser")
	rootCmd.AddCommand(problemsCmd)
}

func runProblems(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	topic, err := lookupTopic(args[0])
	if err != nil {
		return err
	}

	if problemsOpen > 0 {
		link, err := problemLink(topic, problemsOpen)
		if err != nil {
			return err
		}
		log.Info("open problem", "topic", topic.ID, "url", link.URL)
		if err := browser.Open(link.URL); err != nil {
			return err
		}
		fmt.Fprintf(out, "Opened %s\n", link.URL)
		return nil
	}

	if JSONOutput() {
		problems := topic.ProblemSet
		if problems == nil {
			problems = []core.Problem{}
		}
		return printJSON(out, problems)
	}

	if len(topic.ProblemSet) == 0 {
		fmt.Fprintf(out, "%s has no practice problems.\n", topic.Title)
		return nil
	}

	table := NewTable(out, "#", "TITLE", "DIFFICULTY", "RATING", "PLATFORMS")
	for i, p := range topic.ProblemSet {
		rating := "-"
		if p.Rating > 0 {
			rating = fmt.Sprintf("%.1f", p.Rating)
		}
		table.Row(fmt.Sprint(i+1), p.Title, string(p.Difficulty), rating, platformList(p.Links))
	}
	table.Flush()
	return nil
}

// problemLink returns the first link of the n-th (1-based) problem.
func problemLink(t core.Topic, n int) (core.Link, error) {
	p, ok := t.Problem(n - 1)
	if !ok {
		return core.Link{}, errors.WithSuggestion(
			fmt.Errorf("%w: %s has %d", errors.ErrProblemNotFound, t.ID, len(t.ProblemSet)),
			fmt.Sprintf("Run 'stepwise problems %s' to list them", t.ID),
		)
	}
	if len(p.Links) == 0 {
		return core.Link{}, fmt.Errorf("%w: %s", errors.ErrNoLinks, p.Title)
	}
	return p.Links[0], nil
}

func platformList(links []core.Link) string {
	if len(links) == 0 {
		return "-"
	}
	names := make([]string, len(links))
	for i, l := range links {
		names[i] = l.Platform
	}
	return strings.Join(names, ", ")
}
