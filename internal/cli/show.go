package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/render"
	"github.com/tessro/stepwise/internal/tui/components"
	"github.com/tessro/stepwise/internal/wizard"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show [topic-id]",
	Short: "Print a topic page",
	Long: `Print a topic's explanation, steps, code examples, patterns and problems.
Without an id in a terminal, pick a topic interactively.

Examples:
  stepwise show arrays
  stepwise show graphs --raw > graphs.md
  stepwise show`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print markdown without terminal styling")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var topic core.Topic
	if wizard.NeedsTopic(args) {
		picked, err := wizard.NewInteractive(corpus).PromptTopic()
		if err != nil {
			return err
		}
		if picked == nil {
			return fmt.Errorf("no topic given. Run 'stepwise topics' to list them")
		}
		topic = *picked
	} else {
		t, err := lookupTopic(args[0])
		if err != nil {
			return err
		}
		topic = t
	}

	recordView(topic)

	if JSONOutput() {
		return printJSON(out, topic)
	}
	return printTopic(out, topic)
}

func printTopic(out io.Writer, t core.Topic) error {
	doc := topicDocument(t)
	if showRaw {
		_, err := io.WriteString(out, doc)
		return err
	}

	theme := cfg.TUI.Theme
	if !wizard.IsTerminal() {
		theme = "notty"
	}
	_, err := io.WriteString(out, render.MarkdownOrPlain(doc, cfg.TUI.WordWrap, theme))
	return err
}

// topicDocument lays out a whole topic page as markdown.
func topicDocument(t core.Topic) string {
	var b strings.Builder
	b.WriteString(components.TopicMarkdown(t))
	b.WriteString("\n")

	if len(t.ExplanationSteps) > 0 {
		b.WriteString("## Step by step\n\n")
		writeSteps(&b, t.ExplanationSteps)
	}

	if len(t.CodeExamples) > 0 {
		b.WriteString("## Code\n\n")
		for i, ex := range t.CodeExamples {
			fmt.Fprintf(&b, "### %d. %s\n\n", i+1, ex.Title)
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", ex.Language, strings.TrimRight(ex.Code, "\n"))
			if ex.Visualization != "" {
				fmt.Fprintf(&b, "```\n%s\n```\n\n", strings.TrimRight(ex.Visualization, "\n"))
			}
			writeSteps(&b, ex.Steps)
		}
	}

	if len(t.Patterns) > 0 {
		b.WriteString("## Patterns\n\n")
		// Demote the pattern headings one level under this section
		b.WriteString(strings.ReplaceAll("\n"+components.PatternsMarkdown(t.Patterns), "\n## ", "\n### "))
	}

	if len(t.ProblemSet) > 0 {
		b.WriteString("## Problems\n\n")
		for i, p := range t.ProblemSet {
			fmt.Fprintf(&b, "%d. **%s** (%s)", i+1, p.Title, p.Difficulty)
			for _, l := range p.Links {
				fmt.Fprintf(&b, " [%s](%s)", l.Platform, l.URL)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeSteps(b *strings.Builder, steps core.StepSequence) {
	for i, s := range steps {
		if s.Kind == core.StepPlain {
			fmt.Fprintf(b, "%d. %s\n", i+1, s.Description)
			continue
		}
		fmt.Fprintf(b, "%d. **%s**: %s\n", i+1, s.Title, s.Description)
		if s.HasTip() {
			fmt.Fprintf(b, "   _Tip: %s_\n", s.Tip)
		}
	}
	b.WriteString("\n")
}
