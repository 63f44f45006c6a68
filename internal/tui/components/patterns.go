package components

import (
	"fmt"
	"strings"

	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/render"
)

// PatternsMarkdown renders a topic's pattern catalog as markdown.
func PatternsMarkdown(patterns []core.Pattern) string {
	if len(patterns) == 0 {
		return "_No patterns for this topic._\n"
	}

	var b strings.Builder
	for _, p := range patterns {
		fmt.Fprintf(&b, "## %s", p.Name)
		if p.Difficulty != "" {
			fmt.Fprintf(&b, " (%s)", p.Difficulty)
		}
		b.WriteString("\n\n")
		if p.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", p.Description)
		}
		if len(p.WhenToUse) > 0 {
			b.WriteString("**When to use**\n\n")
			for _, w := range p.WhenToUse {
				fmt.Fprintf(&b, "- %s\n", w)
			}
			b.WriteString("\n")
		}
		if p.TimeComplexity != "" || p.SpaceComplexity != "" {
			fmt.Fprintf(&b, "**Time:** %s  **Space:** %s\n\n",
				orDash(p.TimeComplexity), orDash(p.SpaceComplexity))
		}
		if p.Example != "" {
			fmt.Fprintf(&b, "```\n%s\n```\n\n", strings.TrimRight(p.Example, "\n"))
		}
	}
	return b.String()
}

// TopicMarkdown renders a topic's header and explanation as markdown.
func TopicMarkdown(t core.Topic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)

	meta := []string{string(t.Difficulty)}
	if t.EstimatedTime != "" {
		meta = append(meta, t.EstimatedTime)
	}
	if t.Concepts > 0 {
		meta = append(meta, render.Count(t.Concepts, "concept", "concepts"))
	}
	if n := problemCount(t); n > 0 {
		meta = append(meta, render.Count(n, "problem", "problems"))
	}
	fmt.Fprintf(&b, "_%s_\n\n", strings.Join(meta, " · "))

	if len(t.Tags) > 0 {
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = "`" + tag + "`"
		}
		fmt.Fprintf(&b, "%s\n\n", strings.Join(tags, " "))
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", t.Description)
	}
	if t.Explanation != "" {
		fmt.Fprintf(&b, "%s\n", strings.TrimRight(t.Explanation, "\n"))
	}
	return b.String()
}

func problemCount(t core.Topic) int {
	if t.Problems > 0 {
		return t.Problems
	}
	return len(t.ProblemSet)
}
