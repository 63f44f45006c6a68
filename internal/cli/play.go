package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/errors"
	"github.com/tessro/stepwise/internal/narrate"
	"github.com/tessro/stepwise/internal/player"
)

var (
	playExample   int
	playInterval  int
	playNoEmoji   bool
	playTimestamp bool
	playNoTips    bool
	playFormat    string
)

var playCmd = &cobra.Command{
	Use:   "play <topic-id>",
	Short: "Auto-play a topic's steps in the terminal",
	Long: `Auto-play a topic's explanation steps, printing each step as the player
advances. Playback halts at the last step; Ctrl+C stops early.

Examples:
  stepwise play arrays                  # Explanation steps
  stepwise play sorting --example 2     # Walk through code example 2
  stepwise play trees --interval 1500   # Faster
  stepwise play graphs -f '{{.Index}}/{{.Total}} {{.Title}}'`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&playExample, "example", "e", 0, "walk through code example N (1-based)")
	playCmd.Flags().IntVar(&playInterval, "interval", 0, "step interval in milliseconds (default from config)")
	playCmd.Flags().BoolVar(&playNoEmoji, "no-emoji", false, "disable emoji output")
	playCmd.Flags().BoolVarP(&playTimestamp, "timestamp", "t", false, "show timestamps")
	playCmd.Flags().BoolVar(&playNoTips, "no-tips", false, "hide step tips")
	playCmd.Flags().StringVarP(&playFormat, "format", "f", "", "custom format template")
	rootCmd.AddCommand(playCmd)
}

// playbackFor picks the step sequence, interval and player options for a
// topic, or for one of its code examples when example > 0.
func playbackFor(t core.Topic, example int) (core.StepSequence, time.Duration, []player.Option, error) {
	if example <= 0 {
		return t.ExplanationSteps, cfg.Player.ExplanationDelay(), nil, nil
	}

	ex, ok := t.Example(example - 1)
	if !ok {
		return nil, 0, nil, errors.WithSuggestion(
			fmt.Errorf("%w: %s has %d", errors.ErrExampleNotFound, t.ID, len(t.CodeExamples)),
			fmt.Sprintf("Use --example between 1 and %d", len(t.CodeExamples)),
		)
	}
	table := ex.Highlights
	if len(table) == 0 {
		table = player.DefaultHighlights()
	}
	return ex.Steps, cfg.Player.CodeDelay(), []player.Option{player.WithHighlights(table)}, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	topic, err := lookupTopic(args[0])
	if err != nil {
		return err
	}

	steps, interval, opts, err := playbackFor(topic, playExample)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("%w: %s", errors.ErrNoSteps, topic.ID)
	}
	if playInterval > 0 {
		interval = time.Duration(playInterval) * time.Millisecond
	}

	recordView(topic)

	formatter := narrate.NewFormatter(
		narrate.WithEmoji(!playNoEmoji && narrate.EmojiDefault(os.Stdout)),
		narrate.WithTimestamp(playTimestamp),
		narrate.WithTips(!playNoTips),
		narrate.WithTopic(topic.Title),
		narrate.WithTemplate(playFormat),
	)

	// Handle Ctrl+C gracefully
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return narratePlayback(ctx, cmd.OutOrStdout(), steps, interval, formatter, opts...)
}

// narratePlayback plays steps to the end, printing every event, and
// returns when the player halts or ctx is cancelled.
func narratePlayback(ctx context.Context, out io.Writer, steps core.StepSequence, interval time.Duration, formatter *narrate.Formatter, opts ...player.Option) error {
	feed := narrate.NewFeed()
	opts = append(opts, player.WithOnChange(feed.Observe))
	p := player.New(steps, interval, opts...)
	defer func() {
		feed.Stop()
		p.Close()
	}()

	log.Info("play", "steps", len(steps), "interval", interval)

	initial := p.Snapshot()
	errCh := make(chan error, 1)
	go func() {
		errCh <- feed.Run(ctx, initial)
	}()

	p.Play()

	for event := range feed.Events() {
		fmt.Fprintln(out, formatter.Format(event))
		if event.Type == narrate.EventFinish {
			return nil
		}
	}

	if err := <-errCh; err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
