package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tessro/stepwise/internal/config"
	"github.com/tessro/stepwise/internal/content"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/errors"
	"github.com/tessro/stepwise/internal/history"
	"github.com/tessro/stepwise/internal/logger"
	"github.com/tessro/stepwise/internal/search"
)

// skipContent marks commands that run without loading the corpus.
const skipContent = "skip-content"

var (
	cfgFile     string
	jsonOut     bool
	verbose     bool
	contentPath string

	cfg    *config.Config
	log    *logger.Logger
	corpus *core.Corpus
)

var rootCmd = &cobra.Command{
	Use:   "stepwise",
	Short: "Study data structures and algorithms in the terminal",
	Long: `Stepwise is a terminal study guide for data structures and algorithms.

Each topic has an explanation you can step through or auto-play, guided
code walkthroughs with highlighted lines, a pattern catalog, and a set of
practice problems linking to online judges.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		if err := initLogger(); err != nil {
			return err
		}
		if needsContent(cmd) {
			return initContent(cmd.Context(), cmd.ErrOrStderr())
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.stepwiserc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "topic file or directory (default: built-in topics)")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if contentPath != "" {
		cfg.Content.Path = contentPath
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func initLogger() error {
	var err error
	log, err = logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	return nil
}

// initContent loads the corpus. Files that fail to load or validate are
// skipped with a warning; the command fails only if nothing could be read.
func initContent(ctx context.Context, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	c, err := content.Load(ctx, cfg.Content.Path)
	if c == nil {
		return errors.WithSuggestion(
			fmt.Errorf("%w: %v", errors.ErrContentInvalid, err),
			"Check content.path, or unset it to use the built-in topics",
		)
	}
	if err != nil {
		log.Warn("content loaded with errors", "path", cfg.Content.Path, "error", err)
		if verbose {
			_, _ = fmt.Fprintf(stderr, "warning: %v\n", err)
		} else {
			_, _ = fmt.Fprintln(stderr, "warning: some topics were skipped (use -v for details)")
		}
	}
	corpus = c
	log.Debug("content loaded", "path", cfg.Content.Path, "topics", c.Len())
	return nil
}

func needsContent(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipContent] == "true" {
			return false
		}
	}
	return true
}

// openHistory opens the history store, or returns nil when history is
// disabled.
func openHistory() (*history.Store, error) {
	if !cfg.History.IsEnabled() {
		return nil, nil
	}
	return history.Open(cfg.History.Path)
}

// recordView stores a viewed topic. History is best effort outside the
// history command itself.
func recordView(t core.Topic) {
	store, err := openHistory()
	if err != nil {
		log.Warn("history unavailable", "error", err)
		return
	}
	if store == nil {
		return
	}
	defer func() { _ = store.Close() }()
	if err := store.Record(t.ID, t.Title); err != nil {
		log.Warn("history record", "topic", t.ID, "error", err)
	}
}

// lookupTopic resolves an id, attaching did-you-mean suggestions on a miss.
func lookupTopic(id string) (core.Topic, error) {
	t, err := corpus.Lookup(id)
	if err != nil {
		if ids := search.Suggest(id, corpus.Topics()); len(ids) > 0 {
			return t, errors.WithSuggestion(err, fmt.Sprintf("Did you mean: %s?", joinIDs(ids)))
		}
		return t, err
	}
	return t, nil
}

func searchOptions() []search.Option {
	if cfg.Search.MatchConceptCount {
		return []search.Option{search.WithConceptCount()}
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
