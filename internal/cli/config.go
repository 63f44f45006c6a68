package cli

import (
	"fmt"
	"os"
	"os/exec"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tessro/stepwise/internal/config"
	"github.com/tessro/stepwise/internal/wizard"
)

var configDefaults bool

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage configuration",
	Long:        `Commands for viewing and editing stepwise configuration.`,
	Annotations: map[string]string{skipContent: "true"},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values.`,
	RunE:  runConfigShow,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file",
	Long:  `Open the configuration file in your default editor.`,
	RunE:  runConfigEdit,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a new configuration file. In a terminal this asks a few
questions first; --defaults writes the default values as they are.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Supported keys:
  content.path                 Topic file or directory
  content.watch                Reload topics when files change (true/false)
  player.explanation_interval  Explanation step interval in ms
  player.code_interval         Code walkthrough step interval in ms
  search.match_concept_count   Match queries against concept counts (true/false)
  tui.theme                    auto, dark, light, notty, ...
  tui.word_wrap                Markdown wrap width
  history.enabled              Record viewed topics (true/false)
  history.path                 History database file
  history.limit                Entries shown in history views
  log.level                    debug, info, warn, error
  log.file                     Log file path

Examples:
  stepwise config set player.explanation_interval 2500
  stepwise config set content.path ~/notes/dsa`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), getConfigPath())
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configDefaults, "defaults", false, "write defaults without prompting")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if JSONOutput() {
		return printJSON(cmd.OutOrStdout(), cfg)
	}
	return config.Encode(cmd.OutOrStdout(), cfg)
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found at %s. Run 'stepwise config init' first", configPath)
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found. Set EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	return editorCmd.Run()
}

func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := os.Getenv(env); e != "" {
			return e
		}
	}
	// Try common editors
	for _, e := range []string{"nano", "vim", "vi", "notepad"} {
		if _, err := exec.LookPath(e); err == nil {
			return e
		}
	}
	return ""
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	newCfg := config.Default()
	if !configDefaults && wizard.IsTerminal() {
		if err := wizard.RunConfigForm(newCfg); err != nil {
			return err
		}
	}

	if err := config.Save(configPath, newCfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file created at %s\n", configPath)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	configPath := getConfigPath()

	if _, ok := config.Keys[key]; !ok {
		return fmt.Errorf("unknown key: %s\nSupported keys: %v", key, configKeys())
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := config.Save(configPath, config.Default()); err != nil {
			return err
		}
	}

	if err := config.Set(configPath, key, value); err != nil {
		return err
	}

	// Re-read so a bad value is reported now rather than on the next run
	updated, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("%s is set but the config is now invalid: %w", key, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func configKeys() []string {
	keys := make([]string, 0, len(config.Keys))
	for k := range config.Keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if found := config.FindConfigFile(); found != "" {
		return found
	}
	return config.DefaultPath()
}
