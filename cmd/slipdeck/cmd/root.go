package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/baiirun/slipdeck/internal/config"
	"github.com/baiirun/slipdeck/internal/deck"
	"github.com/baiirun/slipdeck/internal/term"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slipdeck",
	Short: "Slipdeck - terminal slide deck presenter",
	Long: `slipdeck presents slide decks full-screen in the terminal.

Decks are YAML files holding an ordered sequence of typed slides: title,
list, code, comparison, diagram, and split layouts. Running present with
no arguments shows the built-in getting-started deck.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version shown by --version. Called from main with
// the ldflags-injected value.
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is .slipdeck.yaml, then $HOME/.slipdeck.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// Fatal prints an error and exits.
func Fatal(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+msg+"\n", args...)
	os.Exit(1)
}

// resolveConfig assembles the effective configuration from flags, config
// file, and defaults, and wires up logging and color handling.
func resolveConfig(cmd *cobra.Command) *config.Config {
	var cfg config.Config

	if v, _ := cmd.Flags().GetBool("no-color"); v {
		cfg.NoColor = true
	}
	if d, err := cmd.Flags().GetDuration("settle-delay"); err == nil && d != 0 {
		cfg.SettleDelay = d
	}
	if s, err := cmd.Flags().GetString("syntax-style"); err == nil && s != "" {
		cfg.SyntaxStyle = s
	}

	path, _ := cmd.Flags().GetString("config")
	if err := config.Resolve(&cfg, path); err != nil {
		Fatal("%v", err)
	}

	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(cfg.Logger)

	term.Disable(cfg.NoColor)

	return &cfg
}

// loadDeck loads the deck named by args[0], or the built-in deck when no
// argument is given.
func loadDeck(args []string) (*deck.Deck, error) {
	if len(args) == 0 {
		return deck.Builtin()
	}
	return deck.Load(args[0])
}
