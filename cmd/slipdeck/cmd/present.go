package cmd

import (
	"github.com/baiirun/slipdeck/internal/viewer"
	"github.com/spf13/cobra"
)

var presentCmd = &cobra.Command{
	Use:   "present [deck.yaml]",
	Short: "Present a deck full-screen in the terminal",
	Long: `Present a deck full-screen in the terminal. With no argument, the
built-in getting-started deck is shown.

Navigation:
  →/space/l  Next slide
  ←/h        Previous slide
  1-9        Jump to slide
  g/G        First/last slide
  n          Toggle speaker notes
  q          Quit`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveConfig(cmd)

		d, err := loadDeck(args)
		if err != nil {
			Fatal("%v", err)
		}

		err = viewer.Run(viewer.Config{
			Deck:        d,
			SettleDelay: cfg.SettleDelay,
			SyntaxStyle: cfg.SyntaxStyle,
			Accent:      cfg.Accent,
			Logger:      cfg.Logger,
		})
		if err != nil {
			Fatal("%v", err)
		}
	},
}

func init() {
	presentCmd.Flags().Duration("settle-delay", 0, "transition settle delay (default 150ms)")
	presentCmd.Flags().String("syntax-style", "", "chroma style for code highlighting (default monokai)")
	rootCmd.AddCommand(presentCmd)
}
