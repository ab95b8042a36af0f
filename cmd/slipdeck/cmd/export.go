package cmd

import (
	"fmt"
	"strings"

	"github.com/baiirun/slipdeck/internal/render"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [deck.yaml]",
	Short: "Render a deck as plain text on stdout",
	Long: `Render every slide of a deck as plain text, in presentation order,
separated by rules. Speaker notes are omitted. With no argument, exports
the built-in deck.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveConfig(cmd)

		d, err := loadDeck(args)
		if err != nil {
			Fatal("%v", err)
		}

		for i, s := range d.Slides() {
			if i > 0 {
				fmt.Println("\n" + strings.Repeat("-", 72) + "\n")
			}

			fmt.Println("# " + s.Title)
			if s.Subtitle != "" {
				fmt.Println("## " + s.Subtitle)
			}
			fmt.Println()

			out := render.Render(s)
			if len(out.Blocks) == 0 {
				cfg.Logger.Warn("slide has no renderable content",
					"slide_id", s.ID, "type", s.Type)
				continue
			}
			fmt.Println(render.PlainText(out))
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
