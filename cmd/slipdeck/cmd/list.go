package cmd

import (
	"fmt"

	"github.com/baiirun/slipdeck/internal/term"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [deck.yaml]",
	Short: "List the slides in a deck",
	Long: `List the slides of a deck in presentation order: id, type, content
kind, and title. With no argument, lists the built-in deck.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resolveConfig(cmd)

		d, err := loadDeck(args)
		if err != nil {
			Fatal("%v", err)
		}

		fmt.Printf("%s  %s\n\n", term.Bold(d.Title()), term.Dim(fmt.Sprintf("%d slides", d.Len())))

		const (
			colID   = 4
			colType = 12
			colKind = 12
		)
		fmt.Printf("%s %s %s %s\n",
			term.PadRight("ID", colID, term.Dim),
			term.PadRight("TYPE", colType, term.Dim),
			term.PadRight("KIND", colKind, term.Dim),
			term.Dim("TITLE"),
		)
		for _, s := range d.Slides() {
			kind := "-"
			if s.Content != nil {
				kind = string(s.Content.Kind())
			}
			fmt.Printf("%s %s %s %s\n",
				term.PadRight(fmt.Sprintf("%d", s.ID), colID, term.Green),
				term.PadRight(string(s.Type), colType, term.Cyan),
				term.PadRight(kind, colKind, term.Cyan),
				s.Title,
			)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
