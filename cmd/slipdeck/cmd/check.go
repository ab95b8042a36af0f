package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/baiirun/slipdeck/internal/deck"
	"github.com/baiirun/slipdeck/internal/term"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <deck.yaml>",
	Short: "Validate a deck file",
	Long: `Validate a deck file against the schema: content kinds must match
slide types, table rows must match their headers, and slide ids must be
positive and increasing.

Every violation is reported, not just the first. Exits non-zero if the
deck is invalid.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resolveConfig(cmd)

		d, err := deck.Load(args[0])
		if err != nil {
			reportCheckFailure(args[0], err)
			os.Exit(1)
		}

		fmt.Printf("%s %s: %s, %d slides\n",
			term.Green("ok"), args[0], term.Bold(d.Title()), d.Len())
	},
}

// reportCheckFailure prints each schema violation on its own line. Errors
// that are not schema violations (unreadable file, malformed YAML) print
// as a single line.
func reportCheckFailure(path string, err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n", term.Red("invalid"), path)

	for _, e := range flatten(err) {
		var sv *deck.SchemaViolationError
		if errors.As(e, &sv) {
			fmt.Fprintf(os.Stderr, "  %s\n", sv.Error())
			continue
		}
		fmt.Fprintf(os.Stderr, "  %v\n", e)
	}
}

// flatten unwraps an errors.Join result into its parts.
func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	if inner := errors.Unwrap(err); inner != nil {
		return flatten(inner)
	}
	return []error{err}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
