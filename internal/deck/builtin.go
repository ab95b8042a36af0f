package deck

import (
	"embed"
	"fmt"
)

// builtinFS holds the deck definitions compiled into the binary. The
// getting-started deck is presented when no deck file is given.
//
//go:embed assets
var builtinFS embed.FS

const builtinPath = "assets/getting-started.yaml"

// Builtin parses and validates the embedded getting-started deck. An error
// here means the compiled-in asset is broken and the binary is unusable.
func Builtin() (*Deck, error) {
	data, err := builtinFS.ReadFile(builtinPath)
	if err != nil {
		return nil, fmt.Errorf("reading embedded deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("embedded deck: %w", err)
	}
	return d, nil
}
