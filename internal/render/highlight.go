package render

import (
	"bytes"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
)

// Highlighter applies terminal syntax highlighting to code blocks via
// chroma. Results are cached by slide id, so highlighting runs once per
// slide no matter how many times the viewer redraws — repeated calls are
// idempotent and never touch the underlying code text.
type Highlighter struct {
	style string

	mu    sync.Mutex
	cache map[int]string
}

// NewHighlighter creates a highlighter using the named chroma style
// (e.g. "monokai"). An unknown style falls back to chroma's default.
func NewHighlighter(style string) *Highlighter {
	return &Highlighter{
		style: style,
		cache: make(map[int]string),
	}
}

// Highlight returns the ANSI-highlighted form of code for the given slide.
// On any highlighting error the raw code is returned unchanged; a slide is
// never blanked because a lexer is missing.
func (h *Highlighter) Highlight(slideID int, language, code string) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if out, ok := h.cache[slideID]; ok {
		return out
	}

	out := code
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, code, language, "terminal256", h.style); err == nil {
		out = buf.String()
	}
	h.cache[slideID] = out
	return out
}
