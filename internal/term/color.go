// Package term provides ANSI color output for the plain (non-TUI) commands:
// check, list, and export. The slideshow itself styles through lipgloss;
// these helpers cover the line-oriented output paths.
//
// Colors are disabled when:
//   - NO_COLOR env var is set (any value, per https://no-color.org/)
//   - Disable(true) has been called (for --no-color flag)
//   - stdout is not a terminal (piped/redirected)
package term

import (
	"fmt"
	"os"
	"sync"
)

// SGR sequences for the palette the commands use.
const (
	reset  = "\x1b[0m"
	bold   = "\x1b[1m"
	dim    = "\x1b[2m"
	red    = "\x1b[31m"
	green  = "\x1b[32m"
	yellow = "\x1b[33m"
	cyan   = "\x1b[36m"
)

var (
	mu       sync.Mutex
	disabled bool

	initOnce sync.Once
	noColor  bool
)

// Disable forces colors off. This does not override environment detection —
// if NO_COLOR is set or stdout is not a terminal, colors remain off
// regardless. Call from the --no-color flag handler.
func Disable(off bool) {
	mu.Lock()
	defer mu.Unlock()
	disabled = off
}

// enabled returns true if color output should be used.
func enabled() bool {
	initOnce.Do(func() {
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			noColor = true
			return
		}
		if !isTerminal(os.Stdout) {
			noColor = true
		}
	})

	mu.Lock()
	defer mu.Unlock()
	return !disabled && !noColor
}

// wrap returns s wrapped in the given ANSI code, or s unchanged if colors are off.
func wrap(code, s string) string {
	if !enabled() {
		return s
	}
	return code + s + reset
}

// Green returns s in green (valid decks, success).
func Green(s string) string { return wrap(green, s) }

// Red returns s in red (schema violations, errors).
func Red(s string) string { return wrap(red, s) }

// Yellow returns s in yellow (warnings, legacy content shapes).
func Yellow(s string) string { return wrap(yellow, s) }

// Dim returns s in dim (secondary info).
func Dim(s string) string { return wrap(dim, s) }

// Bold returns s in bold (headers, deck titles).
func Bold(s string) string { return wrap(bold, s) }

// Cyan returns s in cyan (slide types and kinds).
func Cyan(s string) string { return wrap(cyan, s) }

// Redf formats and returns the result in red.
func Redf(format string, a ...any) string { return Red(fmt.Sprintf(format, a...)) }

// Greenf formats and returns the result in green.
func Greenf(format string, a ...any) string { return Green(fmt.Sprintf(format, a...)) }

// PadRight pads s with spaces to the given visible width, then wraps in
// color. fmt's %-Ns pads by byte length, which counts the invisible ANSI
// codes, so colored columns need this instead.
func PadRight(s string, width int, color func(string) string) string {
	runes := []rune(s)
	if len(runes) >= width {
		return color(s)
	}
	return color(s + spaces(width-len(runes)))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
