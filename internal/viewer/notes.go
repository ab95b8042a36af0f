package viewer

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

const notesHeight = 8

// initNotes (re)builds the speaker-notes viewport for the current slide.
// Called on toggle, on settle, and on resize while the overlay is open.
func (m *Model) initNotes() {
	width := m.width - 8
	if width < 20 {
		width = 60
	}

	m.notes = viewport.New(width, notesHeight)
	m.notes.SetContent(m.notesContent(width))
	m.notes.GotoTop()
}

// notesContent renders the current slide's notes as markdown, falling back
// to the raw text if glamour fails.
func (m Model) notesContent(width int) string {
	s := m.deck.Slide(m.ctrl.Index())
	if s.Notes == "" {
		return dimStyle.Render("No notes for this slide.")
	}
	return renderMarkdown(s.Notes, width)
}

// viewNotes renders the notes overlay pane.
func (m Model) viewNotes() string {
	return "  " + dimStyle.Render("── Notes ──") + "\n" +
		indentBlock(notesBorder.Render(m.notes.View()))
}

// renderMarkdown renders a markdown string using glamour, falling back to
// the raw text if glamour fails.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
