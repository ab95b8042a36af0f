package viewer

import (
	"fmt"
	"strings"

	"github.com/baiirun/slipdeck/internal/deck"
	"github.com/baiirun/slipdeck/internal/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// frame returns the styled body for a slide, rendering it on first use and
// caching by slide id afterwards. Highlighting runs inside the first
// realization only, so the highlighter is invoked once per slide.
func (m Model) frame(s deck.Slide) string {
	if f, ok := m.frames[s.ID]; ok {
		return f
	}
	f := m.realize(s)
	m.frames[s.ID] = f
	return f
}

// realize maps the slide's block tree to styled terminal text.
func (m Model) realize(s deck.Slide) string {
	out := render.Render(s)
	if len(out.Blocks) == 0 {
		// Validation should have excluded this; render a blank slide
		// instead of failing the session.
		m.logger.Warn("slide has no renderable content",
			"slide_id", s.ID, "type", s.Type)
		return ""
	}

	parts := make([]string, 0, len(out.Blocks))
	for _, b := range out.Blocks {
		parts = append(parts, m.styleBlock(s.ID, b))
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) styleBlock(slideID int, b render.Block) string {
	switch b := b.(type) {
	case render.Tagline:
		return taglineStyle.Render(b.Text)

	case render.OrderedList:
		var sb strings.Builder
		for i, item := range b.Items {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(rankStyle.Render(fmt.Sprintf("%d.", i+1)))
			sb.WriteString(" " + item)
		}
		return sb.String()

	case render.BulletList:
		var sb strings.Builder
		for i, item := range b.Items {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(m.accent.Render("•") + " " + item.Text)
			if item.Detail != "" {
				sb.WriteString("\n  " + dimStyle.Render(item.Detail))
			}
		}
		return sb.String()

	case render.CodeBlock:
		return m.styleCode(slideID, b)

	case render.Table:
		return m.styleTable(b)

	case render.Diagram:
		out := m.accent.Render(strings.TrimRight(b.ASCII, "\n"))
		if b.Caption != "" {
			out += "\n\n" + m.styleCaption(b.Caption)
		}
		return out

	case render.Split:
		left := m.styleSplitLeft(b.Left)
		right := m.styleCode(slideID, b.Right)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)

	default:
		return ""
	}
}

func (m Model) styleCode(slideID int, b render.CodeBlock) string {
	code := m.hl.Highlight(slideID, b.Language, strings.TrimRight(b.Code, "\n"))
	out := codeBorder.Render(strings.TrimRight(code, "\n"))
	if b.Caption != "" {
		out += "\n" + m.styleCaption(b.Caption)
	}
	return out
}

func (m Model) styleCaption(caption string) string {
	width := m.width - 8
	if width < 20 {
		width = 60
	}
	return captionStyle.Render(wordwrap.String(caption, width))
}

// styleTable pads cells by visible width. lipgloss.Width is ANSI- and
// wide-glyph-aware, unlike len.
func (m Model) styleTable(t render.Table) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	pad := func(s string, w int) string {
		if gap := w - lipgloss.Width(s); gap > 0 {
			return s + strings.Repeat(" ", gap)
		}
		return s
	}

	var sb strings.Builder
	for i, h := range t.Headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(headerCellStyle.Render(pad(h, widths[i])))
	}
	sb.WriteString("\n")
	for i, w := range widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(dimStyle.Render(strings.Repeat("─", w)))
	}
	for _, row := range t.Rows {
		sb.WriteString("\n")
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			if i < len(widths) {
				sb.WriteString(pad(cell, widths[i]))
			} else {
				sb.WriteString(cell)
			}
		}
	}
	return sb.String()
}

func (m Model) styleSplitLeft(lines []render.Line) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch l.Class {
		case render.LineEmphasis:
			sb.WriteString(emphasisStyle.Render(l.Text))
		case render.LineListItem:
			sb.WriteString(l.Text)
		default:
			sb.WriteString(l.Text)
		}
	}
	return sb.String()
}
