package render

import (
	"fmt"
	"strings"
)

// PlainText realizes a block tree as unstyled text, one blank line between
// blocks. Used by the export command and by tests; the styled terminal
// realization lives in the viewer.
func PlainText(o Output) string {
	parts := make([]string, 0, len(o.Blocks))
	for _, b := range o.Blocks {
		parts = append(parts, plainBlock(b))
	}
	return strings.Join(parts, "\n\n")
}

func plainBlock(b Block) string {
	switch b := b.(type) {
	case Tagline:
		return b.Text

	case OrderedList:
		var sb strings.Builder
		for i, item := range b.Items {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "%d. %s", i+1, item)
		}
		return sb.String()

	case BulletList:
		var sb strings.Builder
		for i, item := range b.Items {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("* " + item.Text)
			if item.Detail != "" {
				sb.WriteString("\n  " + item.Detail)
			}
		}
		return sb.String()

	case CodeBlock:
		out := indent(strings.TrimRight(b.Code, "\n"), "    ")
		if b.Caption != "" {
			out += "\n\n" + b.Caption
		}
		return out

	case Table:
		return plainTable(b)

	case Diagram:
		out := strings.TrimRight(b.ASCII, "\n")
		if b.Caption != "" {
			out += "\n\n" + b.Caption
		}
		return out

	case Split:
		var sb strings.Builder
		for i, line := range b.Left {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(line.Text)
		}
		sb.WriteString("\n\n")
		sb.WriteString(indent(strings.TrimRight(b.Right.Code, "\n"), "    "))
		return sb.String()

	default:
		return ""
	}
}

// plainTable pads every cell to its column width. Widths are counted in
// runes — good enough for export output, which makes no alignment promises
// for wide glyphs.
func plainTable(t Table) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(cell)
			if w := widths[i] - len([]rune(cell)); w > 0 && i < len(cells)-1 {
				sb.WriteString(strings.Repeat(" ", w))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
