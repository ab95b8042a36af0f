// Package render maps slide content variants to a backend-neutral block
// tree. Render is a pure function: no state, no side effects, identical
// output for identical input. The viewer realizes blocks as styled terminal
// text, the export command as plain text — both from the same tree.
package render

import (
	"strings"

	"github.com/baiirun/slipdeck/internal/deck"
)

// Output is the rendered form of one slide.
type Output struct {
	Blocks []Block
}

// Block is one renderable unit within a slide.
type Block interface {
	block()
}

// Tagline is the opening-slide line under the title.
type Tagline struct {
	Text string
}

// OrderedList preserves input order; rank is the 1-based position.
type OrderedList struct {
	Items []string
}

// ListItem is one bullet with an optional secondary detail.
type ListItem struct {
	Text   string
	Detail string
}

// BulletList is an order-preserving unordered list.
type BulletList struct {
	Items []ListItem
}

// CodeBlock is a preformatted block tagged with a language for syntax
// highlighting. Caption, when present, renders after the block.
type CodeBlock struct {
	Language string
	Code     string
	Caption  string
}

// Table is a header row plus body rows, cell order preserved, no sorting.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Diagram is whitespace-significant preformatted text.
type Diagram struct {
	ASCII   string
	Caption string
}

// LineClass classifies one line of a split slide's left pane.
type LineClass int

const (
	LinePlain LineClass = iota
	LineEmphasis
	LineListItem
)

// Line is one classified line of split-pane prose.
type Line struct {
	Class LineClass
	Text  string
}

// Split is a two-pane block: classified prose left, code right.
type Split struct {
	Left  []Line
	Right CodeBlock
}

func (Tagline) block()     {}
func (OrderedList) block() {}
func (BulletList) block()  {}
func (CodeBlock) block()   {}
func (Table) block()       {}
func (Diagram) block()     {}
func (Split) block()       {}

// Render maps a slide's content variant to its block tree. The switch is
// exhaustive over the content kinds; anything else (nil content, a variant
// added without a case here) yields an empty Output rather than a panic —
// deck validation already excludes it, so the caller logs and moves on.
func Render(s deck.Slide) Output {
	switch c := s.Content.(type) {
	case deck.TitleContent:
		return Output{Blocks: []Block{Tagline{Text: c.Tagline}}}

	case deck.NumberedContent:
		items := make([]string, len(c.Items))
		copy(items, c.Items)
		return Output{Blocks: []Block{OrderedList{Items: items}}}

	case deck.BulletsContent:
		items := make([]ListItem, len(c.Items))
		for i, it := range c.Items {
			items[i] = ListItem{Text: it.Text, Detail: it.Detail}
		}
		return Output{Blocks: []Block{BulletList{Items: items}}}

	case deck.CodeContent:
		return Output{Blocks: []Block{CodeBlock{
			Language: c.Language,
			Code:     c.Code,
			Caption:  c.Caption,
		}}}

	case deck.ComparisonContent:
		return Output{Blocks: []Block{comparisonTable(c)}}

	case deck.TableContent:
		rows := make([][]string, len(c.Rows))
		for i, r := range c.Rows {
			rows[i] = append([]string(nil), r...)
		}
		return Output{Blocks: []Block{Table{
			Headers: append([]string(nil), c.Headers...),
			Rows:    rows,
		}}}

	case deck.DiagramContent:
		return Output{Blocks: []Block{Diagram{ASCII: c.ASCII, Caption: c.Caption}}}

	case deck.SplitContent:
		return Output{Blocks: []Block{Split{
			Left: SplitLines(c.Left),
			Right: CodeBlock{
				Language: c.Right.Language,
				Code:     c.Right.Code,
			},
		}}}

	default:
		return Output{}
	}
}

// comparisonTable converts the legacy two-column shape into the canonical
// table form: column titles become headers, items pair up row by row, and
// the shorter column pads with empty cells.
func comparisonTable(c deck.ComparisonContent) Table {
	n := max(len(c.Left.Items), len(c.Right.Items))
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := []string{"", ""}
		if i < len(c.Left.Items) {
			row[0] = c.Left.Items[i]
		}
		if i < len(c.Right.Items) {
			row[1] = c.Right.Items[i]
		}
		rows[i] = row
	}
	return Table{Headers: []string{c.Left.Title, c.Right.Title}, Rows: rows}
}

// SplitLines classifies the left pane text line by line. First match wins:
// a line wrapped in ** markers is emphasis (markers stripped), a "- " prefix
// is a list item (prefix kept verbatim), anything else is plain prose.
func SplitLines(text string) []Line {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}

	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	for i, l := range raw {
		lines[i] = classifyLine(l)
	}
	return lines
}

func classifyLine(l string) Line {
	switch {
	case len(l) >= 4 && strings.HasPrefix(l, "**") && strings.HasSuffix(l, "**"):
		return Line{Class: LineEmphasis, Text: l[2 : len(l)-2]}
	case strings.HasPrefix(l, "- "):
		return Line{Class: LineListItem, Text: l}
	default:
		return Line{Class: LinePlain, Text: l}
	}
}
