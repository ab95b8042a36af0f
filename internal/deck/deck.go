// Package deck defines the slide deck content model: an immutable, ordered
// sequence of slides, each carrying one of a closed set of content variants.
// Decks are validated at construction and never mutated afterwards — the
// viewer, exporter, and check command all read the same frozen structure.
package deck

import (
	"errors"
	"fmt"
)

// Type is the presentation category of a slide. It constrains which content
// kinds the slide may carry (see allowedKinds).
type Type string

const (
	TypeTitle      Type = "title"
	TypeList       Type = "list"
	TypeCode       Type = "code"
	TypeComparison Type = "comparison"
	TypeDiagram    Type = "diagram"
	TypeSplit      Type = "split"
)

// Kind discriminates the content variants. Every Content implementation
// reports exactly one Kind.
type Kind string

const (
	KindTitle      Kind = "title"
	KindNumbered   Kind = "numbered"
	KindBullets    Kind = "bullets"
	KindCode       Kind = "code"
	KindComparison Kind = "comparison"
	KindTable      Kind = "table"
	KindDiagram    Kind = "diagram"
	KindSplit      Kind = "split"
)

// allowedKinds maps each slide type to the content kinds it may carry.
// The comparison type accepts both the canonical table kind and the legacy
// two-column comparison shape so older deck files keep loading.
var allowedKinds = map[Type][]Kind{
	TypeTitle:      {KindTitle},
	TypeList:       {KindNumbered, KindBullets},
	TypeCode:       {KindCode},
	TypeComparison: {KindTable, KindComparison},
	TypeDiagram:    {KindDiagram},
	TypeSplit:      {KindSplit},
}

// Content is the tagged union of slide content shapes. Implementations are
// pure data; all behavior lives in the renderer.
type Content interface {
	Kind() Kind
}

// TitleContent is the opening-slide shape: a single tagline under the title.
type TitleContent struct {
	Tagline string
}

func (TitleContent) Kind() Kind { return KindTitle }

// NumberedContent is an ordered list. Rank is the 1-based position.
type NumberedContent struct {
	Items []string
}

func (NumberedContent) Kind() Kind { return KindNumbered }

// BulletItem is one bullet with an optional secondary detail line.
type BulletItem struct {
	Text   string
	Detail string
}

// BulletsContent is an order-preserving bullet list.
type BulletsContent struct {
	Items []BulletItem
}

func (BulletsContent) Kind() Kind { return KindBullets }

// CodeContent is a single code block tagged with a language for syntax
// highlighting, plus an optional caption rendered after the block.
type CodeContent struct {
	Language string
	Code     string
	Caption  string
}

func (CodeContent) Kind() Kind { return KindCode }

// ComparisonColumn is one side of the legacy two-column comparison shape.
type ComparisonColumn struct {
	Title string
	Items []string
}

// ComparisonContent is the legacy comparison shape, superseded by
// TableContent. Kept for backward compatibility with older deck files.
type ComparisonContent struct {
	Left  ComparisonColumn
	Right ComparisonColumn
}

func (ComparisonContent) Kind() Kind { return KindComparison }

// TableContent is a header row plus body rows. Every row must have exactly
// len(Headers) cells; construction validates this.
type TableContent struct {
	Headers []string
	Rows    [][]string
}

func (TableContent) Kind() Kind { return KindTable }

// DiagramContent is preformatted text (typically box-drawing art) rendered
// byte-for-byte, whitespace significant.
type DiagramContent struct {
	ASCII   string
	Caption string
}

func (DiagramContent) Kind() Kind { return KindDiagram }

// SplitCode is the right pane of a split slide.
type SplitCode struct {
	Language string
	Code     string
}

// SplitContent is a two-pane slide: markdown-lite prose on the left
// (emphasis and list-item line prefixes only), a code block on the right.
type SplitContent struct {
	Left  string
	Right SplitCode
}

func (SplitContent) Kind() Kind { return KindSplit }

// Slide is one entry in the deck. Notes are optional speaker notes in
// markdown, shown by the viewer in an overlay and ignored by export.
type Slide struct {
	ID       int
	Title    string
	Subtitle string
	Type     Type
	Content  Content
	Notes    string
}

// SchemaViolationError reports a single invariant failure found while
// constructing a deck. SlideID is 0 for deck-level violations.
type SchemaViolationError struct {
	SlideID int
	Reason  string
}

func (e *SchemaViolationError) Error() string {
	if e.SlideID == 0 {
		return "schema violation: " + e.Reason
	}
	return fmt.Sprintf("schema violation: slide %d: %s", e.SlideID, e.Reason)
}

// Deck is the validated, frozen slide sequence. Iteration order is the
// presentation order.
type Deck struct {
	title  string
	slides []Slide
}

// New validates the slides and returns a frozen deck. All violations are
// reported, joined into a single error, so callers like the check command
// can surface the complete list rather than the first failure.
func New(title string, slides []Slide) (*Deck, error) {
	if problems := Check(slides); len(problems) > 0 {
		errs := make([]error, len(problems))
		for i, p := range problems {
			errs[i] = p
		}
		return nil, errors.Join(errs...)
	}
	d := &Deck{title: title, slides: make([]Slide, len(slides))}
	copy(d.slides, slides)
	return d, nil
}

// Check returns every schema violation in the slide sequence. A nil result
// means the sequence forms a valid deck.
func Check(slides []Slide) []*SchemaViolationError {
	var problems []*SchemaViolationError
	violate := func(id int, format string, args ...any) {
		problems = append(problems, &SchemaViolationError{
			SlideID: id,
			Reason:  fmt.Sprintf(format, args...),
		})
	}

	if len(slides) == 0 {
		violate(0, "deck has no slides")
		return problems
	}

	prevID := 0
	for _, s := range slides {
		if s.ID <= 0 {
			violate(s.ID, "id must be positive, got %d", s.ID)
		} else if s.ID <= prevID {
			violate(s.ID, "id must increase in deck order (previous id %d)", prevID)
		}
		if s.ID > prevID {
			prevID = s.ID
		}

		if s.Title == "" {
			violate(s.ID, "title must not be empty")
		}

		kinds, ok := allowedKinds[s.Type]
		if !ok {
			violate(s.ID, "unknown slide type %q", s.Type)
		} else if s.Content == nil {
			violate(s.ID, "content is missing")
		} else if !kindAllowed(s.Content.Kind(), kinds) {
			violate(s.ID, "content kind %q not allowed for type %q", s.Content.Kind(), s.Type)
		}

		if t, ok := s.Content.(TableContent); ok {
			for i, row := range t.Rows {
				if len(row) != len(t.Headers) {
					violate(s.ID, "table row %d has %d cells, want %d", i+1, len(row), len(t.Headers))
				}
			}
		}
	}

	return problems
}

func kindAllowed(k Kind, kinds []Kind) bool {
	for _, allowed := range kinds {
		if k == allowed {
			return true
		}
	}
	return false
}

// Title returns the deck title.
func (d *Deck) Title() string { return d.title }

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.slides) }

// Slide returns the slide at position i in presentation order.
// i must be in [0, Len()-1].
func (d *Deck) Slide(i int) Slide { return d.slides[i] }

// Slides returns a copy of the slide sequence in presentation order.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	copy(out, d.slides)
	return out
}
