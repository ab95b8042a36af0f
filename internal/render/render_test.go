package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/baiirun/slipdeck/internal/deck"
)

func TestSplitLineClassification(t *testing.T) {
	tests := []struct {
		line string
		want Line
	}{
		{"**Bold**", Line{Class: LineEmphasis, Text: "Bold"}},
		{"- item", Line{Class: LineListItem, Text: "- item"}},
		{"plain text", Line{Class: LinePlain, Text: "plain text"}},
		// Emphasis wins over list when both could apply to a wrapped line.
		{"**- tricky**", Line{Class: LineEmphasis, Text: "- tricky"}},
		// A lone ** pair is not emphasis.
		{"**", Line{Class: LinePlain, Text: "**"}},
		{"****", Line{Class: LineEmphasis, Text: ""}},
		// Leading ** without trailing markers stays plain.
		{"**half bold", Line{Class: LinePlain, Text: "**half bold"}},
		{"-not a list", Line{Class: LinePlain, Text: "-not a list"}},
		{"", Line{Class: LinePlain, Text: ""}},
	}

	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestSplitLinesOrder(t *testing.T) {
	lines := SplitLines("**Head**\n- one\n- two\ntail\n")
	want := []Line{
		{Class: LineEmphasis, Text: "Head"},
		{Class: LineListItem, Text: "- one"},
		{Class: LineListItem, Text: "- two"},
		{Class: LinePlain, Text: "tail"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("SplitLines = %+v, want %+v", lines, want)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	slides := []deck.Slide{
		{ID: 1, Type: deck.TypeTitle, Content: deck.TitleContent{Tagline: "hi"}},
		{ID: 2, Type: deck.TypeList, Content: deck.BulletsContent{Items: []deck.BulletItem{{Text: "a", Detail: "d"}}}},
		{ID: 3, Type: deck.TypeSplit, Content: deck.SplitContent{Left: "**x**\n- y", Right: deck.SplitCode{Language: "go", Code: "x := 1"}}},
	}
	for _, s := range slides {
		first := Render(s)
		second := Render(s)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("slide %d: repeated Render differs: %+v vs %+v", s.ID, first, second)
		}
	}
}

func TestRenderNumberedPreservesOrder(t *testing.T) {
	out := Render(deck.Slide{
		ID:      1,
		Type:    deck.TypeList,
		Content: deck.NumberedContent{Items: []string{"c", "a", "b"}},
	})
	if len(out.Blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(out.Blocks))
	}
	ol, ok := out.Blocks[0].(OrderedList)
	if !ok {
		t.Fatalf("block is %T, want OrderedList", out.Blocks[0])
	}
	if !reflect.DeepEqual(ol.Items, []string{"c", "a", "b"}) {
		t.Errorf("items = %v, input order not preserved", ol.Items)
	}
}

func TestRenderTable(t *testing.T) {
	out := Render(deck.Slide{
		ID:   1,
		Type: deck.TypeComparison,
		Content: deck.TableContent{
			Headers: []string{"A", "B"},
			Rows:    [][]string{{"1", "2"}, {"3", "4"}},
		},
	})
	tbl, ok := out.Blocks[0].(Table)
	if !ok {
		t.Fatalf("block is %T, want Table", out.Blocks[0])
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	for i, row := range tbl.Rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(row))
		}
	}
	if tbl.Rows[0][0] != "1" || tbl.Rows[1][1] != "4" {
		t.Errorf("cell order not preserved: %v", tbl.Rows)
	}
}

func TestRenderLegacyComparisonBecomesTable(t *testing.T) {
	out := Render(deck.Slide{
		ID:   1,
		Type: deck.TypeComparison,
		Content: deck.ComparisonContent{
			Left:  deck.ComparisonColumn{Title: "Before", Items: []string{"a", "b", "c"}},
			Right: deck.ComparisonColumn{Title: "After", Items: []string{"x"}},
		},
	})
	tbl, ok := out.Blocks[0].(Table)
	if !ok {
		t.Fatalf("block is %T, want Table", out.Blocks[0])
	}
	if !reflect.DeepEqual(tbl.Headers, []string{"Before", "After"}) {
		t.Errorf("headers = %v", tbl.Headers)
	}
	want := [][]string{{"a", "x"}, {"b", ""}, {"c", ""}}
	if !reflect.DeepEqual(tbl.Rows, want) {
		t.Errorf("rows = %v, want %v", tbl.Rows, want)
	}
}

func TestRenderDiagramVerbatim(t *testing.T) {
	ascii := "┌──┐\n│  │\n└──┘"
	out := Render(deck.Slide{
		ID:      1,
		Type:    deck.TypeDiagram,
		Content: deck.DiagramContent{ASCII: ascii, Caption: "a box"},
	})
	d := out.Blocks[0].(Diagram)
	if d.ASCII != ascii {
		t.Errorf("ascii altered: %q", d.ASCII)
	}
	if d.Caption != "a box" {
		t.Errorf("caption = %q", d.Caption)
	}
}

// fakeContent simulates a content variant the renderer has no case for.
type fakeContent struct{}

func (fakeContent) Kind() deck.Kind { return deck.Kind("hologram") }

func TestRenderUnknownKindIsEmpty(t *testing.T) {
	out := Render(deck.Slide{ID: 1, Type: deck.TypeTitle, Content: fakeContent{}})
	if len(out.Blocks) != 0 {
		t.Errorf("unknown kind rendered %d blocks, want 0", len(out.Blocks))
	}

	out = Render(deck.Slide{ID: 2, Type: deck.TypeTitle, Content: nil})
	if len(out.Blocks) != 0 {
		t.Errorf("nil content rendered %d blocks, want 0", len(out.Blocks))
	}
}

func TestPlainTextTable(t *testing.T) {
	out := Render(deck.Slide{
		ID:   1,
		Type: deck.TypeComparison,
		Content: deck.TableContent{
			Headers: []string{"A", "B"},
			Rows:    [][]string{{"1", "2"}, {"3", "4"}},
		},
	})
	text := PlainText(out)
	lines := strings.Split(text, "\n")
	// Header, separator, two body rows.
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), text)
	}
	if !strings.HasPrefix(lines[0], "A") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "1") || !strings.Contains(lines[2], "2") {
		t.Errorf("first body row = %q", lines[2])
	}
	if !strings.Contains(lines[3], "3") || !strings.Contains(lines[3], "4") {
		t.Errorf("second body row = %q", lines[3])
	}
}

func TestPlainTextOrderedList(t *testing.T) {
	out := Render(deck.Slide{
		ID:      1,
		Type:    deck.TypeList,
		Content: deck.NumberedContent{Items: []string{"install", "login"}},
	})
	text := PlainText(out)
	if !strings.Contains(text, "1. install") || !strings.Contains(text, "2. login") {
		t.Errorf("ordered list text = %q", text)
	}
}

func TestHighlighterCachesPerSlide(t *testing.T) {
	h := NewHighlighter("monokai")
	first := h.Highlight(7, "go", "package main")
	second := h.Highlight(7, "go", "package main")
	if first != second {
		t.Error("repeated Highlight for the same slide differs")
	}
	if first == "" {
		t.Error("highlight output is empty")
	}
}

func TestHighlighterUnknownLanguageFallsBack(t *testing.T) {
	h := NewHighlighter("monokai")
	out := h.Highlight(1, "definitely-not-a-language", "some text")
	if out == "" {
		t.Error("unknown language produced empty output")
	}
}
