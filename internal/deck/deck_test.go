package deck

import (
	"errors"
	"strings"
	"testing"
)

// validSlides returns a minimal deck that passes every invariant.
// Tests mutate copies of it to trigger specific violations.
func validSlides() []Slide {
	return []Slide{
		{ID: 1, Title: "Welcome", Type: TypeTitle, Content: TitleContent{Tagline: "hi"}},
		{ID: 2, Title: "Steps", Type: TypeList, Content: NumberedContent{Items: []string{"a", "b"}}},
		{ID: 3, Title: "Matrix", Type: TypeComparison, Content: TableContent{
			Headers: []string{"A", "B"},
			Rows:    [][]string{{"1", "2"}, {"3", "4"}},
		}},
	}
}

func TestNewValidDeck(t *testing.T) {
	d, err := New("test", validSlides())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Len() != 3 {
		t.Errorf("Len = %d, want 3", d.Len())
	}
	if d.Title() != "test" {
		t.Errorf("Title = %q, want %q", d.Title(), "test")
	}
	if d.Slide(1).ID != 2 {
		t.Errorf("Slide(1).ID = %d, want 2", d.Slide(1).ID)
	}
}

func TestCheckViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]Slide) []Slide
		slideID int
		reason  string
	}{
		{
			name:    "kind not allowed for type",
			mutate:  setContent(1, TypeTitle, NumberedContent{Items: []string{"x"}}),
			slideID: 2,
			reason:  "not allowed for type",
		},
		{
			name: "table row width mismatch",
			mutate: setContent(2, TypeComparison, TableContent{
				Headers: []string{"A", "B"},
				Rows:    [][]string{{"1", "2"}, {"only one"}},
			}),
			slideID: 3,
			reason:  "table row 2 has 1 cells, want 2",
		},
		{
			name: "duplicate id",
			mutate: func(s []Slide) []Slide {
				s[1].ID = 1
				return s
			},
			slideID: 1,
			reason:  "must increase",
		},
		{
			name: "decreasing id",
			mutate: func(s []Slide) []Slide {
				s[2].ID = 1
				return s
			},
			slideID: 1,
			reason:  "must increase",
		},
		{
			name: "non-positive id",
			mutate: func(s []Slide) []Slide {
				s[0].ID = 0
				return s
			},
			slideID: 0,
			reason:  "must be positive",
		},
		{
			name: "empty title",
			mutate: func(s []Slide) []Slide {
				s[1].Title = ""
				return s
			},
			slideID: 2,
			reason:  "title must not be empty",
		},
		{
			name: "missing content",
			mutate: func(s []Slide) []Slide {
				s[0].Content = nil
				return s
			},
			slideID: 1,
			reason:  "content is missing",
		},
		{
			name: "unknown type",
			mutate: func(s []Slide) []Slide {
				s[0].Type = "hologram"
				return s
			},
			slideID: 1,
			reason:  "unknown slide type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slides := tt.mutate(validSlides())
			problems := Check(slides)
			if len(problems) == 0 {
				t.Fatal("Check found no violations")
			}
			found := false
			for _, p := range problems {
				if p.SlideID == tt.slideID && strings.Contains(p.Reason, tt.reason) {
					found = true
				}
			}
			if !found {
				t.Errorf("no violation for slide %d containing %q, got %v", tt.slideID, tt.reason, problems)
			}

			if _, err := New("test", slides); err == nil {
				t.Error("New accepted invalid slides")
			}
		})
	}
}

// setContent replaces the content (and type) of the slide at index i.
func setContent(i int, typ Type, c Content) func([]Slide) []Slide {
	return func(s []Slide) []Slide {
		s[i].Type = typ
		s[i].Content = c
		return s
	}
}

func TestCheckReportsAllViolations(t *testing.T) {
	slides := validSlides()
	slides[0].Title = ""
	slides[1].Title = ""
	problems := Check(slides)
	if len(problems) != 2 {
		t.Errorf("got %d violations, want 2: %v", len(problems), problems)
	}
}

func TestCheckEmptyDeck(t *testing.T) {
	problems := Check(nil)
	if len(problems) != 1 {
		t.Fatalf("got %d violations, want 1", len(problems))
	}
	if !strings.Contains(problems[0].Reason, "no slides") {
		t.Errorf("reason = %q, want mention of empty deck", problems[0].Reason)
	}
}

func TestNewErrorIsSchemaViolation(t *testing.T) {
	slides := validSlides()
	slides[0].Title = ""
	_, err := New("test", slides)

	var sv *SchemaViolationError
	if !errors.As(err, &sv) {
		t.Fatalf("error %v does not unwrap to SchemaViolationError", err)
	}
	if sv.SlideID != 1 {
		t.Errorf("SlideID = %d, want 1", sv.SlideID)
	}
}

func TestLegacyComparisonKindAllowed(t *testing.T) {
	slides := []Slide{
		{ID: 1, Title: "Old vs new", Type: TypeComparison, Content: ComparisonContent{
			Left:  ComparisonColumn{Title: "Before", Items: []string{"manual"}},
			Right: ComparisonColumn{Title: "After", Items: []string{"delegated"}},
		}},
	}
	if _, err := New("legacy", slides); err != nil {
		t.Errorf("legacy comparison content rejected: %v", err)
	}
}

func TestSlidesReturnsCopy(t *testing.T) {
	d, err := New("test", validSlides())
	if err != nil {
		t.Fatal(err)
	}
	s := d.Slides()
	s[0].Title = "mutated"
	if d.Slide(0).Title == "mutated" {
		t.Error("mutating Slides() result changed the deck")
	}
}

func TestBuiltinDeck(t *testing.T) {
	d, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if d.Len() == 0 {
		t.Fatal("builtin deck is empty")
	}
	// The bundled deck should exercise every content kind the renderer
	// dispatches on, legacy comparison excepted.
	want := map[Kind]bool{
		KindTitle: false, KindNumbered: false, KindBullets: false,
		KindCode: false, KindTable: false, KindDiagram: false, KindSplit: false,
	}
	for _, s := range d.Slides() {
		want[s.Content.Kind()] = true
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("builtin deck has no %q slide", k)
		}
	}
}
