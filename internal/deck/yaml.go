package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDeck mirrors the on-disk YAML structure. Content is held as a raw
// node so the variant can be decoded after reading its kind tag.
type fileDeck struct {
	Title  string      `yaml:"title"`
	Slides []fileSlide `yaml:"slides"`
}

type fileSlide struct {
	ID       int       `yaml:"id"`
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Type     string    `yaml:"type"`
	Notes    string    `yaml:"notes"`
	Content  yaml.Node `yaml:"content"`
}

type fileBulletItem struct {
	Text   string `yaml:"text"`
	Detail string `yaml:"detail"`
}

type fileColumn struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type fileSplitCode struct {
	Language string `yaml:"language"`
	Code     string `yaml:"code"`
}

// Parse decodes a YAML deck definition and validates it.
func Parse(data []byte) (*Deck, error) {
	var file fileDeck
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing deck: %w", err)
	}

	slides := make([]Slide, 0, len(file.Slides))
	for _, fs := range file.Slides {
		content, err := decodeContent(&fs.Content)
		if err != nil {
			return nil, &SchemaViolationError{SlideID: fs.ID, Reason: err.Error()}
		}
		slides = append(slides, Slide{
			ID:       fs.ID,
			Title:    fs.Title,
			Subtitle: fs.Subtitle,
			Type:     Type(fs.Type),
			Content:  content,
			Notes:    fs.Notes,
		})
	}

	return New(file.Title, slides)
}

// Load reads and parses a deck file from disk.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck file %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("deck file %s: %w", path, err)
	}
	return d, nil
}

// decodeContent reads the kind tag from the content node, then decodes the
// node into the matching variant. An unknown kind is a schema violation, not
// a parse error — the YAML itself is well-formed.
func decodeContent(n *yaml.Node) (Content, error) {
	if n.IsZero() {
		return nil, fmt.Errorf("content is missing")
	}

	var tag struct {
		Kind string `yaml:"kind"`
	}
	if err := n.Decode(&tag); err != nil {
		return nil, fmt.Errorf("decoding content kind: %w", err)
	}

	switch Kind(tag.Kind) {
	case KindTitle:
		var v struct {
			Tagline string `yaml:"tagline"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return TitleContent{Tagline: v.Tagline}, nil

	case KindNumbered:
		var v struct {
			Items []string `yaml:"items"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return NumberedContent{Items: v.Items}, nil

	case KindBullets:
		var v struct {
			Items []fileBulletItem `yaml:"items"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		items := make([]BulletItem, len(v.Items))
		for i, it := range v.Items {
			items[i] = BulletItem{Text: it.Text, Detail: it.Detail}
		}
		return BulletsContent{Items: items}, nil

	case KindCode:
		var v struct {
			Language string `yaml:"language"`
			Code     string `yaml:"code"`
			Caption  string `yaml:"caption"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return CodeContent{Language: v.Language, Code: v.Code, Caption: v.Caption}, nil

	case KindComparison:
		var v struct {
			Left  fileColumn `yaml:"left"`
			Right fileColumn `yaml:"right"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return ComparisonContent{
			Left:  ComparisonColumn{Title: v.Left.Title, Items: v.Left.Items},
			Right: ComparisonColumn{Title: v.Right.Title, Items: v.Right.Items},
		}, nil

	case KindTable:
		var v struct {
			Headers []string   `yaml:"headers"`
			Rows    [][]string `yaml:"rows"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return TableContent{Headers: v.Headers, Rows: v.Rows}, nil

	case KindDiagram:
		var v struct {
			ASCII   string `yaml:"ascii"`
			Caption string `yaml:"caption"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return DiagramContent{ASCII: v.ASCII, Caption: v.Caption}, nil

	case KindSplit:
		var v struct {
			Left  string        `yaml:"left"`
			Right fileSplitCode `yaml:"right"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return SplitContent{
			Left:  v.Left,
			Right: SplitCode{Language: v.Right.Language, Code: v.Right.Code},
		}, nil

	default:
		return nil, fmt.Errorf("unknown content kind %q", tag.Kind)
	}
}
