// Package viewer implements the full-screen terminal slideshow. It wires
// the navigation controller to bubbletea: key presses become controller
// calls, the settle delay is a scheduled tick message, and each slide's
// styled frame is rendered once and cached by slide id.
package viewer

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/baiirun/slipdeck/internal/deck"
	"github.com/baiirun/slipdeck/internal/render"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultSettleDelay is used when the config leaves the delay unset.
const DefaultSettleDelay = 150 * time.Millisecond

// Config holds everything the viewer needs to present a deck.
type Config struct {
	// Deck is the validated slide sequence. Required.
	Deck *deck.Deck

	// SettleDelay is the pause between a navigation request and the index
	// change taking effect. The transition guard stays up for its duration.
	SettleDelay time.Duration

	// SyntaxStyle is the chroma style name for code highlighting.
	SyntaxStyle string

	// Accent is the lipgloss color for indicators and diagram art.
	Accent string

	// Logger receives render anomalies. Defaults to slog.Default().
	Logger *slog.Logger
}

// keyMap declares the navigation bindings. Digits are handled separately
// in Update since a binding per ordinal would be noise.
type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Notes key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("right", " ", "l")),
		Prev:  key.NewBinding(key.WithKeys("left", "h")),
		First: key.NewBinding(key.WithKeys("g", "home")),
		Last:  key.NewBinding(key.WithKeys("G", "end")),
		Notes: key.NewBinding(key.WithKeys("n")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// settledMsg fires when the settle delay elapses and the pending index
// should be committed.
type settledMsg struct{}

// Model is the top-level bubbletea model for the slideshow.
type Model struct {
	cfg    Config
	deck   *deck.Deck
	ctrl   *Controller
	hl     *render.Highlighter
	keys   keyMap
	logger *slog.Logger
	accent lipgloss.Style

	// frames caches fully styled slide bodies keyed by slide id. The
	// stable key means navigating back to a slide reuses its frame
	// instead of re-rendering and re-highlighting it.
	frames map[int]string

	showNotes bool
	notes     viewport.Model

	width  int
	height int
}

// New creates a viewer model for the configured deck.
func New(cfg Config) Model {
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Accent == "" {
		cfg.Accent = "12"
	}
	return Model{
		cfg:    cfg,
		deck:   cfg.Deck,
		ctrl:   NewController(cfg.Deck.Len()),
		hl:     render.NewHighlighter(cfg.SyntaxStyle),
		keys:   defaultKeyMap(),
		logger: cfg.Logger,
		accent: accentStyle(cfg.Accent),
		frames: make(map[int]string),
	}
}

// Index returns the controller's current slide index. Exposed for tests.
func (m Model) Index() int { return m.ctrl.Index() }

// Transitioning reports whether a navigation is in flight. Exposed for tests.
func (m Model) Transitioning() bool { return m.ctrl.Transitioning() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// settleCmd schedules the settle message after the configured delay.
func (m Model) settleCmd() tea.Cmd {
	return tea.Tick(m.cfg.SettleDelay, func(time.Time) tea.Msg {
		return settledMsg{}
	})
}

// Update implements tea.Model. Navigation keys feed the controller; an
// accepted request schedules exactly one settle tick, so transitions stay
// serialized no matter how fast keys arrive.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Frames are width-dependent; drop the cache on resize.
		m.frames = make(map[int]string)
		if m.showNotes {
			m.initNotes()
		}

	case settledMsg:
		m.ctrl.Settle()
		if m.showNotes {
			m.initNotes()
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if m.ctrl.Next() {
			return m, m.settleCmd()
		}

	case key.Matches(msg, m.keys.Prev):
		if m.ctrl.Prev() {
			return m, m.settleCmd()
		}

	case key.Matches(msg, m.keys.First):
		if m.ctrl.GoTo(0) {
			return m, m.settleCmd()
		}

	case key.Matches(msg, m.keys.Last):
		if m.ctrl.GoTo(m.deck.Len() - 1) {
			return m, m.settleCmd()
		}

	case key.Matches(msg, m.keys.Notes):
		m.showNotes = !m.showNotes
		if m.showNotes {
			m.initNotes()
		}

	default:
		// Digit keys act as per-slide indicators: jump to that ordinal.
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= 9 {
			if m.ctrl.GoTo(n - 1) {
				return m, m.settleCmd()
			}
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.deck.Len() == 0 {
		return ""
	}

	slide := m.deck.Slide(m.ctrl.Index())

	var b strings.Builder
	b.WriteString(m.viewHeader(slide))
	b.WriteString("\n")
	b.WriteString(m.viewBody(slide))
	b.WriteString("\n")
	if m.showNotes {
		b.WriteString(m.viewNotes())
		b.WriteString("\n")
	}
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the slide title line with the deck position.
func (m Model) viewHeader(s deck.Slide) string {
	pos := dimStyle.Render(fmt.Sprintf("%d/%d", m.ctrl.Index()+1, m.deck.Len()))

	header := titleStyle.Render(s.Title)
	if s.Subtitle != "" {
		header += "  " + subtitleStyle.Render(s.Subtitle)
	}

	return fmt.Sprintf("\n  %s  %s\n", header, pos)
}

// viewBody renders the slide content. While a transition is in flight the
// body is realized as dimmed plain text — the fade effect driven by the
// transition guard; the styled frame returns once the transition settles.
func (m Model) viewBody(s deck.Slide) string {
	if m.ctrl.Transitioning() {
		return indentBlock(fadeStyle.Render(render.PlainText(render.Render(s))))
	}
	return indentBlock(m.frame(s))
}

// viewFooter renders one indicator per slide plus the key help line.
func (m Model) viewFooter() string {
	var dots strings.Builder
	for i := 0; i < m.deck.Len(); i++ {
		if i > 0 {
			dots.WriteString(" ")
		}
		if i == m.ctrl.Index() {
			dots.WriteString(m.accent.Render("●"))
		} else {
			dots.WriteString(dimStyle.Render("○"))
		}
	}

	help := dimStyle.Render("←/→ space navigate  1-9 jump  g/G ends  n notes  q quit")
	return fmt.Sprintf("\n  %s\n  %s\n", dots.String(), help)
}

// indentBlock prefixes every line with a two-space left margin.
func indentBlock(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}

// Run presents the deck full-screen until the user quits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
