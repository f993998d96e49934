package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lightgrid/internal/config"
	"lightgrid/internal/domain"
	"lightgrid/internal/eventbus"
	"lightgrid/internal/gallery"
	"lightgrid/internal/lightbox"
	"lightgrid/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	cfg      *config.Config
	gal      *gallery.Gallery
	bus      eventbus.EventBus
	nav      *lightbox.Service
	renderer *views.Renderer

	keys      KeyMap
	help      help.Model
	jumpInput textinput.Model
	jumping   bool

	cursor      int // grid cursor, original image position
	thumbOffset int // first visible thumbnail in the strip
	width       int
	height      int
	status      string
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, gal *gallery.Gallery, bus eventbus.EventBus) *Model {
	cfg.Normalize()

	thumbs := cfg.Display.ThumbPlacement != domain.ThumbsHidden && gal.HasThumbs()
	nav := lightbox.NewService(bus, gal.Count(), thumbs)
	nav.SetRefFunction(gal.Ref)

	ti := textinput.New()
	ti.Placeholder = "1"
	ti.CharLimit = 5
	ti.Width = 6

	return &Model{
		cfg:       cfg,
		gal:       gal,
		bus:       bus,
		nav:       nav,
		renderer:  views.NewRenderer(cfg.Display),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		jumpInput: ti,
	}
}

// Navigator exposes the lightbox service, mainly for tests.
func (m *Model) Navigator() *lightbox.Service { return m.nav }

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case scrollThumbMsg:
		// Runs after the render commit for the transition that emitted it,
		// the earliest point where the strip window may be measured.
		visible := views.VisibleThumbs(m.width, m.cfg.Display.ThumbSize, m.cfg.Display.ThumbBorderWidth)
		m.thumbOffset = views.ScrollThumbIntoView(m.thumbOffset, msg.index, len(m.gal.Thumbs), visible)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.jumping {
			return m.handleJumpKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.nav.State().IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Left):
			return m, effectsCmd(m.nav.Previous())
		case key.Matches(msg, m.keys.Right):
			return m, effectsCmd(m.nav.Next())
		case key.Matches(msg, m.keys.Close):
			m.nav.Close()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.verticalStep())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.verticalStep())
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-m.horizontalStep())
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(m.horizontalStep())
	case key.Matches(msg, m.keys.Open):
		return m, m.openAt(m.cursor)
	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jumpInput.SetValue("")
		return m, m.jumpInput.Focus()
	}
	return m, nil
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.jumping = false
		m.jumpInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.jumping = false
		m.jumpInput.Blur()
		n, err := strconv.Atoi(strings.TrimSpace(m.jumpInput.Value()))
		if err != nil {
			m.status = "not a number"
			return m, nil
		}
		return m, m.openAt(n - 1) // shown numbers are 1-based
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// The original gesture surface maps swipes to previous/next and a tap
	// outside the strip to close; wheel and click are the terminal analogues.
	if m.nav.State().IsOpen() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m, effectsCmd(m.nav.Previous())
		case tea.MouseButtonWheelDown:
			return m, effectsCmd(m.nav.Next())
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress {
				m.nav.Close()
			}
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-m.verticalStep())
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.verticalStep())
	}
	return m, nil
}

// verticalStep is the cursor distance between vertical neighbors. With
// round-robin striping into K buckets, adjacent cells in a column are K
// positions apart; in row orientation they are 1 apart.
func (m *Model) verticalStep() int {
	if m.cfg.Display.BucketOrientation == domain.OrientRows {
		return 1
	}
	return m.cfg.Display.BucketCount
}

func (m *Model) horizontalStep() int {
	if m.cfg.Display.BucketOrientation == domain.OrientRows {
		return m.cfg.Display.BucketCount
	}
	return 1
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= m.gal.Count() {
		return
	}
	m.cursor = next
}

func (m *Model) openAt(index int) tea.Cmd {
	effects, err := m.nav.Open(index)
	if err != nil {
		m.status = fmt.Sprintf("cannot open image %d: %v", index+1, err)
		return nil
	}
	m.status = ""
	m.cursor = index
	return effectsCmd(effects)
}

// effectsCmd turns transition effects into a command so they are handled
// only after the next render commit.
func effectsCmd(effects []lightbox.Effect) tea.Cmd {
	for _, e := range effects {
		if scroll, ok := e.(lightbox.ScrollThumbIntoView); ok {
			index := scroll.Index
			return func() tea.Msg { return scrollThumbMsg{index: index} }
		}
	}
	return nil
}

// View implements tea.Model
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Images:        m.gal.Images,
		Thumbs:        m.gal.Thumbs,
		Cursor:        m.cursor,
		Lightbox:      m.nav.State(),
		ThumbOffset:   m.thumbOffset,
		StatusMessage: m.status,
		HelpView:      m.help.View(m.keys),
		Jumping:       m.jumping,
		JumpView:      m.jumpInput.View(),
	})
}
