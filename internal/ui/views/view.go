package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lightgrid/internal/config"
	"lightgrid/internal/domain"
	"lightgrid/internal/lightbox"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Images        []domain.Image
	Thumbs        []domain.Thumbnail
	Cursor        int
	Lightbox      lightbox.State
	ThumbOffset   int
	StatusMessage string
	HelpView      string
	Jumping       bool
	JumpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles   *Styles
	display  config.Display
	grid     *GridRenderer
	lightbox *LightboxRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(display config.Display) *Renderer {
	styles := NewStyles(display)
	return &Renderer{
		styles:   styles,
		display:  display,
		grid:     NewGridRenderer(styles),
		lightbox: NewLightboxRenderer(styles, display),
	}
}

// Styles exposes the style set for components rendered by the model.
func (r *Renderer) Styles() *Styles { return r.styles }

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	// The open lightbox replaces the grid entirely; it is a full-screen
	// overlay, not a split.
	if index, open := state.Lightbox.Current(); open {
		return r.lightbox.Render(state.Images, state.Thumbs, index, state.ThumbOffset,
			state.Width, state.Height)
	}

	content := &strings.Builder{}

	title := r.styles.Title.Render("lightgrid")
	count := r.styles.Dim.Render(fmt.Sprintf(" %d images", len(state.Images)))
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, title, count))
	content.WriteString("\n")

	content.WriteString(r.grid.Render(state.Images, r.display.BucketCount,
		r.display.BucketOrientation, state.Cursor, state.Width))
	content.WriteString("\n")

	if state.Jumping {
		content.WriteString(r.styles.JumpPrompt.Render("open image: "))
		content.WriteString(state.JumpView)
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.HelpView != "" {
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return content.String()
}
