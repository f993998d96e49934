package views

import (
	"fmt"
	"path"

	"github.com/charmbracelet/lipgloss"

	"lightgrid/internal/config"
	"lightgrid/internal/domain"
)

// LightboxRenderer renders the full-screen overlay for one open image with
// its optional thumbnail strip.
type LightboxRenderer struct {
	styles  *Styles
	display config.Display
}

// NewLightboxRenderer creates a new lightbox renderer
func NewLightboxRenderer(styles *Styles, display config.Display) *LightboxRenderer {
	return &LightboxRenderer{styles: styles, display: display}
}

// Render draws the overlay for the image at index. thumbOffset is the first
// visible thumbnail of the strip; the model keeps it current by handling
// scroll effects after each render commit.
func (lr *LightboxRenderer) Render(images []domain.Image, thumbs []domain.Thumbnail,
	index, thumbOffset, width, height int) string {
	if index < 0 || index >= len(images) {
		return ""
	}
	img := images[index]

	title := img.Title
	if title == "" {
		title = path.Base(img.Ref)
	}
	box := lr.styles.Overlay.Render(lipgloss.JoinVertical(lipgloss.Center,
		lr.styles.CellTitle.Render(title),
		img.Ref,
		lr.styles.OverlayMeta.Render(fmt.Sprintf("%d / %d", index+1, len(images))),
	))

	sections := []string{box}
	if lr.display.ThumbPlacement != domain.ThumbsHidden && len(thumbs) > 0 {
		strip := lr.renderStrip(thumbs, index, thumbOffset, width)
		if lr.display.ThumbPlacement == domain.ThumbsAbove {
			sections = []string{strip, box}
		} else {
			sections = append(sections, strip)
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(lr.display.OverlayBackground)),
	)
}

// renderStrip draws the window of thumbnails starting at offset that fits
// the terminal width, highlighting the active one.
func (lr *LightboxRenderer) renderStrip(thumbs []domain.Thumbnail, active, offset, width int) string {
	visible := VisibleThumbs(width, lr.display.ThumbSize, lr.display.ThumbBorderWidth)
	offset = ClampThumbOffset(offset, len(thumbs), visible)

	end := offset + visible
	if end > len(thumbs) {
		end = len(thumbs)
	}

	rendered := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		style := lr.styles.Thumb
		if i == active {
			style = lr.styles.ThumbActive
		}
		rendered = append(rendered, style.Render(path.Base(thumbs[i].Ref)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

// VisibleThumbs reports how many thumbnail cells fit in width.
func VisibleThumbs(width, thumbSize, borderWidth int) int {
	per := thumbSize
	if borderWidth > 0 {
		per += 2
	}
	if per <= 0 {
		return 1
	}
	n := width / per
	if n < 1 {
		n = 1
	}
	return n
}

// ScrollThumbIntoView returns the strip offset that keeps active visible,
// moving the window as little as possible.
func ScrollThumbIntoView(offset, active, total, visible int) int {
	if active < offset {
		offset = active
	} else if active >= offset+visible {
		offset = active - visible + 1
	}
	return ClampThumbOffset(offset, total, visible)
}

// ClampThumbOffset keeps the window inside the strip.
func ClampThumbOffset(offset, total, visible int) int {
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
