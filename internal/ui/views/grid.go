package views

import (
	"path"

	"github.com/charmbracelet/lipgloss"

	"lightgrid/internal/domain"
	"lightgrid/internal/masonry"
)

// GridRenderer renders the masonry browse view. Distribution comes from the
// masonry package; this renderer only decides how buckets stack spatially.
type GridRenderer struct {
	styles *Styles
}

// NewGridRenderer creates a new grid renderer
func NewGridRenderer(styles *Styles) *GridRenderer {
	return &GridRenderer{styles: styles}
}

// cell pairs an image with its original position so striping can carry the
// cursor through the buckets.
type cell struct {
	image domain.Image
	pos   int
}

// Render lays the images out as bucketCount columns or rows. cursor is the
// original-position index of the highlighted cell, -1 for none.
func (gr *GridRenderer) Render(images []domain.Image, bucketCount int, orientation domain.Orientation, cursor, width int) string {
	if len(images) == 0 {
		return gr.styles.Dim.Render("no images in gallery")
	}

	cells := make([]cell, len(images))
	for i, img := range images {
		cells[i] = cell{image: img, pos: i}
	}
	buckets := masonry.DistributeClamped(cells, bucketCount)

	if orientation == domain.OrientRows {
		rows := make([]string, len(buckets))
		for i, b := range buckets {
			rows[i] = gr.renderTrack(b, cursor, lipgloss.JoinHorizontal, lipgloss.Top)
		}
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	cellWidth := width/len(buckets) - 2 // border columns
	cols := make([]string, len(buckets))
	for i, b := range buckets {
		cols[i] = gr.renderColumn(b, cursor, cellWidth)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (gr *GridRenderer) renderColumn(track []cell, cursor, cellWidth int) string {
	if len(track) == 0 {
		return ""
	}
	rendered := make([]string, len(track))
	for i, c := range track {
		rendered[i] = gr.renderCell(c, cursor, cellWidth)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (gr *GridRenderer) renderTrack(track []cell, cursor int,
	join func(lipgloss.Position, ...string) string, pos lipgloss.Position) string {
	if len(track) == 0 {
		return ""
	}
	rendered := make([]string, len(track))
	for i, c := range track {
		rendered[i] = gr.renderCell(c, cursor, 0)
	}
	return join(pos, rendered...)
}

func (gr *GridRenderer) renderCell(c cell, cursor, cellWidth int) string {
	title := c.image.Title
	if title == "" {
		title = path.Base(c.image.Ref)
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		gr.styles.CellTitle.Render(title),
		gr.styles.CellRef.Render(c.image.Ref),
	)

	style := gr.styles.Cell
	if c.pos == cursor {
		style = gr.styles.CellActive
	}
	if cellWidth > 0 {
		style = style.Width(cellWidth)
	}
	return style.Render(content)
}
