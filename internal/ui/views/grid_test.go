package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightgrid/internal/config"
	"lightgrid/internal/domain"
)

func testImages(n int) []domain.Image {
	names := []string{"alps", "coast", "market", "dunes", "harbor", "forest"}
	imgs := make([]domain.Image, n)
	for i := range imgs {
		imgs[i] = domain.Image{Ref: "photos/" + names[i%len(names)] + ".jpg", Title: names[i%len(names)]}
	}
	return imgs
}

func TestGridRenderShowsAllImages(t *testing.T) {
	gr := NewGridRenderer(NewStyles(config.DefaultConfig().Display))

	out := gr.Render(testImages(6), 3, domain.OrientColumns, 0, 90)
	for _, title := range []string{"alps", "coast", "market", "dunes", "harbor", "forest"} {
		assert.Contains(t, out, title)
	}
}

func TestGridRenderColumnsStackPerpendicular(t *testing.T) {
	gr := NewGridRenderer(NewStyles(config.DefaultConfig().Display))
	imgs := testImages(6)

	cols := gr.Render(imgs, 3, domain.OrientColumns, -1, 90)
	rows := gr.Render(imgs, 3, domain.OrientRows, -1, 90)

	// Three columns of two cells stand taller than three rows of two cells
	// side by side.
	assert.Greater(t, lipgloss.Height(cols), lipgloss.Height(rows)/2)
	assert.Greater(t, lipgloss.Width(rows), 0)

	// Column 0 holds positions 0 and 3: "alps" above "dunes".
	require.Contains(t, cols, "alps")
	assert.Less(t, strings.Index(cols, "alps"), strings.Index(cols, "dunes"))
}

func TestGridRenderEmptyGallery(t *testing.T) {
	gr := NewGridRenderer(NewStyles(config.DefaultConfig().Display))
	out := gr.Render(nil, 3, domain.OrientColumns, -1, 80)
	assert.Contains(t, out, "no images")
}

func TestGridRenderClampsBadBucketCount(t *testing.T) {
	gr := NewGridRenderer(NewStyles(config.DefaultConfig().Display))
	out := gr.Render(testImages(3), 0, domain.OrientColumns, -1, 80)
	assert.Contains(t, out, "alps")
}
