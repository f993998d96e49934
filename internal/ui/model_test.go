package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightgrid/internal/config"
	"lightgrid/internal/domain"
	"lightgrid/internal/eventbus"
	"lightgrid/internal/gallery"
)

func testModel(t *testing.T, n int, thumbs bool) *Model {
	t.Helper()

	g := &gallery.Gallery{}
	for i := 0; i < n; i++ {
		g.Images = append(g.Images, domain.Image{Ref: "photos/img.jpg", Title: "img"})
		if thumbs {
			g.Thumbs = append(g.Thumbs, domain.Thumbnail{Ref: "thumbs/img.jpg"})
		}
	}

	cfg := config.DefaultConfig()
	if !thumbs {
		cfg.Display.ThumbPlacement = domain.ThumbsHidden
	}

	m := NewModel(cfg, g, eventbus.NullBus{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEnterOpensLightboxAtCursor(t *testing.T) {
	m := testModel(t, 6, false)

	m.Update(keyMsg("right"))
	m.Update(keyMsg("enter"))

	i, open := m.Navigator().State().Current()
	require.True(t, open)
	assert.Equal(t, 1, i)
}

func TestLightboxNavigationKeys(t *testing.T) {
	m := testModel(t, 6, false)
	m.Update(keyMsg("enter"))

	m.Update(keyMsg("right"))
	m.Update(keyMsg("right"))
	i, _ := m.Navigator().State().Current()
	assert.Equal(t, 2, i)

	m.Update(keyMsg("left"))
	i, _ = m.Navigator().State().Current()
	assert.Equal(t, 1, i)

	m.Update(keyMsg("esc"))
	assert.False(t, m.Navigator().State().IsOpen())
}

func TestGridCursorStepsMatchStriping(t *testing.T) {
	m := testModel(t, 12, false) // 3 columns by default

	m.Update(keyMsg("down"))
	assert.Equal(t, 3, m.cursor) // vertical neighbor is one stripe away

	m.Update(keyMsg("right"))
	assert.Equal(t, 4, m.cursor)

	m.Update(keyMsg("up"))
	assert.Equal(t, 1, m.cursor)

	// No movement past the edges.
	m.Update(keyMsg("left"))
	m.Update(keyMsg("left"))
	assert.Equal(t, 0, m.cursor)
	m.Update(keyMsg("up"))
	assert.Equal(t, 0, m.cursor)
}

func TestScrollEffectDeferredUntilAfterRender(t *testing.T) {
	m := testModel(t, 30, true)

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd, "opening with thumbnails must schedule a scroll command")

	// The offset is untouched until the command's message arrives, which
	// Bubble Tea delivers only after the next View call.
	assert.Equal(t, 0, m.thumbOffset)

	msg := cmd()
	scroll, ok := msg.(scrollThumbMsg)
	require.True(t, ok)
	assert.Equal(t, 0, scroll.index)

	m.Update(msg)
	assert.Equal(t, 0, m.thumbOffset) // index 0 already visible

	// Walk right until the strip has to follow.
	for i := 0; i < 10; i++ {
		_, cmd = m.Update(keyMsg("right"))
		require.NotNil(t, cmd)
		m.Update(cmd())
	}
	assert.Greater(t, m.thumbOffset, 0)
}

func TestJumpOpensByNumber(t *testing.T) {
	m := testModel(t, 6, false)

	m.Update(keyMsg("g"))
	assert.True(t, m.jumping)

	m.Update(keyMsg("4"))
	m.Update(keyMsg("enter"))

	assert.False(t, m.jumping)
	i, open := m.Navigator().State().Current()
	require.True(t, open)
	assert.Equal(t, 3, i)
}

func TestJumpOutOfRangeSetsStatus(t *testing.T) {
	m := testModel(t, 3, false)

	m.Update(keyMsg("g"))
	m.Update(keyMsg("9"))
	m.Update(keyMsg("enter"))

	assert.False(t, m.Navigator().State().IsOpen())
	assert.NotEmpty(t, m.status)
}

func TestMouseWheelNavigatesLightbox(t *testing.T) {
	m := testModel(t, 6, false)
	m.Update(keyMsg("enter"))

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	i, _ := m.Navigator().State().Current()
	assert.Equal(t, 1, i)

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	i, _ = m.Navigator().State().Current()
	assert.Equal(t, 0, i)

	m.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.False(t, m.Navigator().State().IsOpen())
}

func TestViewRendersGridThenOverlay(t *testing.T) {
	m := testModel(t, 4, false)

	out := m.View()
	assert.Contains(t, out, "lightgrid")
	assert.Contains(t, out, "img")

	m.Update(keyMsg("enter"))
	out = m.View()
	assert.Contains(t, out, "1 / 4")
}
