package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightgrid/internal/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeManifest(t, `
thumbs = ["t/alps.jpg", "t/coast.jpg"]

[[images]]
ref = "photos/alps.jpg"
title = "Alps"

[[images]]
ref = "photos/coast.jpg"
title = "Coast"
`)

	g, err := LoadFromPath(path)
	require.NoError(t, err)

	require.Equal(t, 2, g.Count())
	assert.Equal(t, domain.Image{Ref: "photos/alps.jpg", Title: "Alps"}, g.Images[0])
	assert.Equal(t, "photos/coast.jpg", g.Ref(1))
	assert.True(t, g.HasThumbs())
	assert.Equal(t, domain.Thumbnail{Ref: "t/coast.jpg"}, g.Thumbs[1])
}

func TestLoadRejectsMissingRef(t *testing.T) {
	path := writeManifest(t, `
[[images]]
title = "No ref"
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestRefOutOfBounds(t *testing.T) {
	g := &Gallery{Images: []domain.Image{{Ref: "a.jpg"}}}
	assert.Equal(t, "", g.Ref(-1))
	assert.Equal(t, "", g.Ref(1))
}

func TestValidateThumbnailPrecondition(t *testing.T) {
	imgs := []domain.Image{{Ref: "a.jpg"}, {Ref: "b.jpg"}}

	t.Run("hidden placement ignores thumbs", func(t *testing.T) {
		g := &Gallery{Images: imgs}
		require.NoError(t, g.Validate(domain.ThumbsHidden))
	})

	t.Run("placement without thumbs fails", func(t *testing.T) {
		g := &Gallery{Images: imgs}
		err := g.Validate(domain.ThumbsBelow)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPreconditionViolation)
	})

	t.Run("mismatched length fails", func(t *testing.T) {
		g := &Gallery{Images: imgs, Thumbs: []domain.Thumbnail{{Ref: "ta.jpg"}}}
		err := g.Validate(domain.ThumbsAbove)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPreconditionViolation)
	})

	t.Run("matched strip passes", func(t *testing.T) {
		g := &Gallery{
			Images: imgs,
			Thumbs: []domain.Thumbnail{{Ref: "ta.jpg"}, {Ref: "tb.jpg"}},
		}
		require.NoError(t, g.Validate(domain.ThumbsBelow))
	})
}
