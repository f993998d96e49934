// Package gallery loads and validates the ordered image collection a
// lightgrid session browses.
package gallery

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"lightgrid/internal/domain"
)

// Gallery is an ordered list of images and an optional parallel list of
// thumbnails. Thumbnails are never derived from the images; either the
// manifest supplies a full strip or the strip stays hidden.
type Gallery struct {
	Images []domain.Image
	Thumbs []domain.Thumbnail
}

// manifest is the on-disk TOML shape.
type manifest struct {
	Images []imageEntry `toml:"images"`
	Thumbs []string     `toml:"thumbs"`
}

type imageEntry struct {
	Ref   string `toml:"ref"`
	Title string `toml:"title"`
}

// LoadFromPath reads a gallery manifest from a TOML file.
func LoadFromPath(path string) (*Gallery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery manifest: %w", err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse gallery manifest: %w", err)
	}

	g := &Gallery{}
	for _, e := range m.Images {
		if e.Ref == "" {
			return nil, fmt.Errorf("image entry without ref: %w", domain.ErrInvalidArgument)
		}
		g.Images = append(g.Images, domain.Image{Ref: e.Ref, Title: e.Title})
	}
	for _, ref := range m.Thumbs {
		g.Thumbs = append(g.Thumbs, domain.Thumbnail{Ref: ref})
	}
	return g, nil
}

// Count returns the number of images.
func (g *Gallery) Count() int { return len(g.Images) }

// HasThumbs reports whether a thumbnail strip was supplied.
func (g *Gallery) HasThumbs() bool { return len(g.Thumbs) > 0 }

// Ref returns the image ref at i, or "" when i is out of bounds.
func (g *Gallery) Ref(i int) string {
	if i < 0 || i >= len(g.Images) {
		return ""
	}
	return g.Images[i].Ref
}

// Validate checks the thumbnail precondition for the requested placement:
// showing a strip requires a thumbnail list of exactly the image count.
// The list is a precondition of the caller, never auto-derived here.
func (g *Gallery) Validate(placement domain.ThumbPlacement) error {
	if placement == domain.ThumbsHidden {
		return nil
	}
	if len(g.Thumbs) == 0 {
		return fmt.Errorf("thumbnail placement %q with no thumbnails: %w", placement, domain.ErrPreconditionViolation)
	}
	if len(g.Thumbs) != len(g.Images) {
		return fmt.Errorf("%d thumbnails for %d images: %w", len(g.Thumbs), len(g.Images), domain.ErrPreconditionViolation)
	}
	return nil
}
