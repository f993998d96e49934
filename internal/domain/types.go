package domain

// Image is one entry in a gallery: an opaque renderable reference plus
// display metadata. Nothing in this module ever dereferences Ref; decoding
// and drawing belong to whatever front end consumes the layout.
type Image struct {
	Ref   string
	Title string
}

// Thumbnail is the reduced companion of an Image, shown in the lightbox
// strip. Kept as its own type so the parallel-list precondition reads at the
// call site.
type Thumbnail struct {
	Ref string
}

// ThumbPlacement selects where the thumbnail strip goes relative to the
// lightbox overlay.
type ThumbPlacement string

const (
	ThumbsHidden ThumbPlacement = "hidden"
	ThumbsAbove  ThumbPlacement = "above"
	ThumbsBelow  ThumbPlacement = "below"
)

// Valid reports whether p is one of the recognized placements.
func (p ThumbPlacement) Valid() bool {
	switch p {
	case ThumbsHidden, ThumbsAbove, ThumbsBelow:
		return true
	}
	return false
}

// Orientation selects whether masonry buckets are stacked as columns or rows.
// It never changes how items are distributed, only how the view arranges the
// buckets spatially.
type Orientation string

const (
	OrientColumns Orientation = "columns"
	OrientRows    Orientation = "rows"
)

// Valid reports whether o is one of the recognized orientations.
func (o Orientation) Valid() bool {
	return o == OrientColumns || o == OrientRows
}
