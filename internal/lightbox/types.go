package lightbox

// State is the navigator value: which image the overlay shows, if any.
// The zero value is a closed navigator over an empty gallery. Transitions
// return a new State plus the effects the render layer must execute, so the
// state machine stays pure and testable.
type State struct {
	total  int
	index  int
	open   bool
	thumbs bool
}

// Effect is a command for the render layer, produced by a transition.
// Effects must run after the next render commit: the overlay and thumbnail
// strip have no measurable position until the transition has been drawn.
type Effect interface {
	effect()
}

// ScrollThumbIntoView asks the view to bring thumbnail Index into the
// visible part of the strip.
type ScrollThumbIntoView struct {
	Index int
}

func (ScrollThumbIntoView) effect() {}

// NewState returns a closed navigator over total images. A negative total is
// treated as zero. thumbs records whether a thumbnail strip is linked; only
// then do transitions emit scroll effects.
func NewState(total int, thumbs bool) State {
	if total < 0 {
		total = 0
	}
	return State{total: total, thumbs: thumbs}
}

// Total returns the number of images the navigator ranges over.
func (s State) Total() int { return s.total }

// IsOpen reports whether the overlay is showing.
func (s State) IsOpen() bool { return s.open }

// Current returns the open image index, or false when the overlay is closed.
func (s State) Current() (int, bool) {
	if !s.open {
		return 0, false
	}
	return s.index, true
}
