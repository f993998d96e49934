package lightbox

import (
	"fmt"

	"lightgrid/internal/domain"
)

// Open shows the overlay on image i, replacing whatever was open before.
// An index outside [0, total) is a contract violation and returns
// domain.ErrIndexOutOfRange with the state unchanged.
func (s State) Open(i int) (State, []Effect, error) {
	if i < 0 || i >= s.total {
		return s, nil, fmt.Errorf("open index %d outside [0,%d): %w", i, s.total, domain.ErrIndexOutOfRange)
	}
	s.open = true
	s.index = i
	return s, s.scrollEffect(), nil
}

// OpenClamped is the defensive variant for render paths: the index is
// clamped into range instead of failing. Opening an empty gallery is a no-op.
func (s State) OpenClamped(i int) (State, []Effect) {
	if s.total == 0 {
		return s, nil
	}
	if i < 0 {
		i = 0
	}
	if i >= s.total {
		i = s.total - 1
	}
	next, effects, _ := s.Open(i)
	return next, effects
}

// Close hides the overlay. Closing an already closed navigator is a no-op.
func (s State) Close() State {
	s.open = false
	return s
}

// Next advances to the following image. At the last image, or when the
// overlay is closed, it is a silent no-op: no wraparound, no error.
func (s State) Next() (State, []Effect) {
	if !s.open || s.index >= s.total-1 {
		return s, nil
	}
	s.index++
	return s, s.scrollEffect()
}

// Previous moves back one image, the symmetric no-op-at-boundary of Next.
func (s State) Previous() (State, []Effect) {
	if !s.open || s.index <= 0 {
		return s, nil
	}
	s.index--
	return s, s.scrollEffect()
}

func (s State) scrollEffect() []Effect {
	if !s.thumbs {
		return nil
	}
	return []Effect{ScrollThumbIntoView{Index: s.index}}
}
