package lightbox

import (
	"lightgrid/internal/eventbus"
)

// Service owns a navigator State and publishes transitions as domain events.
// The returned effects still go back to the caller, which schedules them
// after its next render commit.
type Service struct {
	state State
	bus   eventbus.EventBus
	refFn func(int) string // Function to get the image ref at an index
}

// NewService creates a new lightbox service
func NewService(bus eventbus.EventBus, total int, thumbs bool) *Service {
	return &Service{
		state: NewState(total, thumbs),
		bus:   bus,
	}
}

// SetRefFunction sets the function used to resolve image refs for events
func (s *Service) SetRefFunction(fn func(int) string) {
	s.refFn = fn
}

// State returns the current navigator state value
func (s *Service) State() State {
	return s.state
}

// Open shows the overlay on image i
func (s *Service) Open(i int) ([]Effect, error) {
	next, effects, err := s.state.Open(i)
	if err != nil {
		return nil, err
	}
	s.state = next

	ref := ""
	if s.refFn != nil {
		ref = s.refFn(i)
	}
	s.bus.Publish(eventbus.ImageOpenedEvent{Index: i, Ref: ref})
	s.publishEffects(effects)
	return effects, nil
}

// Close hides the overlay; a no-op when already closed
func (s *Service) Close() {
	index, wasOpen := s.state.Current()
	s.state = s.state.Close()
	if wasOpen {
		s.bus.Publish(eventbus.ImageClosedEvent{Index: index})
	}
}

// Next advances to the following image, silently stopping at the end
func (s *Service) Next() []Effect {
	return s.step(State.Next)
}

// Previous moves back one image, silently stopping at the start
func (s *Service) Previous() []Effect {
	return s.step(State.Previous)
}

func (s *Service) step(move func(State) (State, []Effect)) []Effect {
	old, wasOpen := s.state.Current()
	next, effects := move(s.state)
	s.state = next

	if now, open := next.Current(); open && wasOpen && now != old {
		s.bus.Publish(eventbus.ImageChangedEvent{OldIndex: old, NewIndex: now})
	}
	s.publishEffects(effects)
	return effects
}

func (s *Service) publishEffects(effects []Effect) {
	for _, e := range effects {
		if scroll, ok := e.(ScrollThumbIntoView); ok {
			s.bus.Publish(eventbus.ThumbScrollRequestedEvent{Index: scroll.Index})
		}
	}
}
