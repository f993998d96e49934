package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightgrid/internal/domain"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := New()
	defer bus.Stop()

	got := make(chan DomainEvent, 1)
	bus.Subscribe(EventImageOpened, func(e DomainEvent) { got <- e })

	bus.Publish(ImageOpenedEvent{Index: 2, Ref: "b.jpg"})

	select {
	case e := <-got:
		assert.Equal(t, ImageOpenedEvent{Index: 2, Ref: "b.jpg"}, e)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestSubscribeFiltersByType(t *testing.T) {
	bus := New()

	got := make(chan DomainEvent, 2)
	bus.Subscribe(EventImageClosed, func(e DomainEvent) { got <- e })

	bus.Publish(ImageOpenedEvent{Index: 0})
	bus.Publish(ImageClosedEvent{Index: 0})
	bus.Stop()

	require.Len(t, got, 1)
	assert.Equal(t, domain.EventImageClosed, (<-got).Type())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()

	got := make(chan DomainEvent, 2)
	unsubscribe := bus.Subscribe(EventImageChanged, func(e DomainEvent) { got <- e })
	unsubscribe()

	bus.Publish(ImageChangedEvent{OldIndex: 0, NewIndex: 1})
	bus.Stop()

	assert.Empty(t, got)
}

func TestStopDrainsQueuedEvents(t *testing.T) {
	bus := New()

	got := make(chan DomainEvent, 8)
	bus.Subscribe(EventThumbScrollRequested, func(e DomainEvent) { got <- e })

	for i := 0; i < 5; i++ {
		bus.Publish(ThumbScrollRequestedEvent{Index: i})
	}
	bus.Stop()

	assert.Len(t, got, 5)
}

func TestNullBus(t *testing.T) {
	var bus EventBus = NullBus{}
	bus.Publish(ErrorEvent{Message: "ignored"})
	unsubscribe := bus.Subscribe(EventError, func(DomainEvent) {})
	unsubscribe()
	bus.Stop()
}
