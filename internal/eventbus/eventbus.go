package eventbus

import (
	"log"
	"sync"

	"lightgrid/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventImageOpened          = domain.EventImageOpened
	EventImageClosed          = domain.EventImageClosed
	EventImageChanged         = domain.EventImageChanged
	EventThumbScrollRequested = domain.EventThumbScrollRequested
	EventGalleryLoaded        = domain.EventGalleryLoaded
	EventConfigLoaded         = domain.EventConfigLoaded
	EventConfigSaved          = domain.EventConfigSaved
	EventError                = domain.EventError
)

// Re-export domain event types
type ImageOpenedEvent = domain.ImageOpenedEvent
type ImageClosedEvent = domain.ImageClosedEvent
type ImageChangedEvent = domain.ImageChangedEvent
type ThumbScrollRequestedEvent = domain.ThumbScrollRequestedEvent
type GalleryLoadedEvent = domain.GalleryLoadedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Stop()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]EventHandler
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	stopOnce  sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]EventHandler),
		eventChan: make(chan DomainEvent, 100),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	log.Printf("EventBus: Publishing event %s", event.Type())

	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		// Channel full, log and drop
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	idx := len(b.handlers[eventType]) - 1

	// Unsubscribing nils the slot instead of compacting so other
	// unsubscribe closures keep valid indices.
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if handlers := b.handlers[eventType]; idx < len(handlers) {
			handlers[idx] = nil
		}
	}
}

// Stop shuts down the dispatcher after draining queued events.
func (b *bus) Stop() {
	b.stopOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			handlers := make([]EventHandler, len(b.handlers[event.Type()]))
			copy(handlers, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, h := range handlers {
				if h != nil {
					h(event)
				}
			}
		case <-b.quit:
			// Drain anything already queued before exiting
			for {
				select {
				case event := <-b.eventChan:
					b.mu.RLock()
					handlers := make([]EventHandler, len(b.handlers[event.Type()]))
					copy(handlers, b.handlers[event.Type()])
					b.mu.RUnlock()
					for _, h := range handlers {
						if h != nil {
							h(event)
						}
					}
				default:
					return
				}
			}
		}
	}
}

// NullBus is a no-op implementation of EventBus for tests and detached use
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) {}

func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}

func (NullBus) Stop() {}
