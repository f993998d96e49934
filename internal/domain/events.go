package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventImageOpened          EventType = "ImageOpened"
	EventImageClosed          EventType = "ImageClosed"
	EventImageChanged         EventType = "ImageChanged"
	EventThumbScrollRequested EventType = "ThumbScrollRequested"
	EventGalleryLoaded        EventType = "GalleryLoaded"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventError                EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ImageOpenedEvent is emitted when the lightbox opens on an image.
type ImageOpenedEvent struct {
	Index int
	Ref   string
}

func (e ImageOpenedEvent) Type() EventType { return EventImageOpened }

// ImageClosedEvent is emitted when the lightbox closes.
type ImageClosedEvent struct {
	Index int // image that was showing when the overlay closed
}

func (e ImageClosedEvent) Type() EventType { return EventImageClosed }

// ImageChangedEvent is emitted when next/previous moves the open image.
type ImageChangedEvent struct {
	OldIndex int
	NewIndex int
}

func (e ImageChangedEvent) Type() EventType { return EventImageChanged }

// ThumbScrollRequestedEvent asks the view to bring a thumbnail into view.
// Handlers must wait for the next render commit before measuring; the
// thumbnail has no on-screen position until the state change is drawn.
type ThumbScrollRequestedEvent struct {
	Index int
}

func (e ThumbScrollRequestedEvent) Type() EventType { return EventThumbScrollRequested }

// GalleryLoadedEvent is emitted after a manifest is parsed and validated.
type GalleryLoadedEvent struct {
	Count  int
	Thumbs bool
}

func (e GalleryLoadedEvent) Type() EventType { return EventGalleryLoaded }

// ConfigLoadedEvent is emitted when configuration has been loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration has been saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
