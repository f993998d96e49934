package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lightgrid/internal/config"
	"lightgrid/internal/domain"
	"lightgrid/internal/eventbus"
	"lightgrid/internal/gallery"
	"lightgrid/internal/ui"
)

func main() {
	// Parse command line arguments
	var manifestPath string
	flag.StringVar(&manifestPath, "gallery", "", "Path to a gallery manifest (TOML)")
	flag.StringVar(&manifestPath, "g", "", "Path to a gallery manifest (shorthand)")
	flag.Parse()

	if manifestPath == "" && flag.NArg() > 0 {
		manifestPath = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("lightgrid.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Stop()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		// Bad options are clamped rather than fatal outside development.
		log.Printf("Config rejected, clamping: %v", err)
		cfg.Normalize()
	}

	if manifestPath == "" {
		manifestPath = cfg.Gallery
	}

	gal := loadGallery(manifestPath)

	// Showing a strip requires a complete parallel thumbnail list. When the
	// manifest breaks that, hide the strip instead of dying.
	if err := gal.Validate(cfg.Display.ThumbPlacement); err != nil {
		if errors.Is(err, domain.ErrPreconditionViolation) {
			log.Printf("Thumbnail strip disabled: %v", err)
			cfg.Display.ThumbPlacement = domain.ThumbsHidden
		} else {
			fmt.Printf("Invalid gallery: %v\n", err)
			os.Exit(1)
		}
	}

	bus.Publish(eventbus.GalleryLoadedEvent{Count: gal.Count(), Thumbs: gal.HasThumbs()})

	// Log navigator activity
	bus.Subscribe(eventbus.EventImageOpened, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ImageOpenedEvent); ok {
			log.Printf("Opened image %d (%s)", event.Index, event.Ref)
		}
	})
	bus.Subscribe(eventbus.EventImageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ImageChangedEvent); ok {
			log.Printf("Moved from image %d to %d", event.OldIndex, event.NewIndex)
		}
	})
	bus.Subscribe(eventbus.EventImageClosed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ImageClosedEvent); ok {
			log.Printf("Closed lightbox at image %d", event.Index)
		}
	})

	// Create UI model
	uiModel := ui.NewModel(cfg, gal, bus)

	// Run the UI
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadGallery reads the manifest, falling back to a built-in sample so the
// program is usable without one.
func loadGallery(path string) *gallery.Gallery {
	if path == "" {
		log.Printf("No manifest given, using sample gallery")
		return sampleGallery()
	}

	gal, err := gallery.LoadFromPath(path)
	if err != nil {
		fmt.Printf("Error loading gallery %s: %v\n", path, err)
		os.Exit(1)
	}
	log.Printf("Loaded %d images from %s", gal.Count(), path)
	return gal
}

// sampleGallery returns a small demo collection.
func sampleGallery() *gallery.Gallery {
	refs := []struct{ ref, title string }{
		{"photos/alps.jpg", "Alps at dawn"},
		{"photos/coast.jpg", "Ligurian coast"},
		{"photos/market.jpg", "Night market"},
		{"photos/dunes.jpg", "Dunes"},
		{"photos/harbor.jpg", "Harbor fog"},
		{"photos/forest.jpg", "Beech forest"},
		{"photos/lights.jpg", "City lights"},
		{"photos/glacier.jpg", "Glacier tongue"},
		{"photos/meadow.jpg", "Spring meadow"},
		{"photos/reef.jpg", "Reef"},
		{"photos/steppe.jpg", "Steppe road"},
		{"photos/falls.jpg", "Falls"},
	}

	g := &gallery.Gallery{}
	for _, r := range refs {
		g.Images = append(g.Images, domain.Image{Ref: r.ref, Title: r.title})
		g.Thumbs = append(g.Thumbs, domain.Thumbnail{Ref: "thumbs/" + r.ref[len("photos/"):]})
	}
	return g
}
