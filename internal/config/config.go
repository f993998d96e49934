package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"lightgrid/internal/domain"
	"lightgrid/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version int     `toml:"version"`
	Gallery string  `toml:"gallery"` // default manifest path
	Display Display `toml:"display"`
}

// Display holds the recognized presentation options.
type Display struct {
	OverlayBackground string                `toml:"overlay_background"` // ANSI/hex color for the overlay backdrop
	ThumbSize         int                   `toml:"thumb_size"`         // thumbnail cell width, positive
	ThumbBorderWidth  int                   `toml:"thumb_border_width"` // non-negative
	ThumbBorderColor  string                `toml:"thumb_border_color"`
	ThumbPlacement    domain.ThumbPlacement `toml:"thumb_placement"`
	BucketCount       int                   `toml:"bucket_count"` // positive
	BucketOrientation domain.Orientation    `toml:"bucket_orientation"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Display: Display{
			OverlayBackground: "235",
			ThumbSize:         14,
			ThumbBorderWidth:  1,
			ThumbBorderColor:  "240",
			ThumbPlacement:    domain.ThumbsBelow,
			BucketCount:       3,
			BucketOrientation: domain.OrientColumns,
		},
	}
}

// Validate checks the option surface and reports the first contract
// violation. Development builds should fail loudly on this; render paths use
// Normalize instead.
func (c *Config) Validate() error {
	d := c.Display
	if d.BucketCount <= 0 {
		return fmt.Errorf("bucket_count must be positive, got %d: %w", d.BucketCount, domain.ErrInvalidArgument)
	}
	if !d.BucketOrientation.Valid() {
		return fmt.Errorf("bucket_orientation %q: %w", d.BucketOrientation, domain.ErrInvalidArgument)
	}
	if d.ThumbSize <= 0 {
		return fmt.Errorf("thumb_size must be positive, got %d: %w", d.ThumbSize, domain.ErrInvalidArgument)
	}
	if d.ThumbBorderWidth < 0 {
		return fmt.Errorf("thumb_border_width must be non-negative, got %d: %w", d.ThumbBorderWidth, domain.ErrInvalidArgument)
	}
	if !d.ThumbPlacement.Valid() {
		return fmt.Errorf("thumb_placement %q: %w", d.ThumbPlacement, domain.ErrInvalidArgument)
	}
	return nil
}

// Normalize clamps out-of-range options to usable values instead of
// failing: non-positive bucket count becomes 1, bad enums fall back to the
// defaults. Returns the receiver for chaining.
func (c *Config) Normalize() *Config {
	def := DefaultConfig().Display
	d := &c.Display
	if d.BucketCount <= 0 {
		d.BucketCount = 1
	}
	if !d.BucketOrientation.Valid() {
		d.BucketOrientation = def.BucketOrientation
	}
	if d.ThumbSize <= 0 {
		d.ThumbSize = def.ThumbSize
	}
	if d.ThumbBorderWidth < 0 {
		d.ThumbBorderWidth = 0
	}
	if !d.ThumbPlacement.Valid() {
		d.ThumbPlacement = def.ThumbPlacement
	}
	if d.OverlayBackground == "" {
		d.OverlayBackground = def.OverlayBackground
	}
	if d.ThumbBorderColor == "" {
		d.ThumbBorderColor = def.ThumbBorderColor
	}
	return c
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "lightgrid")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads the configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(path)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cs.publishLoaded(path)
	return cfg, nil
}

// SaveToPath saves the configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

func (cs *configService) publishLoaded(path string) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
}
