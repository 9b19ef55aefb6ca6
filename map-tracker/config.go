// Copyright (c) 2026 Harry Huang
package maptracker

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/bytedance/sonic"
)

// ErrInvalidConfig is returned when a Config cannot drive a detection.
var ErrInvalidConfig = errors.New("invalid bearing config")

// Config holds every parameter of one bearing detection.
// With AutoCenter set, Center is ignored and the ring is centered on the
// image; otherwise Center is used as given, (0, 0) included.
type Config struct {
	Center     image.Point `json:"-"`
	AutoCenter bool        `json:"-"`
	Radius     int         `json:"radius"`
	Threshold  int         `json:"threshold"`
	MinArc     int         `json:"min_arc"`
	MaxArc     int         `json:"max_arc"`
	// Optional diagnostics, empty disables them
	DebugPath   string `json:"debug_path,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// DefaultConfig returns the FOV cone defaults with an automatic center.
func DefaultConfig() Config {
	return Config{
		Radius:    FOV_RADIUS,
		Threshold: FOV_THRESHOLD,
		MinArc:    FOV_MIN_ARC,
		MaxArc:    FOV_MAX_ARC,

		AutoCenter: true,
	}
}

// MinimapConfig returns the defaults for a WORK_W x WORK_H game screenshot,
// centered on the mini-map pointer.
func MinimapConfig() Config {
	cfg := DefaultConfig()
	cfg.Center = image.Pt(ROT_CENTER_X, ROT_CENTER_Y)
	cfg.AutoCenter = false
	cfg.Radius = ROT_RING_RADIUS
	return cfg
}

// centerIn returns the ring center for an image of the given bounds.
func (c Config) centerIn(bounds image.Rectangle) image.Point {
	if c.AutoCenter {
		return image.Pt(bounds.Dx()/2, bounds.Dy()/2)
	}
	return c.Center
}

// Validate reports whether the config is usable.
// MaxArc must stay below RingSize: the doubled scan can only close runs
// shorter than a full revolution.
func (c Config) Validate() error {
	switch {
	case c.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive, got %d", ErrInvalidConfig, c.Radius)
	case c.Threshold < 0 || c.Threshold > 255:
		return fmt.Errorf("%w: threshold must be within 0-255, got %d", ErrInvalidConfig, c.Threshold)
	case c.MinArc < 1:
		return fmt.Errorf("%w: min arc must be at least 1, got %d", ErrInvalidConfig, c.MinArc)
	case c.MaxArc < c.MinArc:
		return fmt.Errorf("%w: max arc %d below min arc %d", ErrInvalidConfig, c.MaxArc, c.MinArc)
	case c.MaxArc >= RingSize:
		return fmt.Errorf("%w: max arc must be below %d, got %d", ErrInvalidConfig, RingSize, c.MaxArc)
	}
	return nil
}

// configParam is the JSON override shape shared by the recognition param and
// CLI config files. Pointer fields distinguish "absent" from zero.
type configParam struct {
	CenterX     *int    `json:"center_x"`
	CenterY     *int    `json:"center_y"`
	Radius      *int    `json:"radius"`
	Threshold   *int    `json:"threshold"`
	MinArc      *int    `json:"min_arc"`
	MaxArc      *int    `json:"max_arc"`
	DebugPath   *string `json:"debug_path"`
	ProfilePath *string `json:"profile_path"`
}

func (p *configParam) apply(cfg Config) Config {
	if p.CenterX != nil {
		cfg.Center.X = *p.CenterX
		cfg.AutoCenter = false
	}
	if p.CenterY != nil {
		cfg.Center.Y = *p.CenterY
		cfg.AutoCenter = false
	}
	if p.Radius != nil {
		cfg.Radius = *p.Radius
	}
	if p.Threshold != nil {
		cfg.Threshold = *p.Threshold
	}
	if p.MinArc != nil {
		cfg.MinArc = *p.MinArc
	}
	if p.MaxArc != nil {
		cfg.MaxArc = *p.MaxArc
	}
	if p.DebugPath != nil {
		cfg.DebugPath = *p.DebugPath
	}
	if p.ProfilePath != nil {
		cfg.ProfilePath = *p.ProfilePath
	}
	return cfg
}

// MergeJSON overlays the fields present in raw onto base.
// An empty raw string returns base unchanged.
func MergeJSON(base Config, raw string) (Config, error) {
	if raw == "" {
		return base, nil
	}
	var p configParam
	if err := sonic.UnmarshalString(raw, &p); err != nil {
		return base, fmt.Errorf("failed to parse bearing config: %w", err)
	}
	return p.apply(base), nil
}

// LoadConfigFile overlays a JSON config file onto base.
func LoadConfigFile(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}
	return MergeJSON(base, string(data))
}
