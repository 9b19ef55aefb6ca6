package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	maptracker "github.com/MaaXYZ/MaaEnd/agent/map-bearing/map-tracker"
)

// writeConePNG writes a 161x161 map with an 80 deg cone facing right
// (bearing 90).
func writeConePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 161, 161))
	for y := 0; y < 161; y++ {
		for x := 0; x < 161; x++ {
			dx, dy := float64(x-80), float64(y-80)
			angle := math.Abs(math.Atan2(dy, dx) * 180 / math.Pi)
			if math.Hypot(dx, dy) >= 15 && angle <= 40 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.RGBA{R: 20, G: 40, B: 30, A: 255})
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

func TestRunDetect_Found(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	writeConePNG(t, path)

	var out bytes.Buffer
	if err := runDetect(&out, path, maptracker.DefaultConfig()); err != nil {
		t.Fatalf("runDetect failed: %v", err)
	}
	if !strings.Contains(out.String(), "bearing: ") {
		t.Errorf("expected bearing line, got %q", out.String())
	}
}

func TestRunDetect_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	writeConePNG(t, path)

	cfg := maptracker.DefaultConfig()
	cfg.MinArc, cfg.MaxArc = 10, 20

	var out bytes.Buffer
	err := runDetect(&out, path, cfg)
	if !errors.Is(err, errNotFound) {
		t.Errorf("expected errNotFound, got %v", err)
	}
}

func TestRunDetect_MissingSource(t *testing.T) {
	var out bytes.Buffer
	err := runDetect(&out, filepath.Join(t.TempDir(), "map.png"), maptracker.DefaultConfig())
	if !errors.Is(err, maptracker.ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestDetectFlags_Config(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bearing.json")
	if err := os.WriteFile(cfgPath, []byte(`{"radius": 40, "threshold": 120}`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cmd := newDetectCmd()
	if err := cmd.ParseFlags([]string{"--config", cfgPath, "--threshold", "150", "--center-x", "10", "--center-y", "12"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	var f detectFlags
	f.configPath, _ = cmd.Flags().GetString("config")
	f.threshold, _ = cmd.Flags().GetInt("threshold")
	f.centerX, _ = cmd.Flags().GetInt("center-x")
	f.centerY, _ = cmd.Flags().GetInt("center-y")

	cfg, err := f.config(cmd)
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if cfg.Radius != 40 {
		t.Errorf("expected radius from file 40, got %d", cfg.Radius)
	}
	if cfg.Threshold != 150 {
		t.Errorf("expected flag to win over file, got threshold %d", cfg.Threshold)
	}
	if cfg.Center != image.Pt(10, 12) || cfg.AutoCenter {
		t.Errorf("expected explicit center (10, 12), got %v (auto %v)", cfg.Center, cfg.AutoCenter)
	}
	if cfg.MinArc != maptracker.FOV_MIN_ARC {
		t.Errorf("expected default min arc, got %d", cfg.MinArc)
	}
}

func TestDetectFlags_HalfCenter(t *testing.T) {
	cmd := newDetectCmd()
	if err := cmd.ParseFlags([]string{"--center-x", "10"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	f := detectFlags{centerX: 10, centerY: -1}
	if _, err := f.config(cmd); err == nil {
		t.Errorf("expected error when only one center coordinate is set")
	}
}
