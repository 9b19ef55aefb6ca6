package main

import (
	"errors"
	"fmt"
	"image"
	"io"

	maptracker "github.com/MaaXYZ/MaaEnd/agent/map-bearing/map-tracker"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// errNotFound makes the process exit with code 2 on ArcNotFound.
var errNotFound = errors.New("no bearing detected")

var (
	bearingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type detectFlags struct {
	configPath  string
	radius      int
	threshold   int
	minArc      int
	maxArc      int
	centerX     int
	centerY     int
	debugPath   string
	profilePath string
}

func newDetectCmd() *cobra.Command {
	var f detectFlags
	def := maptracker.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "detect [image]",
		Short: "Read the view bearing of a map screenshot",
		Long: `Read the view bearing of a map screenshot (default map.png).

The bearing is printed in degrees, 0 = up, increasing clockwise. When no FOV
arc fits the bounds the command exits with code 2.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "map.png"
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			return runDetect(cmd.OutOrStdout(), path, cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "JSON config file applied before flags")
	fl.IntVar(&f.radius, "radius", def.Radius, "Sampling ring radius in pixels")
	fl.IntVar(&f.threshold, "threshold", def.Threshold, "Brightness cutoff (0-255)")
	fl.IntVar(&f.minArc, "min-arc", def.MinArc, "Minimum FOV arc width in degrees")
	fl.IntVar(&f.maxArc, "max-arc", def.MaxArc, "Maximum FOV arc width in degrees")
	fl.IntVar(&f.centerX, "center-x", -1, "Ring center x (default image center)")
	fl.IntVar(&f.centerY, "center-y", -1, "Ring center y (default image center)")
	fl.StringVar(&f.debugPath, "debug", "", "Write an annotated image to this path (e.g. "+maptracker.DEBUG_IMAGE_PATH+")")
	fl.StringVar(&f.profilePath, "profile", "", "Write a ring brightness chart to this path (e.g. "+maptracker.PROFILE_PLOT_PATH+")")
	fl.Lookup("debug").NoOptDefVal = maptracker.DEBUG_IMAGE_PATH
	fl.Lookup("profile").NoOptDefVal = maptracker.PROFILE_PLOT_PATH

	return cmd
}

// config builds the detection config: defaults, then the config file, then
// any flag set explicitly on the command line.
func (f *detectFlags) config(cmd *cobra.Command) (maptracker.Config, error) {
	cfg := maptracker.DefaultConfig()
	if f.configPath != "" {
		var err error
		cfg, err = maptracker.LoadConfigFile(cfg, f.configPath)
		if err != nil {
			return cfg, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("radius") {
		cfg.Radius = f.radius
	}
	if changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if changed("min-arc") {
		cfg.MinArc = f.minArc
	}
	if changed("max-arc") {
		cfg.MaxArc = f.maxArc
	}
	if changed("center-x") || changed("center-y") {
		if f.centerX < 0 || f.centerY < 0 {
			return cfg, errors.New("--center-x and --center-y must be given together")
		}
		cfg.Center = image.Pt(f.centerX, f.centerY)
		cfg.AutoCenter = false
	}
	if changed("debug") {
		cfg.DebugPath = f.debugPath
	}
	if changed("profile") {
		cfg.ProfilePath = f.profilePath
	}
	return cfg, nil
}

func runDetect(w io.Writer, path string, cfg maptracker.Config) error {
	det, err := maptracker.DetectFile(path, cfg)
	if errors.Is(err, maptracker.ErrArcNotFound) {
		fmt.Fprintln(w, missStyle.Render("no FOV arc detected"))
		return errNotFound
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, bearingStyle.Render(fmt.Sprintf("bearing: %.1f", det.Bearing)))
	return nil
}
