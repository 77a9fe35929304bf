package cellscape

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Options is the viewer configuration loaded from a YAML file.
type Options struct {
	Window   WindowOptions   `yaml:"window"`
	Data     DataOptions     `yaml:"data"`
	Zoom     ZoomOptions     `yaml:"zoom"`
	Snapshot SnapshotOptions `yaml:"snapshot"`
	Debug    bool            `yaml:"debug"`
}

// WindowOptions contains the OS window settings.
type WindowOptions struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Background is a hex color string like "#ffffff".
	Background string `yaml:"background"`
}

// DataOptions contains the dataset source settings.
type DataOptions struct {
	Path string `yaml:"path"`
}

// ZoomOptions contains the viewport bounds and reset behavior.
type ZoomOptions struct {
	Min           float64 `yaml:"min"`
	Max           float64 `yaml:"max"`
	OverviewScale float64 `yaml:"overview_scale"`
	ResetSeconds  float64 `yaml:"reset_seconds"`
}

// SnapshotOptions contains PNG export settings.
type SnapshotOptions struct {
	Dir string `yaml:"dir"`
}

// LoadOptions reads configuration from a YAML file. A missing file yields
// the defaults; a malformed file is an error.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultOptions(), nil
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("cellscape: parse config %s: %w", path, err)
	}

	applyOptionDefaults(&opts)

	return &opts, nil
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		Window: WindowOptions{
			Title:      "cellscape",
			Width:      960,
			Height:     720,
			Background: "#ffffff",
		},
		Data: DataOptions{
			Path: "./data/embedding.json",
		},
		Zoom: ZoomOptions{
			Min:           DefaultMinZoom,
			Max:           DefaultMaxZoom,
			OverviewScale: DefaultOverviewScale,
			ResetSeconds:  DefaultResetSeconds,
		},
		Snapshot: SnapshotOptions{
			Dir: "snapshots",
		},
	}
}

func applyOptionDefaults(opts *Options) {
	defaults := DefaultOptions()

	if opts.Window.Title == "" {
		opts.Window.Title = defaults.Window.Title
	}
	if opts.Window.Width == 0 {
		opts.Window.Width = defaults.Window.Width
	}
	if opts.Window.Height == 0 {
		opts.Window.Height = defaults.Window.Height
	}
	if opts.Window.Background == "" {
		opts.Window.Background = defaults.Window.Background
	}
	if opts.Data.Path == "" {
		opts.Data.Path = defaults.Data.Path
	}
	if opts.Zoom.Min == 0 {
		opts.Zoom.Min = defaults.Zoom.Min
	}
	if opts.Zoom.Max == 0 {
		opts.Zoom.Max = defaults.Zoom.Max
	}
	if opts.Zoom.OverviewScale == 0 {
		opts.Zoom.OverviewScale = defaults.Zoom.OverviewScale
	}
	if opts.Zoom.ResetSeconds == 0 {
		opts.Zoom.ResetSeconds = defaults.Zoom.ResetSeconds
	}
	if opts.Snapshot.Dir == "" {
		opts.Snapshot.Dir = defaults.Snapshot.Dir
	}
}

// BackgroundColor parses the configured background hex string, falling
// back to white when it does not parse.
func (o *Options) BackgroundColor() Color {
	c, err := colorful.Hex(o.Window.Background)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[cellscape] config: bad background %q, using white\n", o.Window.Background)
		return ColorWhite
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}
