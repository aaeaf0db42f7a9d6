package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/oliverbestmann/frustum/glm"
	"github.com/oliverbestmann/frustum/internal/config"
	"github.com/oliverbestmann/frustum/projection"
	"github.com/pkg/profile"
)

// Config holds the resolved command line configuration.
type Config struct {
	Projection projection.Config

	// Viewports are built in addition to the projections own size.
	Viewports []Viewport

	Format     Format
	LogLevel   slog.Level
	CPUProfile string
}

// ParseConfig parses flags into a Config. Projection parameters are resolved
// through config.Resolve, overridden by explicitly set flags and validated
// once all sources are merged. The core accepts a zero sized viewport, the
// command line does not.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	defaults := projection.DefaultConfig()

	var (
		path      string
		near      float64
		far       float64
		fov       float64
		width     uint
		height    uint
		viewports viewportList
		format    string
		logLevel  string
		cpu       string
	)

	fs.StringVar(&path, "config", "", "yaml file with projection parameters")
	fs.Float64Var(&near, "near", float64(defaults.Near), "near clip distance")
	fs.Float64Var(&far, "far", float64(defaults.Far), "far clip distance")
	fs.Float64Var(&fov, "fov", float64(defaults.Fov), "field of view in degrees, within (0, 360)")
	fs.UintVar(&width, "width", defaults.Width, "viewport width in pixels")
	fs.UintVar(&height, "height", defaults.Height, "viewport height in pixels")
	fs.Var(&viewports, "viewports", "additional comma separated viewports, e.g. 1920x1080,800x600")
	fs.StringVar(&format, "format", string(FormatText), "output format: text, flat, json or bin")
	fs.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&cpu, "cpuprofile", "", "write a cpu profile into this directory")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	c, err := config.Resolve(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "near":
			c.Near = float32(near)
		case "far":
			c.Far = float32(far)
		case "fov":
			c.Fov = glm.Deg(fov)
		case "width":
			c.Width = width
		case "height":
			c.Height = height
		}
	})

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid projection: %w", err)
	}

	if c.Width == 0 || c.Height == 0 {
		return Config{}, fmt.Errorf("viewport %dx%d: dimensions must be positive", c.Width, c.Height)
	}

	cfg := Config{
		Projection: c,
		Viewports:  viewports,
		CPUProfile: cpu,
	}

	if cfg.Format, err = ParseFormat(format); err != nil {
		return Config{}, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}

	return cfg, nil
}

// Run builds one projection matrix per viewport and writes them to out.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}

	if err := cfg.Projection.Validate(); err != nil {
		return fmt.Errorf("invalid projection: %w", err)
	}

	if cfg.CPUProfile != "" {
		defer profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(cfg.CPUProfile),
			profile.Quiet,
		).Stop()
	}

	viewports := append(
		[]Viewport{{Width: cfg.Projection.Width, Height: cfg.Projection.Height}},
		cfg.Viewports...,
	)

	cache, err := projection.NewCache(len(viewports))
	if err != nil {
		return err
	}

	builder := projection.FromConfig(cfg.Projection)

	results := make([]result, 0, len(viewports))
	for _, viewport := range viewports {
		m := cache.Get(builder.WithWidth(viewport.Width).WithHeight(viewport.Height))

		if !m.IsFinite() {
			slog.Warn("Projection matrix contains non finite values",
				slog.String("viewport", viewport.String()),
				slog.Any("near", cfg.Projection.Near),
				slog.Any("far", cfg.Projection.Far),
				slog.Any("fov", cfg.Projection.Fov))
		}

		results = append(results, result{Viewport: viewport, Matrix: m})
	}

	slog.Debug("Built projection matrices",
		slog.Int("count", len(results)),
		slog.Int("distinct", cache.Len()),
		slog.String("format", string(cfg.Format)))

	return write(out, cfg.Format, results)
}
