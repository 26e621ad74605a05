// Package config holds the xorfill command configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gogpu/xorfill"
)

// Defaults.
const (
	DefaultWidth  = 960
	DefaultHeight = 540
	DefaultTitle  = "XOR Pattern Demo"
	DefaultSink   = "auto"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all command configuration values.
type Config struct {
	Width    int
	Height   int
	Sink     string
	Title    string
	Scale    int
	Interval time.Duration
	Lanes    xorfill.LaneWidth
	Workers  int
	Frames   uint64

	Snapshot      string
	SnapshotEvery int

	Verbose   bool
	LogFormat string
	List      bool
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Sink:      DefaultSink,
		Title:     DefaultTitle,
		Scale:     1,
		Interval:  xorfill.DefaultInterval,
		Lanes:     xorfill.DefaultLanes,
		Workers:   1,
		LogFormat: FormatText,
	}
}

// Load parses args (without the program name) into a validated Config.
// Usage and parse errors are written to output.
func Load(name string, args []string, output io.Writer) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "frame width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "frame height in pixels")
	fs.StringVar(&cfg.Sink, "sink", cfg.Sink, `display backend, or "auto" for the best available`)
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "integer window zoom")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "pause between frames (0 disables pacing)")
	fs.Func("lanes", "pixels per kernel group: 1, 8 or 16 (default 8)", func(s string) error {
		l, err := xorfill.ParseLaneWidth(s)
		if err != nil {
			return err
		}
		cfg.Lanes = l
		return nil
	})
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines filling each frame (0 = GOMAXPROCS)")
	fs.Uint64Var(&cfg.Frames, "frames", cfg.Frames, "stop after this many frames (0 = run until quit)")
	fs.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "output file for the image sink (.png or .bmp)")
	fs.IntVar(&cfg.SnapshotEvery, "snapshot-every", cfg.SnapshotEvery, "write the snapshot every N frames (0 = on exit only)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log output format: text or json")
	fs.BoolVar(&cfg.List, "list", cfg.List, "list sink backends and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("config: unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Frame allocation limits are checked later
// by xorfill.NewFrameBuffer.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("config: scale must be at least 1, got %d", c.Scale))
	}
	if c.Interval < 0 {
		errs = append(errs, fmt.Errorf("config: negative interval %v", c.Interval))
	}
	if !c.Lanes.Valid() {
		errs = append(errs, fmt.Errorf("config: unsupported lane width %d", int(c.Lanes)))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("config: negative worker count %d", c.Workers))
	}
	if c.SnapshotEvery < 0 {
		errs = append(errs, fmt.Errorf("config: negative snapshot interval %d", c.SnapshotEvery))
	}
	if c.Sink == "" {
		errs = append(errs, errors.New("config: empty sink name"))
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		errs = append(errs, fmt.Errorf("config: unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// LogLevel returns the slog level selected by Verbose.
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewLogger builds the command logger writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
