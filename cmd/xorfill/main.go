// Command xorfill animates the XOR pixel pattern in a window, terminal,
// ffplay stream or image file.
//
// Usage:
//
//	xorfill [-sink auto|gpu|ebiten|sdl|ffplay|terminal|image|discard] [-width 960] [-height 540]
//
// Run with -list to see which sink backends are available.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/xorfill"
	"github.com/gogpu/xorfill/internal/config"
	"github.com/gogpu/xorfill/sink"
	_ "github.com/gogpu/xorfill/sink/ebitensink"
	_ "github.com/gogpu/xorfill/sink/ffplaysink"
	_ "github.com/gogpu/xorfill/sink/gpusink"
	_ "github.com/gogpu/xorfill/sink/imagesink"
	_ "github.com/gogpu/xorfill/sink/sdlsink"
	_ "github.com/gogpu/xorfill/sink/termsink"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load("xorfill", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := cfg.NewLogger(stderr)
	xorfill.SetLogger(log)

	if cfg.List {
		listSinks(stdout)
		return exitOK
	}

	fb, err := xorfill.NewFrameBuffer(cfg.Width, cfg.Height)
	if err != nil {
		log.Error("cannot allocate framebuffer", "err", err)
		return exitError
	}

	s, name, err := openSink(cfg)
	if err != nil {
		log.Error("cannot open sink", "sink", cfg.Sink, "err", err)
		return exitError
	}
	log.Info("sink selected", "sink", name)

	filler := xorfill.NewFiller(xorfill.WithLanes(cfg.Lanes), xorfill.WithWorkers(cfg.Workers))
	defer filler.Close()

	signals := sink.NewSignalEvents()
	defer signals.Stop()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := sink.MultiEvents{signals}
	if es, ok := s.(sink.EventSource); ok {
		events = append(sink.MultiEvents{es}, events...)
	}

	loop := xorfill.NewLoop(fb, s,
		xorfill.WithFiller(filler),
		xorfill.WithInterval(cfg.Interval),
		xorfill.WithMaxFrames(cfg.Frames),
		xorfill.WithEvents(events),
	)

	runErr := drive(ctx, s, loop)
	closeErr := s.Close()
	if closeErr != nil {
		log.Warn("sink close failed", "sink", name, "err", closeErr)
	}

	log.Info("stopped", "frames", loop.Frames(), "tick", loop.Tick())
	if runErr != nil {
		log.Error("frame loop failed", "err", runErr)
		return exitError
	}
	return exitOK
}

// drive runs the loop on the calling goroutine, or hands it to the sink's
// host loop when the sink owns one. The frame limit and a signal are
// normal stops.
func drive(ctx context.Context, s sink.Sink, loop *xorfill.Loop) error {
	var err error
	if d, ok := s.(sink.Driver); ok {
		err = d.Drive(ctx, loop.Step)
	} else {
		err = loop.Run(ctx)
	}
	switch {
	case errors.Is(err, xorfill.ErrFrameLimit), errors.Is(err, context.Canceled):
		return nil
	}
	return err
}

func openSink(cfg *config.Config) (sink.Sink, string, error) {
	opts := sink.Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Title:    cfg.Title,
		Scale:    cfg.Scale,
		Interval: cfg.Interval,
		Path:     cfg.Snapshot,
		Every:    cfg.SnapshotEvery,
	}
	if cfg.Sink == config.DefaultSink {
		return sink.NewBest(opts)
	}
	s, err := sink.NewByName(cfg.Sink, opts)
	return s, cfg.Sink, err
}

func listSinks(w io.Writer) {
	available := make(map[string]bool)
	for _, name := range sink.Available() {
		available[name] = true
	}
	for _, name := range sink.List() {
		e, _ := sink.Get(name)
		mark := " "
		if available[name] {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-10s priority %d\n", mark, name, e.Priority)
	}
}
