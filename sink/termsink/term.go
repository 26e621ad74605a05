// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package termsink renders frames in a true-color terminal with half-block
// characters, two pixel rows per text row.
//
// The frame is sampled down to the terminal size. Bubble Tea owns the
// loop, so the sink implements sink.Driver. Press q, Escape or Ctrl+C to
// quit.
package termsink

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/gogpu/xorfill"
	"github.com/gogpu/xorfill/sink"
)

// Name is the registry name of this backend.
const Name = "terminal"

// Default grid used until the terminal reports its size.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// halfBlock draws the upper pixel as foreground and the lower as background.
const halfBlock = "▀"

func init() {
	sink.Register(Name, 15,
		func(opts sink.Options) (sink.Sink, error) { return New(opts) },
		isTerminal)
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Sink keeps a downsampled copy of the latest frame.
type Sink struct {
	width    int
	height   int
	interval time.Duration

	mu     sync.Mutex
	cols   int
	rows   int
	cells  []uint32 // cols x 2*rows sampled pixels, BGRA packed
	closed bool
}

// New creates a terminal sink for opts.Width x opts.Height frames.
func New(opts sink.Options) (*Sink, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("termsink: invalid size %dx%d", opts.Width, opts.Height)
	}
	s := &Sink{width: opts.Width, height: opts.Height, interval: opts.Interval}
	s.resize(DefaultCols, DefaultRows)
	return s, nil
}

// resize sets the cell grid. Rows keep one line for the status bar.
func (s *Sink) resize(cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols = max(cols, 1)
	s.rows = max(rows-1, 1)
	s.cells = make([]uint32, s.cols*s.rows*2)
}

// Present samples f onto the cell grid.
func (s *Sink) Present(f sink.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return sink.ErrClosed
	}
	if err := sink.CheckSize(f, s.width, s.height); err != nil {
		return err
	}
	Sample(s.cells, s.cols, s.rows*2, f)
	return nil
}

// Sample fills dst (cols x rows) with nearest-neighbour samples of f.
func Sample(dst []uint32, cols, rows int, f sink.Frame) {
	for y := 0; y < rows; y++ {
		src := f.Row(y * f.Height / rows)
		out := dst[y*cols : (y+1)*cols]
		for x := range out {
			p := src[(x*f.Width/cols)*sink.BytesPerPixel:]
			out[x] = uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
		}
	}
}

// Render draws a cols x 2*rows sample grid as rows lines of half blocks.
func Render(cells []uint32, cols, rows int) string {
	var b strings.Builder
	style := lipgloss.NewStyle()
	for r := 0; r < rows; r++ {
		top := cells[2*r*cols : (2*r+1)*cols]
		bottom := cells[(2*r+1)*cols : (2*r+2)*cols]
		for c := 0; c < cols; c++ {
			b.WriteString(style.
				Foreground(hexColor(top[c])).
				Background(hexColor(bottom[c])).
				Render(halfBlock))
		}
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func hexColor(bgra uint32) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", uint8(bgra>>16), uint8(bgra>>8), uint8(bgra)))
}

// Drive runs the terminal program until the user quits, ctx is done or
// step fails.
func (s *Sink) Drive(ctx context.Context, step func() error) error {
	m := &model{sink: s, step: step, interval: s.interval}
	if m.interval <= 0 {
		m.interval = xorfill.DefaultInterval
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	xorfill.Logger().Info("termsink: program started", "interval", m.interval)

	_, err := p.Run()
	if m.err != nil {
		return m.err
	}
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Close marks the sink closed.
func (s *Sink) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

type tickMsg time.Time

// model is the Bubble Tea model wrapping the frame loop.
type model struct {
	sink     *Sink
	step     func() error
	interval time.Duration

	frames uint64
	err    error
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd {
	return m.tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.sink.resize(msg.Width, msg.Height)
	case tickMsg:
		if err := m.step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.frames++
		return m, m.tick()
	}
	return m, nil
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func (m *model) View() string {
	s := m.sink
	s.mu.Lock()
	body := Render(s.cells, s.cols, s.rows)
	s.mu.Unlock()
	status := statusStyle.Render(fmt.Sprintf("xorfill %dx%d  frame %d  q to quit", s.width, s.height, m.frames))
	return body + "\n" + status
}
