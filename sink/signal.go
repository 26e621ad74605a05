// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// SignalEvents is an EventSource for sinks without host events of their
// own. It reports quit once SIGINT or SIGTERM has been received.
type SignalEvents struct {
	ch   chan os.Signal
	quit atomic.Bool
}

// NewSignalEvents starts listening for SIGINT and SIGTERM.
// Call Stop to restore default signal handling.
func NewSignalEvents() *SignalEvents {
	e := &SignalEvents{ch: make(chan os.Signal, 1)}
	signal.Notify(e.ch, os.Interrupt, syscall.SIGTERM)
	return e
}

// PollQuit reports whether a termination signal has arrived.
func (e *SignalEvents) PollQuit() bool {
	for {
		select {
		case <-e.ch:
			e.quit.Store(true)
		default:
			return e.quit.Load()
		}
	}
}

// Quit marks the source as quit, as if a signal had arrived.
func (e *SignalEvents) Quit() {
	e.quit.Store(true)
}

// Stop stops signal delivery to e.
func (e *SignalEvents) Stop() {
	signal.Stop(e.ch)
}

// MultiEvents reports quit when any of its sources does.
type MultiEvents []EventSource

// PollQuit drains every source and reports whether any of them quit.
func (m MultiEvents) PollQuit() bool {
	quit := false
	for _, src := range m {
		if src != nil && src.PollQuit() {
			quit = true
		}
	}
	return quit
}
