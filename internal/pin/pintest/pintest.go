// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pintest provides a fake pin.IO usable by driver tests, modeled
// on periph's gpiotest.Pin: each fake pin records every Write and lets a
// test pre-program the value the next Read returns.
package pintest

import (
	"sync"

	"github.com/joseph-levine/epd6c-go/internal/pin"
)

// Pin is a fake pin.IO. Call SetLevel to script what the next Read
// returns, e.g. to simulate the BUSY handshake.
type Pin struct {
	mu        sync.Mutex
	dir       pin.Direction
	level     pin.Level
	writes    []pin.Level
	dirWrites int
}

// Open returns a pin.Opener backed by a fresh set of fake pins, and the
// map of per-pin fakes so a test can script and inspect them.
func Open() (pin.Opener, map[pin.Pin]*Pin) {
	pins := make(map[pin.Pin]*Pin, len(pin.All))
	for _, p := range pin.All {
		pins[p] = &Pin{}
	}
	opener := func(p pin.Pin) (pin.IO, error) {
		return pins[p], nil
	}
	return opener, pins
}

func (p *Pin) SetDirection(d pin.Direction) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dir = d
	p.dirWrites++
	return nil
}

func (p *Pin) Write(level pin.Level) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
	p.writes = append(p.writes, level)
	return nil
}

func (p *Pin) Read() (pin.Level, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

// SetLevel programs the level the next Read will return, simulating an
// external signal change (e.g. the panel driving BUSY high).
func (p *Pin) SetLevel(level pin.Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

// Writes returns every level written to this pin, in order.
func (p *Pin) Writes() []pin.Level {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]pin.Level, len(p.writes))
	copy(out, p.writes)
	return out
}
