// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pin defines the thin, typed 8-signal pin abstraction the
// display driver consumes. It is deliberately minimal compared to a
// general-purpose GPIO library: the panel only ever touches these eight
// BCM-numbered signals, and the driver never needs pull resistors, edge
// detection, or PWM.
package pin

import "fmt"

// Level is the logical state of a pin.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l == High {
		return "High"
	}
	return "Low"
}

// Direction is whether a pin is driven by the host or read from the
// panel.
type Direction int

const (
	Output Direction = iota
	Input
)

// Pin is one of the eight BCM-numbered signals the driver uses.
type Pin int

// The eight signals, BCM numbering, and their fixed direction. Every pin
// except Busy is an output.
const (
	SCK    Pin = 11
	SDA    Pin = 10
	CSMain Pin = 8
	CSPeri Pin = 7
	DC     Pin = 25
	RST    Pin = 17
	Busy   Pin = 24
	PWR    Pin = 18
)

func (p Pin) String() string {
	switch p {
	case SCK:
		return "SCK"
	case SDA:
		return "SDA"
	case CSMain:
		return "CS_MAIN"
	case CSPeri:
		return "CS_PERI"
	case DC:
		return "DC"
	case RST:
		return "RST"
	case Busy:
		return "BUSY"
	case PWR:
		return "PWR"
	default:
		return fmt.Sprintf("Pin(%d)", int(p))
	}
}

// Direction returns the pin's fixed I/O direction.
func (p Pin) Direction() Direction {
	if p == Busy {
		return Input
	}
	return Output
}

// All lists the eight signals in the order the driver acquires them.
var All = [8]Pin{SCK, SDA, CSMain, CSPeri, DC, RST, Busy, PWR}

// IO is a single acquired pin. Backing implementations (memory-mapped
// BCM2835 registers, a userspace gpio-chip interface, or a test double)
// must all present this same contract to the driver.
type IO interface {
	// SetDirection configures the pin for input or output. It is
	// idempotent: calling it repeatedly with the same direction has no
	// additional effect.
	SetDirection(Direction) error
	// Write drives the pin to level. Calling Write on an input pin
	// (Busy) is a programming error.
	Write(Level) error
	// Read returns the pin's current level. Calling Read on any output
	// pin is a programming error.
	Read() (Level, error)
}

// Opener acquires a single pin's backing implementation. Production
// callers supply an Opener backed by memory-mapped registers or a
// gpio-chip device; tests supply pintest.Open.
type Opener func(Pin) (IO, error)

// Set is the eight acquired pins the driver owns for its lifetime.
type Set struct {
	pins map[Pin]IO
}

// Open acquires all eight signals via open, configuring each pin's
// direction. It releases any pins it already opened before returning an
// error from a later one.
func Open(open Opener) (*Set, error) {
	s := &Set{pins: make(map[Pin]IO, len(All))}
	for _, p := range All {
		io, err := open(p)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("pin: open %s: %w", p, err)
		}
		if err := io.SetDirection(p.Direction()); err != nil {
			s.Close()
			return nil, fmt.Errorf("pin: set direction %s: %w", p, err)
		}
		s.pins[p] = io
	}
	return s, nil
}

// Write drives p to level. It panics if p is Busy (an input), matching
// the contract's "programming error" framing for a misuse that a caller
// should never trigger.
func (s *Set) Write(p Pin, level Level) error {
	if p == Busy {
		panic("pin: Write on an input pin (BUSY)")
	}
	return s.pins[p].Write(level)
}

// Read returns Busy's current level. It panics for any other pin.
func (s *Set) Read(p Pin) (Level, error) {
	if p != Busy {
		panic(fmt.Sprintf("pin: Read on an output pin (%s)", p))
	}
	return s.pins[p].Read()
}

// Close releases every output pin by driving it low, swallowing
// individual pin errors: best-effort release is the documented behavior
// on every exit path. Busy is an input and is left untouched.
func (s *Set) Close() {
	for p, io := range s.pins {
		if p == Busy {
			continue
		}
		_ = io.Write(Low)
	}
}
