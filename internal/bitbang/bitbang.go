// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bitbang implements the panel's software-clocked serial
// transport: MSB-first byte clocking on a dedicated clock/data pin pair,
// plus four-way chip-select gating across the two controller chips. It
// is write-only -- the panel never drives data back to the host on this
// path.
package bitbang

import (
	"fmt"
	"time"

	"github.com/joseph-levine/epd6c-go/internal/pin"
)

// Selection is which chip select line(s) a command targets.
type Selection int

const (
	Neither Selection = iota
	Main
	Peri
	Both
)

func (s Selection) String() string {
	switch s {
	case Main:
		return "Main"
	case Peri:
		return "Peri"
	case Both:
		return "Both"
	default:
		return "Neither"
	}
}

func (s Selection) includesMain() bool { return s == Main || s == Both }
func (s Selection) includesPeri() bool { return s == Peri || s == Both }

// interCommandGap is the settle time the controllers require between
// one command's chip-select deassertion and the next assertion.
const interCommandGap = 10 * time.Millisecond

// Bus drives SCK/SDA/CS_MAIN/CS_PERI over a pin.Set. It tracks the
// current selection only to skip redundant CS writes; correctness never
// depends on that optimization, since every Send always ends by
// deasserting both chip selects.
type Bus struct {
	pins     *pin.Set
	selected Selection
}

// New wraps pins for serial transport. Callers must have already parked
// SCK, SDA, and both chip-selects low (idle) before constructing a Bus.
func New(pins *pin.Set) *Bus {
	return &Bus{pins: pins, selected: Both}
}

// Send asserts which, clocks opcode followed by payload out MSB-first,
// then deasserts both chip selects and waits the inter-command gap. This
// is the only way bytes reach the wire: a command's opcode and its
// payload are streamed within the same chip-select assertion, exactly as
// the controllers expect.
func (b *Bus) Send(which Selection, data []byte) error {
	if err := b.Select(which); err != nil {
		return err
	}
	if err := b.clockOut(data); err != nil {
		return err
	}
	if err := b.Select(Neither); err != nil {
		return err
	}
	time.Sleep(interCommandGap)
	return nil
}

// Select asserts/deasserts CS_MAIN and CS_PERI to match which, writing
// only the lines whose state actually changes.
func (b *Bus) Select(which Selection) error {
	if which == b.selected {
		return nil
	}
	if b.selected.includesMain() != which.includesMain() {
		level := pin.High
		if which.includesMain() {
			level = pin.Low
		}
		if err := b.pins.Write(pin.CSMain, level); err != nil {
			return fmt.Errorf("bitbang: select main: %w", err)
		}
	}
	if b.selected.includesPeri() != which.includesPeri() {
		level := pin.High
		if which.includesPeri() {
			level = pin.Low
		}
		if err := b.pins.Write(pin.CSPeri, level); err != nil {
			return fmt.Errorf("bitbang: select peri: %w", err)
		}
	}
	b.selected = which
	return nil
}

// clockOut drives data onto SDA, MSB first, one SCK pulse per bit: SCK
// low, set SDA, SCK high; idle low between and after bytes.
func (b *Bus) clockOut(data []byte) error {
	for _, by := range data {
		for i := 7; i >= 0; i-- {
			if err := b.pins.Write(pin.SCK, pin.Low); err != nil {
				return fmt.Errorf("bitbang: clock low: %w", err)
			}
			bit := pin.Low
			if by&(1<<uint(i)) != 0 {
				bit = pin.High
			}
			if err := b.pins.Write(pin.SDA, bit); err != nil {
				return fmt.Errorf("bitbang: data: %w", err)
			}
			if err := b.pins.Write(pin.SCK, pin.High); err != nil {
				return fmt.Errorf("bitbang: clock high: %w", err)
			}
		}
	}
	return b.pins.Write(pin.SCK, pin.Low)
}
