// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epd drives the dual-chip six-color e-paper panel: a fixed
// power-on boot sequence, a BUSY-line handshake, nibble-packed full-frame
// transfer split across two controller chips, and deep sleep.
//
// A Driver owns all eight GPIO signals exclusively from New until Close;
// only one Driver may exist per process (GPIO is a process-wide
// resource). Driver methods are synchronous and block the caller for the
// duration of the operation; there is no internal concurrency and no
// cancellation beyond Close.
package epd

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/joseph-levine/epd6c-go/internal/bitbang"
	"github.com/joseph-levine/epd6c-go/internal/command"
	"github.com/joseph-levine/epd6c-go/internal/frame"
	"github.com/joseph-levine/epd6c-go/internal/pin"
)

// State is the driver's current lifecycle stage. It exists for
// diagnostics; no public method rejects a call because of the current
// state -- every operation is safe to call in sequence, and Close is
// idempotent from any state.
type State int

const (
	Cold State = iota
	Initialized
	Displaying
	Asleep
	Dropped
)

func (s State) String() string {
	switch s {
	case Cold:
		return "Cold"
	case Initialized:
		return "Initialized"
	case Displaying:
		return "Displaying"
	case Asleep:
		return "Asleep"
	case Dropped:
		return "Dropped"
	default:
		return "Unknown"
	}
}

// Timing constants from the design's boot and frame-transfer contract.
const (
	resetPulseInterval = 25 * time.Millisecond // spec permits 20-30ms; rust sources used 3ms and 30ms inconsistently
	busyPollInterval   = 5 * time.Millisecond
	busyWaitMargin     = 20 * time.Millisecond
	postFrameSettle    = 100 * time.Millisecond
	powerOnToDRFDelay  = 50 * time.Millisecond
	deepSleepSettle    = 2 * time.Second
)

// boot sequence: ordered commands with their designated chip selection.
var bootSequence = []struct {
	code  command.Code
	which bitbang.Selection
}{
	{command.AnTm, bitbang.Main},
	{command.Cmd66, bitbang.Both},
	{command.Psr, bitbang.Both},
	{command.Cdi, bitbang.Both},
	{command.Tcon, bitbang.Both},
	{command.Agid, bitbang.Both},
	{command.Pws, bitbang.Both},
	{command.Ccset, bitbang.Both},
	{command.Tres, bitbang.Both},
	{command.Pwr, bitbang.Main},
	{command.EnBuf, bitbang.Main},
	{command.BtstP, bitbang.Main},
	{command.BoostVddpEn, bitbang.Main},
	{command.BtstN, bitbang.Main},
	{command.BuckBoostVddn, bitbang.Main},
	{command.TftVcomPower, bitbang.Main},
}

var instanceActive atomic.Bool

// Driver is a handle to the panel. Construct one with New and release it
// with Close (directly, or transitively via Sleep).
type Driver struct {
	pins  *pin.Set
	bus   *bitbang.Bus
	state State
}

// New acquires all eight pins via open and parks them for a cold boot:
// every output low except PWR, which is driven high. It returns an error
// if another Driver is already active in this process.
func New(open pin.Opener) (*Driver, error) {
	if !instanceActive.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("epd: a driver is already active in this process")
	}

	pins, err := pin.Open(open)
	if err != nil {
		instanceActive.Store(false)
		return nil, fmt.Errorf("epd: %w", err)
	}

	d := &Driver{pins: pins, bus: bitbang.New(pins), state: Cold}
	for _, p := range []pin.Pin{pin.SCK, pin.SDA, pin.CSMain, pin.CSPeri, pin.DC, pin.RST} {
		if err := pins.Write(p, pin.Low); err != nil {
			d.Close()
			return nil, fmt.Errorf("epd: park %s low: %w", p, err)
		}
	}
	if err := pins.Write(pin.PWR, pin.High); err != nil {
		d.Close()
		return nil, fmt.Errorf("epd: power on: %w", err)
	}

	return d, nil
}

// Init runs the reset pulse, the BUSY handshake, and the fixed boot
// command sequence, taking the driver from Cold to Initialized.
func (d *Driver) Init() error {
	if err := d.resetPulse(); err != nil {
		return err
	}
	time.Sleep(busyWaitMargin)
	if err := d.waitBusy(); err != nil {
		return err
	}
	time.Sleep(busyWaitMargin)

	for _, step := range bootSequence {
		if err := d.bus.Send(step.which, step.code.Bytes()); err != nil {
			return fmt.Errorf("epd: boot command %v: %w", step.code, err)
		}
	}

	d.state = Initialized
	return nil
}

func (d *Driver) resetPulse() error {
	for _, level := range []pin.Level{pin.High, pin.Low, pin.High, pin.Low, pin.High} {
		if err := d.pins.Write(pin.RST, level); err != nil {
			return fmt.Errorf("epd: reset pulse: %w", err)
		}
		time.Sleep(resetPulseInterval)
	}
	return nil
}

// waitBusy polls BUSY until it reads High (idle); LOW means the panel is
// still busy. There is no internal timeout: a panel that never releases
// BUSY is an unrecoverable hardware condition a caller may wrap with an
// external watchdog.
func (d *Driver) waitBusy() error {
	for {
		level, err := d.pins.Read(pin.Busy)
		if err != nil {
			return fmt.Errorf("epd: read busy: %w", err)
		}
		if level == pin.High {
			return nil
		}
		time.Sleep(busyPollInterval)
	}
}

// Display sends a full frame to the panel: the Main half streamed first,
// then the Peri half, then the turn-on-display sub-sequence. frame must
// be exactly frame.BytesTotal bytes; a mismatch is a programming error
// and panics rather than returning an error, per the design.
func (d *Driver) Display(f []byte) error {
	if err := frame.Validate(f); err != nil {
		panic(err)
	}

	chunks := frame.Chunks(f)
	mainPayload := make([]byte, 0, 1+frame.BytesPerChip)
	mainPayload = append(mainPayload, command.Dtm.Opcode())
	periPayload := make([]byte, 0, 1+frame.BytesPerChip)
	periPayload = append(periPayload, command.Dtm.Opcode())
	for i, c := range chunks {
		if frame.IsMainChunk(i) {
			mainPayload = append(mainPayload, c...)
		} else {
			periPayload = append(periPayload, c...)
		}
	}

	if err := d.bus.Send(bitbang.Main, mainPayload); err != nil {
		return fmt.Errorf("epd: send main half-frame: %w", err)
	}
	if err := d.bus.Send(bitbang.Peri, periPayload); err != nil {
		return fmt.Errorf("epd: send peri half-frame: %w", err)
	}

	time.Sleep(postFrameSettle)
	return d.turnOnDisplay()
}

func (d *Driver) turnOnDisplay() error {
	d.state = Displaying

	if err := d.bus.Send(bitbang.Both, command.PowerOn.Bytes()); err != nil {
		return fmt.Errorf("epd: power on display: %w", err)
	}
	if err := d.waitBusy(); err != nil {
		return err
	}

	time.Sleep(powerOnToDRFDelay)

	if err := d.bus.Send(bitbang.Both, command.Drf.Bytes()); err != nil {
		return fmt.Errorf("epd: display refresh: %w", err)
	}
	if err := d.waitBusy(); err != nil {
		return err
	}

	if err := d.bus.Send(bitbang.Both, command.Pof.Bytes()); err != nil {
		return fmt.Errorf("epd: power off: %w", err)
	}
	return nil
}

// Clear displays an all-white frame. Per the design's authoritative
// clear value, white is palette index 1, so every byte is 0x11 -- not
// the all-zero (black) frame some shelved variants used.
func (d *Driver) Clear() error {
	return d.Display(frame.AllWhite())
}

// Sleep sends the deep-sleep command, waits for the panel to settle,
// and releases the pins. The panel only returns from deep sleep via a
// hardware reset, so a subsequent Init is required to use it again.
func (d *Driver) Sleep() error {
	err := d.bus.Send(bitbang.Both, command.DeepSleep.Bytes())
	time.Sleep(deepSleepSettle)
	d.state = Asleep
	d.Close()
	if err != nil {
		return fmt.Errorf("epd: deep sleep: %w", err)
	}
	return nil
}

// Close parks CS_MAIN, CS_PERI, DC, RST, and PWR low and releases the
// pins. It swallows pin errors (the panel is being powered down; there
// is nothing a caller can do about a failed park write) and is safe to
// call multiple times or after Sleep.
func (d *Driver) Close() {
	if d.state == Dropped {
		return
	}
	if d.pins != nil {
		d.pins.Close()
	}
	d.state = Dropped
	instanceActive.Store(false)
}

// String reports the driver's current lifecycle state, for logging.
func (d *Driver) String() string {
	return fmt.Sprintf("epd.Driver{%s}", d.state)
}
