// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pin

import (
	"errors"
	"testing"
)

func TestDirectionOfEachPin(t *testing.T) {
	for _, p := range All {
		want := Output
		if p == Busy {
			want = Input
		}
		if got := p.Direction(); got != want {
			t.Errorf("%s.Direction() = %v, want %v", p, got, want)
		}
	}
}

func TestOpenReleasesOnFailure(t *testing.T) {
	opened := 0
	closed := 0
	open := func(p Pin) (IO, error) {
		opened++
		if p == RST {
			return nil, errors.New("boom")
		}
		return &trackingPin{onWrite: func() { closed++ }}, nil
	}
	if _, err := Open(open); err == nil {
		t.Fatal("expected an error from Open")
	}
	if closed == 0 {
		t.Errorf("expected Open to release already-opened pins on failure")
	}
}

type trackingPin struct {
	onWrite func()
}

func (t *trackingPin) SetDirection(Direction) error { return nil }
func (t *trackingPin) Write(Level) error {
	if t.onWrite != nil {
		t.onWrite()
	}
	return nil
}
func (t *trackingPin) Read() (Level, error) { return Low, nil }

func TestWritePanicsOnBusy(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Write(Busy) to panic")
		}
	}()
	s := &Set{pins: map[Pin]IO{Busy: &trackingPin{}}}
	_ = s.Write(Busy, Low)
}

func TestReadPanicsOnOutput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Read(SCK) to panic")
		}
	}()
	s := &Set{pins: map[Pin]IO{SCK: &trackingPin{}}}
	_, _ = s.Read(SCK)
}
