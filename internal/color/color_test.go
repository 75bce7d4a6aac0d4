// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package color

import (
	"math"
	"testing"
)

func TestHybridDistanceZero(t *testing.T) {
	for _, e := range Palette {
		if d := HybridDistance(e.Lab, e.Lab); d != 0 {
			t.Errorf("%s: self-distance = %v, want 0", e.Color, d)
		}
	}
}

func TestHybridDistanceSymmetric(t *testing.T) {
	a, b := Palette[Black].Lab, Palette[Red].Lab
	if math.Abs(HybridDistance(a, b)-HybridDistance(b, a)) > 1e-12 {
		t.Fatalf("hybrid distance is not symmetric")
	}
}

func TestToLabApproximatesPaletteConstants(t *testing.T) {
	// ToLab is a general-purpose conversion; it is not required to exactly
	// reproduce the hardcoded palette constants (those are fixed, not
	// derived at runtime) but it should land in the same neighborhood for
	// the two colors with the least srgb-to-oklab round trip error.
	got := ToLab(RGB{0, 0, 0})
	want := Palette[Black].Lab
	if HybridDistance(got, want) > 0.05 {
		t.Errorf("ToLab(black) = %+v, want near %+v", got, want)
	}

	got = ToLab(RGB{255, 255, 255})
	want = Palette[White].Lab
	if HybridDistance(got, want) > 0.05 {
		t.Errorf("ToLab(white) = %+v, want near %+v", got, want)
	}
}

func TestDisplayStringUnknown(t *testing.T) {
	if Display(200).String() != "White" {
		t.Errorf("unknown Display should stringify as White")
	}
}
