// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package colormap

import (
	"testing"

	"github.com/joseph-levine/epd6c-go/internal/color"
)

func TestPaletteColorsAreFixedPoints(t *testing.T) {
	for _, e := range color.Palette {
		if got := IndexOf(e.RGB); got != int(e.Color) {
			t.Errorf("IndexOf(%v) = %d, want %d (%s)", e.RGB, got, int(e.Color), e.Color)
		}
	}
}

func TestLookupOutOfRangeIsWhite(t *testing.T) {
	for _, idx := range []int{6, 7, 15, -1, 200} {
		if got := Lookup(idx); got != color.Palette[color.White].RGB {
			t.Errorf("Lookup(%d) = %v, want white", idx, got)
		}
	}
}

func TestPaletteRoundTripScenario(t *testing.T) {
	// Scenario 1 from the testable-properties list.
	cases := []struct {
		rgb  color.RGB
		want int
	}{
		{color.RGB{0, 0, 0}, 0},
		{color.RGB{255, 255, 255}, 1},
		{color.RGB{191, 0, 0}, 3},
	}
	for _, c := range cases {
		if got := IndexOf(c.rgb); got != c.want {
			t.Errorf("IndexOf(%v) = %d, want %d", c.rgb, got, c.want)
		}
	}
}

func TestMapColorInPlace(t *testing.T) {
	c := color.RGB{10, 10, 10}
	MapColor(&c)
	if c != color.Palette[color.Black].RGB {
		t.Errorf("MapColor(near-black) = %v, want black", c)
	}
}
