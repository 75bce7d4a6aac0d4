// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package colormap implements the nearest-palette quantizer: given an
// arbitrary sRGB pixel, find the closest of the display's six colors
// using the hybrid perceptual distance defined in internal/color.
package colormap

import "github.com/joseph-levine/epd6c-go/internal/color"

// IndexOf returns the palette index in 0..5 minimizing the hybrid
// distance to rgb. Ties are broken by the lowest palette index.
func IndexOf(rgb color.RGB) int {
	lab := color.ToLab(rgb)
	best := 0
	bestDist := color.HybridDistance(color.Palette[0].Lab, lab)
	for i := 1; i < len(color.Palette); i++ {
		d := color.HybridDistance(color.Palette[i].Lab, lab)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Lookup returns the canonical sRGB for a palette index. Indices outside
// 0..5 decode to White, matching the frame-file decode contract.
func Lookup(index int) color.RGB {
	if index < 0 || index >= len(color.Palette) {
		return color.Palette[color.White].RGB
	}
	return color.Palette[index].RGB
}

// MapColor replaces rgb in place with its quantized sRGB value. This is
// the hook a Floyd-Steinberg dither driver calls repeatedly, diffusing
// the sRGB residual between calls.
func MapColor(rgb *color.RGB) {
	*rgb = Lookup(IndexOf(*rgb))
}
