// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package color defines the six-entry display palette in both sRGB and
// OKLab and the hybrid perceptual distance used to compare colors in
// that space.
package color

import "math"

// Display is a closed enumeration of the six colors the panel can show.
type Display uint8

// The dense, authoritative palette index mapping. Unknown indices decode
// to White (see Lookup).
const (
	Black Display = iota
	White
	Yellow
	Red
	Blue
	Green
)

func (d Display) String() string {
	switch d {
	case Black:
		return "Black"
	case White:
		return "White"
	case Yellow:
		return "Yellow"
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	case Green:
		return "Green"
	default:
		return "White"
	}
}

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R, G, B uint8
}

// Lab is a point in the OKLab perceptual color space: L is lightness in
// [0,1], A and B are opponent chroma axes roughly in [-0.3, 0.3].
type Lab struct {
	L, A, B float64
}

// Entry pairs a display color with its fixed sRGB and OKLab
// representations. The OKLab values are hardcoded constants, never
// recomputed at runtime, per the design's authoritative palette.
type Entry struct {
	Color Display
	RGB   RGB
	Lab   Lab
}

// Palette is the ordered, dense enumeration of all six display colors.
// Index i in this slice is always Entry.Color's canonical palette index.
var Palette = [6]Entry{
	{Black, RGB{0, 0, 0}, Lab{0.000, 0.000, 0.000}},
	{White, RGB{255, 255, 255}, Lab{1.000, 0.000, 0.000}},
	{Yellow, RGB{255, 243, 56}, Lab{0.945, -0.051, 0.181}},
	{Red, RGB{191, 0, 0}, Lab{0.505, 0.180, 0.101}},
	{Blue, RGB{100, 64, 255}, Lab{0.543, 0.0537, -0.256}},
	{Green, RGB{67, 138, 28}, Lab{0.566, -0.115, 0.107}},
}

// HybridDistance is the chroma-Euclidean-plus-lightness-absolute distance
// used for nearest-palette lookups. It is cheaper than full Euclidean
// distance in OKLab and tracks human perception better than Euclidean
// distance in sRGB.
func HybridDistance(a, b Lab) float64 {
	da := a.A - b.A
	db := a.B - b.B
	chroma := math.Sqrt(da*da + db*db)
	lightness := math.Abs(a.L - b.L)
	return chroma + lightness
}

// ToLab converts an 8-bit sRGB pixel to OKLab following the standard
// gamma-expand -> linear sRGB -> LMS -> cube-root -> OKLab pipeline. This
// is used only for arbitrary input pixels; the palette's own OKLab values
// are the fixed constants above, never derived through this path.
func ToLab(c RGB) Lab {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l_ := math.Cbrt(l)
	m_ := math.Cbrt(m)
	s_ := math.Cbrt(s)

	return Lab{
		L: 0.2104542553*l_ + 0.7936177850*m_ - 0.0040720468*s_,
		A: 1.9779984951*l_ - 2.4285922050*m_ + 0.4505937099*s_,
		B: 0.0259040371*l_ + 0.7827717662*m_ - 0.8086757660*s_,
	}
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
