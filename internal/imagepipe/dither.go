// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package imagepipe

import (
	"image"

	"github.com/joseph-levine/epd6c-go/internal/color"
	"github.com/joseph-levine/epd6c-go/internal/colormap"
)

type residual struct {
	r, g, b float64
}

// dither replaces every pixel of img in place with its nearest palette
// color using Floyd-Steinberg error diffusion, and returns the
// row-major palette index of every pixel. Nearest-color selection uses
// the perceptual hybrid distance (internal/colormap), but the diffused
// error is computed in sRGB space -- that asymmetry is deliberate.
func dither(img *image.NRGBA) []int {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	cur := make([]residual, w)
	next := make([]residual, w)
	indices := make([]int, w*h)

	for y := 0; y < h; y++ {
		for i := range next {
			next[i] = residual{}
		}
		for x := 0; x < w; x++ {
			off := y*img.Stride + x*4
			oldR := float64(img.Pix[off+0]) + cur[x].r
			oldG := float64(img.Pix[off+1]) + cur[x].g
			oldB := float64(img.Pix[off+2]) + cur[x].b

			clampedR := clamp255(oldR)
			clampedG := clamp255(oldG)
			clampedB := clamp255(oldB)

			idx := colormap.IndexOf(color.RGB{R: clampedR, G: clampedG, B: clampedB})
			q := colormap.Lookup(idx)
			indices[y*w+x] = idx

			img.Pix[off+0] = q.R
			img.Pix[off+1] = q.G
			img.Pix[off+2] = q.B
			img.Pix[off+3] = 255

			errR := oldR - float64(q.R)
			errG := oldG - float64(q.G)
			errB := oldB - float64(q.B)

			if x+1 < w {
				cur[x+1].r += errR * 7 / 16
				cur[x+1].g += errG * 7 / 16
				cur[x+1].b += errB * 7 / 16
			}
			if x-1 >= 0 {
				next[x-1].r += errR * 3 / 16
				next[x-1].g += errG * 3 / 16
				next[x-1].b += errB * 3 / 16
			}
			next[x].r += errR * 5 / 16
			next[x].g += errG * 5 / 16
			next[x].b += errB * 5 / 16
			if x+1 < w {
				next[x+1].r += errR * 1 / 16
				next[x+1].g += errG * 1 / 16
				next[x+1].b += errB * 1 / 16
			}
		}
		cur, next = next, cur
	}
	return indices
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
