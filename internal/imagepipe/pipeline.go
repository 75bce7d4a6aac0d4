// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package imagepipe ingests an arbitrary RGB image and produces the
// packed 4-bit-per-pixel frame buffer described in internal/frame:
// decode, apply EXIF orientation, rotate 90 degrees clockwise into
// display portrait, resize-to-fill with Lanczos3, dither through the
// display's six-color palette, and nibble-pack.
package imagepipe

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/joseph-levine/epd6c-go/internal/frame"
)

// Result is the output of Convert.
type Result struct {
	// Frame is the packed frame buffer, always exactly frame.BytesTotal
	// bytes, ready to hand to the display driver.
	Frame []byte
	// Dithered is the post-dither 8-bit RGB preview, at display
	// resolution, for callers that want to save it alongside Frame.
	Dithered *image.NRGBA
}

// Convert runs the full pipeline over a complete image file (jpeg, png,
// or gif; format is detected from the content, not the file name).
func Convert(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Stage: StageDecode, Err: err}
	}

	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	img = applyOrientation(img, data)
	// imaging.Rotate90/180/270 rotate counter-clockwise; a 270 CCW turn
	// is the same transform as the 90 CW turn the panel's portrait
	// mount requires.
	img = imaging.Rotate270(img)
	img = imaging.Fill(img, frame.Width, frame.Height, imaging.Center, imaging.Lanczos)

	rgb := imaging.Clone(img)
	if w, h := rgb.Bounds().Dx(), rgb.Bounds().Dy(); w != frame.Width || h != frame.Height {
		// Resize-to-fill always produces exactly the requested
		// dimensions; anything else is a bug in the resize call above.
		panic(fmt.Sprintf("imagepipe: resize produced %dx%d, want %dx%d", w, h, frame.Width, frame.Height))
	}

	indices := dither(rgb)

	return &Result{
		Frame:    frame.Pack(indices),
		Dithered: rgb,
	}, nil
}

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Stage: StageDecode, Err: err}
	}
	return img, nil
}

// applyOrientation rotates/flips img to match its EXIF orientation tag.
// A missing or undecodable EXIF block is not an error: the image is
// returned unchanged (orientation 1, identity).
func applyOrientation(img image.Image, data []byte) image.Image {
	switch readOrientation(data) {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func readOrientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return v
}
