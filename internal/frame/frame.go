// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package frame defines the panel's fixed geometry and the packed
// frame-buffer binary contract shared by the image pipeline (which
// produces frames) and the display driver (which consumes them).
package frame

import "fmt"

// Panel geometry. These are fixed: the system has no runtime discovery of
// display size and no support for other resolutions.
const (
	Width     = 1200
	Height    = 1600
	HalfWidth = Width / 2 // bytes per row sent to one controller chip

	// BytesTotal is the exact length of a valid packed frame buffer: two
	// 4-bit palette indices per byte, Width*Height pixels.
	BytesTotal = Width * Height / 2
	// BytesPerChip is the length of a single controller's half-frame.
	BytesPerChip = BytesTotal / 2
)

// ErrLength reports a frame buffer of the wrong length. Per the design,
// this is always a programming error (the caller should have validated
// the frame before calling into a component that assumes BytesTotal).
type ErrLength struct {
	Got int
}

func (e *ErrLength) Error() string {
	return fmt.Sprintf("frame: got %d bytes, want exactly %d", e.Got, BytesTotal)
}

// Validate returns an *ErrLength if f is not exactly BytesTotal bytes.
func Validate(f []byte) error {
	if len(f) != BytesTotal {
		return &ErrLength{Got: len(f)}
	}
	return nil
}

// Pack walks indices two at a time and returns the packed nibble bytes:
// byte i is (indices[2i]<<4 | indices[2i+1]). len(indices) must be even;
// Width is even so the image pipeline never hits the odd case.
func Pack(indices []int) []byte {
	if len(indices)%2 != 0 {
		panic("frame: Pack requires an even number of indices")
	}
	out := make([]byte, len(indices)/2)
	for i := 0; i < len(out); i++ {
		hi := indices[2*i] & 0x0F
		lo := indices[2*i+1] & 0x0F
		out[i] = byte(hi<<4 | lo)
	}
	return out
}

// WhiteNibble is the nibble value of the White palette entry, used as the
// fill byte (0x11) for an all-white "clear" frame.
const WhiteNibble = 0x1

// AllWhite returns a BytesTotal-length frame filled with the White color
// in both nibbles of every byte (0x11), used by Clear.
func AllWhite() []byte {
	out := make([]byte, BytesTotal)
	for i := range out {
		out[i] = WhiteNibble<<4 | WhiteNibble
	}
	return out
}

// IsMainChunk reports whether the 600-byte chunk at the given zero-based
// chunk index belongs to the Main controller (even chunk indices) as
// opposed to Peri (odd chunk indices).
func IsMainChunk(chunkIndex int) bool {
	return chunkIndex%2 == 0
}

// Chunks splits a BytesTotal-length frame into HalfWidth-byte chunks in
// order, for streaming to whichever controller owns each chunk.
func Chunks(f []byte) [][]byte {
	n := len(f) / HalfWidth
	chunks := make([][]byte, n)
	for i := 0; i < n; i++ {
		chunks[i] = f[i*HalfWidth : (i+1)*HalfWidth]
	}
	return chunks
}
