// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package imagepipe

import "fmt"

// Stage identifies which part of the pipeline produced an Error.
type Stage string

// Pipeline stages that can fail. Resize failures are not included: a
// width/height mismatch coming out of resize is a programmer error (an
// assertion), not a surfaced Error. Convert never returns StageOrient: a
// missing or undecodable EXIF block falls back to identity orientation.
const (
	StageDecode Stage = "decode"
	StageOrient Stage = "orient"
)

// Error wraps an underlying decode/orientation failure with the stage
// that produced it, so callers can branch on Stage without string
// matching while still getting a useful message and Unwrap().
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("imagepipe: %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
