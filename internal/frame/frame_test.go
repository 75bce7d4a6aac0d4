// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package frame

import "testing"

func TestGeometryConstants(t *testing.T) {
	if BytesTotal != 960000 {
		t.Fatalf("BytesTotal = %d, want 960000", BytesTotal)
	}
	if BytesPerChip != 480000 {
		t.Fatalf("BytesPerChip = %d, want 480000", BytesPerChip)
	}
}

func TestValidateRejectsWrongLength(t *testing.T) {
	if err := Validate(make([]byte, BytesTotal-1)); err == nil {
		t.Fatal("expected an error for a short frame")
	}
	if err := Validate(make([]byte, BytesTotal)); err != nil {
		t.Fatalf("unexpected error for a correctly sized frame: %v", err)
	}
}

func TestPackNibbleOrder(t *testing.T) {
	// Scenario 2: eight pixels with indices [0,1,2,3,4,5,1,1].
	got := Pack([]int{0, 1, 2, 3, 4, 5, 1, 1})
	want := []byte{0x01, 0x23, 0x45, 0x11}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestAllWhiteIsClearFrame(t *testing.T) {
	f := AllWhite()
	if len(f) != BytesTotal {
		t.Fatalf("len(AllWhite()) = %d, want %d", len(f), BytesTotal)
	}
	for i, b := range f {
		if b != 0x11 {
			t.Fatalf("byte %d = %#x, want 0x11", i, b)
		}
	}
}

func TestChunksHalving(t *testing.T) {
	// Scenario 3: byte k == k mod 256, verify main/peri split positions.
	f := make([]byte, BytesTotal)
	for k := range f {
		f[k] = byte(k % 256)
	}
	chunks := Chunks(f)
	var mainBytes, periBytes []byte
	for i, c := range chunks {
		if IsMainChunk(i) {
			mainBytes = append(mainBytes, c...)
		} else {
			periBytes = append(periBytes, c...)
		}
	}
	if len(mainBytes) != BytesPerChip || len(periBytes) != BytesPerChip {
		t.Fatalf("main=%d peri=%d, want %d each", len(mainBytes), len(periBytes), BytesPerChip)
	}
	for j, b := range mainBytes {
		want := f[(j/HalfWidth)*1200+(j%HalfWidth)]
		if b != want {
			t.Errorf("main[%d] = %#x, want %#x", j, b, want)
		}
	}
	for j, b := range periBytes {
		want := f[(j/HalfWidth)*1200+HalfWidth+(j%HalfWidth)]
		if b != want {
			t.Errorf("peri[%d] = %#x, want %#x", j, b, want)
		}
	}
}
