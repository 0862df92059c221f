// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import "testing"

// TestByteOrderingConvention pins the one design decision the whole
// package depends on: byte 0x01 is bit 1 followed by seven 0 bits, not
// the reverse.
func TestByteOrderingConvention(t *testing.T) {
	got := bytesToBits([]byte{0x01}, 8)
	want := []bool{true, false, false, false, false, false, false, false}
	if !boolsEqual(got, want) {
		t.Fatalf("bytesToBits(0x01) = %v, want %v", got, want)
	}
}

func TestBytesToBitsTruncatesTrailingBits(t *testing.T) {
	got := bytesToBits([]byte{0xff, 0xff}, 3)
	want := []bool{true, true, true}
	if !boolsEqual(got, want) {
		t.Fatalf("bytesToBits truncation = %v, want %v", got, want)
	}
}

func TestBitsToBytesPartialGroup(t *testing.T) {
	got := bitsToBytes([]bool{true, false, true})
	want := []byte{0x05}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("bitsToBytes partial group = %v, want %v", got, want)
	}
}

// TestCodecRoundTrip checks that bytes -> bits -> bytes is the identity
// over whole bytes.
func TestCodecRoundTrip(t *testing.T) {
	for _, h := range [][]byte{
		{},
		{0x00},
		{0xff},
		{0xcc},
		sequentialBytes(137),
		sequentialBytes(1600 / 8),
	} {
		bits := bytesToBits(h, 8*len(h))
		back := bitsToBytes(bits)
		if !bytesEqual(back, h) {
			t.Fatalf("round trip over %d bytes failed: got %x, want %x", len(h), back, h)
		}
	}
}

func boolsEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sequentialBytes produces size consecutive bytes 0x00, 0x01, ..., used
// across this package's tests.
func sequentialBytes(size int) []byte {
	result := make([]byte, size)
	for i := range result {
		result[i] = byte(i)
	}
	return result
}
