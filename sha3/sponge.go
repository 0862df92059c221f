// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file is the bit-level reference sponge: a direct transcription
// of the absorb-then-squeeze construction over []bool, built on
// keccakFRef and pad10star1. Production hashing (sha3.go, engine.go)
// never calls it; it exists to pin the construction down independently
// of the byte/lane-oriented fast path, and TestEngineMatchesReferenceSponge
// checks the two agree on every instance.

// spongeRef implements sponge(f, pad, r, n, d) exactly: it pads n to a
// multiple of r, absorbs each r-bit chunk into a B-bit state via
// XOR-then-permute, then squeezes r bits at a time until d bits have
// been produced.
func spongeRef(r int, n []bool, d int) []bool {
	if r <= 0 || r >= stateWidth {
		panic("sha3: spongeRef: rate out of range")
	}

	p := append(append([]bool{}, n...), pad10star1(r, len(n))...)
	if len(p)%r != 0 {
		panic("sha3: spongeRef: padding invariant violated")
	}

	s := make([]bool, stateWidth)
	for chunkStart := 0; chunkStart < len(p); chunkStart += r {
		chunk := p[chunkStart : chunkStart+r]
		for i, bit := range chunk {
			s[i] = s[i] != bit
		}
		s = keccakFRef(s)
	}

	z := make([]bool, 0, d+r)
	for len(z) < d {
		z = append(z, s[:r]...)
		if len(z) < d {
			s = keccakFRef(s)
		}
	}
	return z[:d]
}

// keccakRef is keccak(c, n, d) = spongeRef(keccakFRef, pad10star1, B-c, n, d).
func keccakRef(capacity int, n []bool, d int) []bool {
	return spongeRef(stateWidth-capacity, n, d)
}
