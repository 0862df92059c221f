// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file is the production Keccak-p[1600,24] permutation: the state
// is 25 uint64 lanes (lane (x,y) lives at index 5y+x, matching the
// flat i = W*(5y+x)+z bit ordering used throughout this package)
// instead of a bit cube, and rho+pi are fused into a single
// rotate-and-scatter pass. See reference.go for the bit-exact,
// unoptimized definition this is checked against.

// rhoPiRotate[i] and rhoPiDest[i] describe the fused rho+pi step for
// lane i = 5y+x: the lane is rotated left by rhoPiRotate[i] bits and
// written to rhoPiDest[i]. Both tables are generated from the same
// rho recurrence used by the bit-level reference (rhoOffsets), not
// hand-copied, and are self-checked at init against the published
// rotation-offset table.
var (
	rhoPiRotate [25]uint
	rhoPiDest   [25]int
	roundConst  [24]uint64
)

func init() {
	offsets := rhoOffsets()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			i := 5*y + x
			rhoPiRotate[i] = offsets[x][y]
			yPrime := (2*x + 3*y) % 5
			rhoPiDest[i] = 5*yPrime + y
		}
	}
	roundConst = roundConstantLanes()

	wantOffsets := [25]uint{
		0, 1, 62, 28, 27, 36, 44, 6, 55, 20,
		3, 10, 43, 25, 39, 41, 45, 15, 21, 8,
		18, 2, 61, 56, 14,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if rhoPiRotate[5*y+x] != wantOffsets[5*y+x] {
				panic("sha3: generated rho offsets do not match the published table")
			}
		}
	}
}

func rotl64(x uint64, n uint) uint64 {
	n %= 64
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (64 - n))
}

// theta mixes each lane with the parity of the two neighboring columns.
func theta(a *[25]uint64) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[5+x] ^ a[10+x] ^ a[15+x] ^ a[20+x]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			a[5*y+x] ^= d
		}
	}
}

// rhoPi rotates each lane and scatters it to its pi-permuted position,
// in a single pass over the precomputed tables.
func rhoPi(a *[25]uint64) {
	var out [25]uint64
	for i := 0; i < 25; i++ {
		out[rhoPiDest[i]] = rotl64(a[i], rhoPiRotate[i])
	}
	*a = out
}

// chi is the only non-linear step; each output row is computed from a
// snapshot of the same row.
func chi(a *[25]uint64) {
	for base := 0; base < 25; base += 5 {
		var row [5]uint64
		copy(row[:], a[base:base+5])
		for x := 0; x < 5; x++ {
			a[base+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// keccakF runs the 24-round Keccak-p[1600,24] permutation and returns
// the new state. It is a pure function of its argument.
func keccakF(a [25]uint64) [25]uint64 {
	for round := 0; round < numRounds; round++ {
		theta(&a)
		rhoPi(&a)
		chi(&a)
		a[0] ^= roundConst[round]
	}
	return a
}
