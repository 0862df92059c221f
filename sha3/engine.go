// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import "encoding/binary"

// This file is the byte/lane-oriented production sponge: absorb input
// rate bytes at a time by XORing them into the lane state and
// permuting, pad with the domain-separation byte and the final pad
// bit, then squeeze. It follows the same absorb/pad/squeeze shape as
// digest.Write/finalize/Squeeze, collapsed to a single one-shot call
// since this package exposes no incremental update API: every hash
// here is input-buffer-in, fixed-array-out.
//
// rate is always a multiple of 8 bytes for the four instances this
// package defines (144, 136, 104, 72 bytes), so lanes are XORed and
// read back a full 8 bytes at a time with no partial-lane case.

// hashOneShot absorbs all of data, applies the pad10*1 rule with the
// domain-separation byte dsbyte folded into its leading 1 bit, and
// squeezes exactly outputLen bytes.
func hashOneShot(data []byte, rate, outputLen int, dsbyte byte) []byte {
	var a [25]uint64

	for len(data) >= rate {
		xorBlockIntoLanes(&a, data[:rate])
		a = keccakF(a)
		data = data[rate:]
	}

	block := make([]byte, rate)
	copy(block, data)
	block[len(data)] ^= dsbyte
	block[rate-1] ^= 0x80
	xorBlockIntoLanes(&a, block)
	a = keccakF(a)

	out := make([]byte, 0, outputLen)
	for len(out) < outputLen {
		need := outputLen - len(out)
		if need > rate {
			need = rate
		}
		out = append(out, lanesToBlock(a, need)...)
		if len(out) < outputLen {
			a = keccakF(a)
		}
	}
	if len(out) != outputLen {
		panic("sha3: hashOneShot: squeezed output length mismatch")
	}
	return out
}

// xorBlockIntoLanes xors an exactly-rate-sized, little-endian-packed
// block into the first len(block)/8 lanes of a.
func xorBlockIntoLanes(a *[25]uint64, block []byte) {
	for i := 0; i*8 < len(block); i++ {
		a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
}

// lanesToBlock returns the first n bytes of a's little-endian byte
// representation.
func lanesToBlock(a [25]uint64, n int) []byte {
	buf := make([]byte, 8*len(a))
	for i, lane := range a {
		binary.LittleEndian.PutUint64(buf[i*8:], lane)
	}
	return buf[:n]
}
