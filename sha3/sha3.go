// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file is the public entry point: four pure functions, one per
// fixed SHA-3 output size. See doc.go for the package-level overview,
// keccakf.go and engine.go for the permutation and sponge underneath,
// and reference.go for the bit-addressed oracle the fast path is
// checked against.
package sha3

// sha3Suffix is the two-bit SHA-3 domain separator ("01") merged with
// pad10*1's leading 1 bit, giving the familiar trailing byte 0x06 once
// packed least-significant-bit first. Changing this to 0x1f (SHAKE's
// "1111" suffix merged the same way) is the only thing that would be
// needed to derive a SHAKE instance from this sponge; SHAKE itself is
// not provided.
const sha3Suffix = 0x06

// rate and output size, in bytes, for each instance: capacity is
// always twice the digest length, and rate is what's left of the
// 200-byte (1600-bit) state.
const (
	rate224 = 200 - 2*(224/8)
	rate256 = 200 - 2*(256/8)
	rate384 = 200 - 2*(384/8)
	rate512 = 200 - 2*(512/8)
)

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (sum [28]byte) {
	copy(sum[:], hashOneShot(data, rate224, len(sum), sha3Suffix))
	return sum
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (sum [32]byte) {
	copy(sum[:], hashOneShot(data, rate256, len(sum), sha3Suffix))
	return sum
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (sum [48]byte) {
	copy(sum[:], hashOneShot(data, rate384, len(sum), sha3Suffix))
	return sum
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (sum [64]byte) {
	copy(sum[:], hashOneShot(data, rate512, len(sum), sha3Suffix))
	return sum
}
