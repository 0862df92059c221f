// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the four fixed-output-length hash functions
// chosen by NIST in FIPS 202: SHA3-224, SHA3-256, SHA3-384, and
// SHA3-512 (all, like their SHA-2 namesakes, formerly built on the
// Keccak submission to the NIST hash competition). Each function is a
// pure mapping from an arbitrary-length byte slice to a fixed-size
// byte array:
//
//	Sum224(data) [28]byte
//	Sum256(data) [32]byte
//	Sum384(data) [48]byte
//	Sum512(data) [64]byte
//
// There is no incremental Write/Sum API: every call absorbs its whole
// input, pads it with the pad10*1 rule, and squeezes the digest in a
// single pass. There is also no SHAKE, no customizable domain
// separator, and no keyed/MAC mode; each of the four functions is
// exactly the SHA-3 instance FIPS 202 defines, nothing more general.
//
// For the underlying mathematics, see http://keccak.noekeon.org/ and
// FIPS 202 itself.
//
// # Security strengths
//
//	          output  collision-resistance  preimage-resistance
//	SHA3-224     28B              112 bits             224 bits
//	SHA3-256     32B              128 bits             256 bits
//	SHA3-384     48B              192 bits             384 bits
//	SHA3-512     64B              256 bits             512 bits
//
// # The sponge construction
//
// A sponge builds a pseudo-random function from a pseudo-random
// permutation by applying the permutation to a state of
// "rate + capacity" bits, while hiding the capacity portion from the
// caller. To hash an input, up to "rate" bits at a time are XORed into
// the state and the permutation is applied; this repeats until the
// (padded) input is exhausted. The digest is then squeezed out by the
// same method, reading instead of XORing.
//
//	up to "rate" bits xored in
//	\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/
//	======================================----------------
//	|  rate                              | capacity      |
//	======================================----------------
//	:::::::::::::::::Keccak-p[1600,24]::::::::::::::::::::
//	======================================----------------
//	|  rate                              | capacity      |
//	======================================----------------
//	/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/
//	up to "rate" bits read out
//
// Since Keccak-p[1600,24] is 1600 bits wide, capacity + rate == 1600,
// and each instance above fixes capacity = 2 * output length, so that
// its preimage resistance equals half its capacity.
package sha3
