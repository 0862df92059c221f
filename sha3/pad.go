// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// pad10star1 implements the pad10*1 rule: given a block size x > 0 and
// a message length m >= 0, it returns a bit string of length
// (-m-2) mod x + 2 that starts and ends with a 1 bit and is all zero
// in between, chosen so that m + len(result) is a positive multiple
// of x.
//
// The (-m-2) mod x step must use Euclidean (always non-negative)
// modulo; Go's % is a truncating remainder and returns negative
// results for a negative left operand, so the result is normalized
// explicitly rather than handed to the runtime's % unguarded.
func pad10star1(x, m int) []bool {
	if x <= 0 {
		panic("sha3: pad10star1: block size must be positive")
	}
	j := euclidMod(-m-2, x)
	out := make([]bool, j+2)
	out[0] = true
	out[len(out)-1] = true
	return out
}

// euclidMod returns a mod n in [0, n), for n > 0, regardless of the
// sign of a.
func euclidMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
