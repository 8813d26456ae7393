// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// equalULP reports whether a and b are within ulps representable steps
// of each other: reinterpret each operand's bit pattern as a
// sign-magnitude 32-bit integer, normalize negative representations,
// and test the absolute difference against ulps. Operands of
// different sign compare unequal unless both are zero.
func equalULP(a, b float32, ulps int32) bool {
	ai := orderedRepr(math.Float32bits(a))
	bi := orderedRepr(math.Float32bits(b))
	if (ai < 0) != (bi < 0) {
		return a == b
	}

	diff := ai - bi
	if diff < 0 {
		diff = -diff
	}
	return diff <= ulps
}

// orderedRepr maps a float32 bit pattern to a monotonically ordered
// signed integer: if the sign bit is set, the magnitude is reflected
// through zero so that adjacent representable floats map to adjacent
// integers regardless of sign.
func orderedRepr(bits uint32) int32 {
	if bits&0x80000000 != 0 {
		return int32(0x80000000 - bits)
	}
	return int32(bits)
}
