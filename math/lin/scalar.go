// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Scalar common functions: Min/Max, rounding, Fract/Mod/FMod/Modf, Clamp,
// Mix/Lerp/Step/SmoothStep, NaN/Inf predicates, FMA, FrExp/LdExp, and the
// integer IsPowerOfTwo/IsOdd predicates. These lift to Vec2/Vec3/Vec4 in
// component.go and feed the vector/matrix methods built on top of them.

import "math"

// Min returns the smaller of x and y. If x is NaN the result is NaN;
// otherwise a NaN argument is discarded in favor of the non-NaN one. On
// exact equality Min returns y, so that chained reductions stay
// associative in the presence of equal values. This asymmetric NaN/tie
// rule is deliberate and matches the reference library's Min/Max.
func Min[T Number](x, y T) T {
	if isNaN(x) {
		return x
	}
	if isNaN(y) {
		return x
	}
	if y <= x {
		return y
	}
	return x
}

// Max returns the larger of x and y. If x is NaN the result is NaN;
// otherwise a NaN argument is discarded in favor of the non-NaN one. On
// exact equality Max returns x. See Min for the NaN/tie-break rule.
func Max[T Number](x, y T) T {
	if isNaN(x) {
		return x
	}
	if isNaN(y) {
		return x
	}
	if y > x {
		return y
	}
	return x
}

// Min3 returns the smallest of a, b and c.
func Min3[T Number](a, b, c T) T { return Min(a, Min(b, c)) }

// Min4 returns the smallest of a, b, c and d.
func Min4[T Number](a, b, c, d T) T { return Min(Min(a, b), Min(c, d)) }

// Max3 returns the largest of a, b and c.
func Max3[T Number](a, b, c T) T { return Max(a, Max(b, c)) }

// Max4 returns the largest of a, b, c and d.
func Max4[T Number](a, b, c, d T) T { return Max(Max(a, b), Max(c, d)) }

// isNaN reports x != x, the generic form of math.IsNaN that also type
// checks (and is always false) for integer element types.
func isNaN[T Number](x T) bool { return x != x }

// Abs returns the absolute value of x. For floats, Abs(-0)=+0 and
// Abs(NaN)=NaN. For signed integers the most-negative value is
// returned unchanged (not representable as a positive value); every
// other input is value-preserving.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	if x == 0 {
		return 0
	}
	return x
}

// Sign returns -1, 0 or +1 according to the sign of x. Sign(NaN) is 0.
func Sign[T Signed](x T) T {
	switch {
	case isNaN(x):
		return 0
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Floor returns the greatest integer value <= x.
func Floor[T Float](x T) T { return T(math.Floor(float64(x))) }

// Ceil returns the least integer value >= x.
func Ceil[T Float](x T) T { return T(math.Ceil(float64(x))) }

// Trunc returns the integer value of x nearest zero.
func Trunc[T Float](x T) T { return T(math.Trunc(float64(x))) }

// Round returns the nearest integer to x, rounding half away from zero.
func Round[T Float](x T) T { return T(math.Round(float64(x))) }

// RoundEven returns the nearest integer to x, rounding half to even
// (banker's rounding), e.g. RoundEven(2.5)=2, RoundEven(3.5)=4.
func RoundEven[T Float](x T) T { return T(math.RoundToEven(float64(x))) }

// Fract returns x - Floor(x). Fract(±Inf)=NaN, Fract(NaN)=NaN.
func Fract[T Float](x T) T { return x - Floor(x) }

// Mod returns the mathematical modulus of x by y: x - y*Floor(x/y). The
// result has the sign of y. NaN if y==0 or either argument is infinite.
func Mod[T Float](x, y T) T { return x - y*Floor(x/y) }

// FMod returns the C-style remainder of x by y: x - y*Trunc(x/y). The
// result has the sign of x. NaN if y==0 or either argument is infinite.
func FMod[T Float](x, y T) T {
	if IsInf(y) {
		return T(math.NaN())
	}
	return T(math.Mod(float64(x), float64(y)))
}

// Modf returns the fractional and integer parts of x, both carrying the
// sign of x.
func Modf[T Float](x T) (frac, whole T) {
	w, f := math.Modf(float64(x))
	return T(f), T(w)
}

// Clamp returns x constrained to the closed interval [lo, hi]:
// Min(Max(x,lo),hi). Undefined (unspecified result) when lo>hi.
func Clamp[T Number](x, lo, hi T) T { return Min(Max(x, lo), hi) }

// Mix linearly interpolates between x and y by a: x*(1-a) + y*a.
func Mix[T Float](x, y, a T) T { return x*(1-a) + y*a }

// MixBool selects y when a is true, x otherwise.
func MixBool[T Number](x, y T, a bool) T {
	if a {
		return y
	}
	return x
}

// Lerp is a synonym for Mix restricted by contract to a in [0,1].
func Lerp[T Float](x, y, a T) T { return Mix(x, y, a) }

// Step returns 0 if x < edge, else 1.
func Step[T Float](edge, x T) T {
	if x < edge {
		return 0
	}
	return 1
}

// SmoothStep returns a smooth Hermite interpolation between 0 and 1 as x
// varies from e0 to e1: t*t*(3-2t) where t = Clamp((x-e0)/(e1-e0),0,1).
// Undefined (unspecified result) when e0 >= e1.
func SmoothStep[T Float](e0, e1, x T) T {
	t := Clamp((x-e0)/(e1-e0), T(0), T(1))
	return t * t * (3 - 2*t)
}

// IsNaN reports whether x is an IEEE-754 "not-a-number" value.
func IsNaN[T Float](x T) bool { return math.IsNaN(float64(x)) }

// IsInf reports whether x is an infinity (positive or negative).
func IsInf[T Float](x T) bool { return math.IsInf(float64(x), 0) }

// FMA returns a*b+c, computed with a single rounding step when the
// platform supports fused multiply-add.
func FMA[T Float](a, b, c T) T { return T(math.FMA(float64(a), float64(b), float64(c))) }

// FrExp breaks x into a normalized fraction in [0.5,1) and an integer
// power of two exponent, such that x = frac * 2^exp. Undefined when x is
// ±Inf or NaN.
func FrExp[T Float](x T) (frac T, exp int) {
	f, e := math.Frexp(float64(x))
	return T(f), e
}

// LdExp returns x * 2^exp. Undefined when x is ±Inf or NaN.
func LdExp[T Float](x T, exp int) T { return T(math.Ldexp(float64(x), exp)) }

// IsPowerOfTwo reports whether the absolute value of x is a power of
// two (x != 0 && (x & (x-1)) == 0 after taking the absolute value).
func IsPowerOfTwo[T Integer](x T) bool {
	if x < 0 {
		x = -x
	}
	return x != 0 && x&(x-1) == 0
}

// IsOdd reports whether the absolute value of x is odd.
func IsOdd[T Integer](x T) bool {
	if x < 0 {
		x = -x
	}
	return x&1 != 0
}
