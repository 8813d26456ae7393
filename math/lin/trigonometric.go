// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Trigonometric scalar functions. All require floating point T and
// defer to the platform's IEEE-754 implementations.

// Radians converts an angle given in degrees to radians.
func Radians[T Float](deg T) T { return deg * T(piConst) / 180 }

// Degrees converts an angle given in radians to degrees.
func Degrees[T Float](rad T) T { return rad * 180 / T(piConst) }

// Sin returns the sine of x (in radians).
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of x (in radians).
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// Tan returns the tangent of x (in radians).
func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

// ASin returns the arcsine of x, in radians, in [-PI/2, PI/2].
// ASin(x) for |x|>1 is NaN. ASin(±1) = ±PI/2.
func ASin[T Float](x T) T { return T(math.Asin(float64(x))) }

// ACos returns the arccosine of x, in radians, in [0, PI].
// ACos(x) for |x|>1 is NaN. ACos(1)=0, ACos(-1)=PI.
func ACos[T Float](x T) T { return T(math.Acos(float64(x))) }

// ATan returns the arctangent of x, in radians, in [-PI/2, PI/2].
func ATan[T Float](x T) T { return T(math.Atan(float64(x))) }

// ATan2 returns the arctangent of y/x, using the signs of both to
// determine the correct quadrant, in [-PI, PI]. By this library's
// convention ATan2(0,0) is 0.
func ATan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// SinH returns the hyperbolic sine of x.
func SinH[T Float](x T) T { return T(math.Sinh(float64(x))) }

// CosH returns the hyperbolic cosine of x.
func CosH[T Float](x T) T { return T(math.Cosh(float64(x))) }

// TanH returns the hyperbolic tangent of x.
func TanH[T Float](x T) T { return T(math.Tanh(float64(x))) }

// ASinH returns the inverse hyperbolic sine of x.
func ASinH[T Float](x T) T { return T(math.Asinh(float64(x))) }

// ACosH returns the inverse hyperbolic cosine of x. Requires x>=1,
// else NaN.
func ACosH[T Float](x T) T { return T(math.Acosh(float64(x))) }

// ATanH returns the inverse hyperbolic tangent of x. Requires |x|<1;
// returns ±Inf at ±1 and NaN elsewhere outside [-1,1].
func ATanH[T Float](x T) T { return T(math.Atanh(float64(x))) }
