// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Exponential scalar functions. All require floating point T and defer
// to the platform's IEEE-754 implementations, carrying through the
// standard domain-error conventions (NaN/±Inf) documented per function.

// Pow returns base raised to the exp power. Pow(x,0)==1 for every finite
// x including 0. Pow(0,positive)==0. Pow(0,negative)==+Inf.
func Pow[T Float](base, exp T) T { return T(math.Pow(float64(base), float64(exp))) }

// Exp returns e**x.
func Exp[T Float](x T) T { return T(math.Exp(float64(x))) }

// Log returns the natural logarithm of x. Log(0)=-Inf, Log(x<0)=NaN.
func Log[T Float](x T) T { return T(math.Log(float64(x))) }

// Exp2 returns 2**x.
func Exp2[T Float](x T) T { return T(math.Exp2(float64(x))) }

// Log2 returns the base-2 logarithm of x.
func Log2[T Float](x T) T { return T(math.Log2(float64(x))) }

// Sqrt returns the square root of x. Sqrt(x<0)=NaN.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// InverseSqrt returns 1/Sqrt(x). InverseSqrt(0)=+Inf, InverseSqrt(x<0)=NaN.
func InverseSqrt[T Float](x T) T { return 1 / Sqrt(x) }
