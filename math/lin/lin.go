// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides a generic linear math library that includes
// vectors, matrices, quaternions and a large suite of component-wise
// scalar functions. Linear math operations are useful in 3D applications
// for describing and transforming virtual objects as well as simulating
// physics.
//
// Package lin is provided as part of the glm (generic linear math) module.
package lin

// Design Notes:
//
// 1) This is a CPU based 3D math library intended for real-time graphics
//    and simulation code. Every aggregate (Vec2/Vec3/Vec4/Mat3/Mat4/Quat)
//    is a small, fixed-size value type; every operation is a pure
//    function that takes its inputs by value and returns a new value.
//    There is no shared mutable state and no interior pointers, so
//    concurrent callers never need to synchronize on shared inputs.
//
// 2) Go has no const-generic (value) type parameters, so the Vec<N,T>/
//    Mat<N,N,T> families are realized as one concrete generic type per
//    arity (Vec2[T], Vec3[T], Vec4[T], Mat3[T], Mat4[T]) rather than a
//    single type parameterized over both N and T. See DESIGN.md for the
//    rationale.
//
// 3) Wikipedia states: "In linear algebra, real numbers are called
//    scalars...". Element type T is any of the fixed-width integer types
//    or the two IEEE-754 floating point types; individual operations
//    further constrain T (e.g. trigonometry requires floating point).

import "math"

// Float is the set of IEEE-754 floating point element types.
type Float interface {
	~float32 | ~float64
}

// Unsigned is the set of unsigned fixed-width integer element types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the set of signed fixed-width integer and floating point
// element types, i.e. those supporting negation, Abs and Sign.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | Float
}

// Integer is the set of fixed-width integer element types, signed or not.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | Unsigned
}

// Number is every scalar element type a Vec/Mat may be built over: the
// fixed-width integers and the IEEE-754 floating point types.
type Number interface {
	Integer | Float
}

const (
	epsilon32 = 1.1920929e-07
	epsilon64 = 2.220446049250313e-16
)

// Epsilon returns the machine epsilon of the given floating point type,
// i.e. the smallest e representable in T such that 1+e != 1.
func Epsilon[T Float]() T {
	var zero T
	if any(zero) == any(float32(0)) {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// Compile-time constants shared by the trigonometric and exponential
// primitives, given to float64 precision and narrowed by the generic
// constant functions below.
const (
	piConst             = math.Pi
	tauConst            = math.Pi * 2
	halfPiConst         = math.Pi * 0.5
	quarterPiConst      = math.Pi * 0.25
	threeOverTwoPiConst = 3 * math.Pi / 2
	oneOverPiConst      = 1 / math.Pi
	oneOverTwoPiConst   = 1 / (2 * math.Pi)
	twoOverPiConst      = 2 / math.Pi
	fourOverPiConst     = 4 / math.Pi
	rootPiConst         = 1.7724538509055159
	twoOverRootPiConst  = 2 / rootPiConst
	rootTwoConst        = math.Sqrt2
	oneOverRootTwoConst = 1 / rootTwoConst
	rootHalfPiConst     = 1.2533141373155003
	rootTwoPiConst      = 2.5066282746310002
	rootLnFourConst     = 1.1774100226701388
	eConst              = math.E
	eulerConst          = 0.5772156649015329
	rootThreeConst      = 1.7320508075688772
	rootFiveConst       = 2.23606797749979
	lnTwoConst          = math.Ln2
	lnTenConst          = 2.302585092994046
	lnLnTwoConst        = -0.3665129205816644
	thirdConst          = 1.0 / 3.0
	twoThirdsConst      = 2.0 / 3.0
	goldenRatioConst    = 1.618033988749895
	cosOneOverTwoConst  = 0.8775825618903728 // cos(0.5)
)

// PI returns the ratio of a circle's circumference to its diameter.
func PI[T Float]() T { return T(piConst) }

// TAU returns 2*PI.
func TAU[T Float]() T { return T(tauConst) }

// TwoPI is a synonym for TAU.
func TwoPI[T Float]() T { return T(tauConst) }

// HalfPI returns PI/2.
func HalfPI[T Float]() T { return T(halfPiConst) }

// QuarterPI returns PI/4.
func QuarterPI[T Float]() T { return T(quarterPiConst) }

// ThreeOverTwoPI returns 3*PI/2.
func ThreeOverTwoPI[T Float]() T { return T(threeOverTwoPiConst) }

// OneOverPI returns 1/PI.
func OneOverPI[T Float]() T { return T(oneOverPiConst) }

// OneOverTwoPI returns 1/(2*PI).
func OneOverTwoPI[T Float]() T { return T(oneOverTwoPiConst) }

// TwoOverPI returns 2/PI.
func TwoOverPI[T Float]() T { return T(twoOverPiConst) }

// FourOverPI returns 4/PI.
func FourOverPI[T Float]() T { return T(fourOverPiConst) }

// TwoOverRootPI returns 2/sqrt(PI).
func TwoOverRootPI[T Float]() T { return T(twoOverRootPiConst) }

// OneOverRootTwo returns 1/sqrt(2).
func OneOverRootTwo[T Float]() T { return T(oneOverRootTwoConst) }

// RootHalfPI returns sqrt(PI/2).
func RootHalfPI[T Float]() T { return T(rootHalfPiConst) }

// RootTwoPI returns sqrt(2*PI).
func RootTwoPI[T Float]() T { return T(rootTwoPiConst) }

// RootPI returns sqrt(PI).
func RootPI[T Float]() T { return T(rootPiConst) }

// RootLnFour returns sqrt(ln(4)).
func RootLnFour[T Float]() T { return T(rootLnFourConst) }

// E returns Euler's number.
func E[T Float]() T { return T(eConst) }

// Euler returns the Euler-Mascheroni constant.
func Euler[T Float]() T { return T(eulerConst) }

// RootTwo returns sqrt(2).
func RootTwo[T Float]() T { return T(rootTwoConst) }

// RootThree returns sqrt(3).
func RootThree[T Float]() T { return T(rootThreeConst) }

// RootFive returns sqrt(5).
func RootFive[T Float]() T { return T(rootFiveConst) }

// LnTwo returns ln(2).
func LnTwo[T Float]() T { return T(lnTwoConst) }

// LnTen returns ln(10).
func LnTen[T Float]() T { return T(lnTenConst) }

// LnLnTwo returns ln(ln(2)).
func LnLnTwo[T Float]() T { return T(lnLnTwoConst) }

// Third returns 1/3.
func Third[T Float]() T { return T(thirdConst) }

// TwoThirds returns 2/3.
func TwoThirds[T Float]() T { return T(twoThirdsConst) }

// GoldenRatio returns (1+sqrt(5))/2.
func GoldenRatio[T Float]() T { return T(goldenRatioConst) }

// CosOneOverTwo returns cos(0.5), used by Pow and Angle.
func CosOneOverTwo[T Float]() T { return T(cosOneOverTwoConst) }

// tinyEpsilon is the fixed float64 tolerance used by Aeq and AeqZ,
// independent of the caller's element type T.
const tinyEpsilon = 0.000001

// Aeq (~=) almost-equals returns true if the difference between a and b
// is so small that it doesn't matter. Useful where a direct float64
// comparison is unlikely to return true due to rounding.
func Aeq(a, b float64) bool { return math.Abs(a-b) < tinyEpsilon }

// AeqZ (~=) almost equals zero.
func AeqZ(a float64) bool { return math.Abs(a) < tinyEpsilon }
