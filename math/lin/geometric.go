// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Geometric vector functions: Length, Distance, Dot, Normalize, Cross,
// FaceForward, Reflect, Refract, and the Plane basis helper. Grounded on
// the reference library's V3/V4 Dot/Len/Dist/Cross/Unit methods
// (vector.go) but implemented as free functions returning new values,
// under a purely functional contract.

// Dot returns the dot product of v and a: the sum of the products of
// their corresponding components.
func Dot2[T Number](v, a Vec2[T]) T { return v.X*a.X + v.Y*a.Y }
func Dot3[T Number](v, a Vec3[T]) T { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }
func Dot4[T Number](v, a Vec4[T]) T { return v.X*a.X + v.Y*a.Y + v.Z*a.Z + v.W*a.W }

// Length returns the Euclidean length of v: Sqrt(Dot(v,v)).
func Length2[T Float](v Vec2[T]) T { return Sqrt(Dot2(v, v)) }
func Length3[T Float](v Vec3[T]) T { return Sqrt(Dot3(v, v)) }
func Length4[T Float](v Vec4[T]) T { return Sqrt(Dot4(v, v)) }

// Distance returns the Euclidean distance between points a and b:
// Length(a-b).
func Distance2[T Float](a, b Vec2[T]) T { return Length2(a.Sub(b)) }
func Distance3[T Float](a, b Vec3[T]) T { return Length3(a.Sub(b)) }
func Distance4[T Float](a, b Vec4[T]) T { return Length4(a.Sub(b)) }

// Normalize returns v scaled to unit length: v * InverseSqrt(Dot(v,v)).
// For a zero-length input the result's components are NaN (division by
// zero); callers needing a safe version must guard the zero case
// themselves. Quat.Normalize takes the opposite, safer stance for
// degenerate rotations; see its doc comment.
func Normalize2[T Float](v Vec2[T]) Vec2[T] { return v.Scale(InverseSqrt(Dot2(v, v))) }
func Normalize3[T Float](v Vec3[T]) Vec3[T] { return v.Scale(InverseSqrt(Dot3(v, v))) }
func Normalize4[T Float](v Vec4[T]) Vec4[T] { return v.Scale(InverseSqrt(Dot4(v, v))) }

// Cross returns the 3D cross product of a and b: a vector perpendicular
// to both inputs, following the right-hand rule.
func Cross3[T Number](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Cross2 returns the 2D scalar pseudo-cross product of a and b
// (a.X*b.Y - a.Y*b.X), broadcast to both components of the result.
func Cross2[T Number](a, b Vec2[T]) Vec2[T] {
	c := a.X*b.Y - a.Y*b.X
	return Vec2[T]{c, c}
}

// FaceForward returns n oriented to face the same direction as the
// viewer reference nref relative to the incident vector i:
// Dot(nref,i) < 0 ? n : -n.
func FaceForward3[T Float](n, i, nref Vec3[T]) Vec3[T] {
	if Dot3(nref, i) < 0 {
		return n
	}
	return n.Neg()
}

// Reflect returns the reflection direction of incident vector i off a
// surface with (unit) normal n: i - 2*Dot(n,i)*n.
func Reflect3[T Float](i, n Vec3[T]) Vec3[T] {
	return i.Sub(n.Scale(2 * Dot3(n, i)))
}

// Refract returns the refraction direction of incident vector i through
// a surface with (unit) normal n and ratio of indices of refraction eta.
// Returns the zero vector on total internal reflection.
func Refract3[T Float](i, n Vec3[T], eta T) Vec3[T] {
	d := Dot3(n, i)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vec3[T]{}
	}
	return i.Scale(eta).Sub(n.Scale(eta*d + Sqrt(k)))
}

// Plane generates two vectors p and q perpendicular to unit vector v,
// together forming an orthonormal basis (v, p, q), following the
// largest-component case split from Bullet physics'
// btVector3::btPlaneSpace1.
func Plane3[T Float](v Vec3[T]) (p, q Vec3[T]) {
	rootOneHalf := T(0.70710678118654752440)
	if Abs(v.Z) > rootOneHalf {
		a := v.Y*v.Y + v.Z*v.Z
		k := InverseSqrt(a)
		p = Vec3[T]{0, -v.Z * k, v.Y * k}
		q = Vec3[T]{a * k, -v.X * p.Z, v.X * p.Y}
		return p, q
	}
	a := v.X*v.X + v.Y*v.Y
	k := InverseSqrt(a)
	p = Vec3[T]{-v.Y * k, v.X * k, 0}
	q = Vec3[T]{-v.Z * p.Y, v.Z * p.X, a * k}
	return p, q
}
