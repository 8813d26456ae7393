// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Quaternion deals with quaternion math specifically for linear algebra
// rotations. For a nice explanation of quaternions see
// http://3dgep.com/?p=1815
//
// Covers the Hamilton product, axis-angle conversion, matrix-to-
// quaternion trace/largest-diagonal selection, and Nlerp, generalized
// to any floating point element type with pure value receivers.

// Quat is a unit (or near-unit) quaternion: X,Y,Z is the vector part,
// W is the scalar part. A unit quaternion represents a 3D rotation.
type Quat[T Float] struct {
	X, Y, Z, W T
}

// QuatIdentity returns the identity quaternion (no rotation).
func QuatIdentity[T Float]() Quat[T] { return Quat[T]{0, 0, 0, 1} }

// QuatOf builds a quaternion from its four components directly.
func QuatOf[T Float](x, y, z, w T) Quat[T] { return Quat[T]{x, y, z, w} }

// Vec returns the vector (imaginary) part of q.
func (q Quat[T]) Vec() Vec3[T] { return Vec3[T]{q.X, q.Y, q.Z} }

// Eq (==) returns true if every component of q equals the corresponding
// component of r.
func (q Quat[T]) Eq(r Quat[T]) bool {
	return q.X == r.X && q.Y == r.Y && q.Z == r.Z && q.W == r.W
}

// Add (+) returns the component-wise sum of q and r.
func (q Quat[T]) Add(r Quat[T]) Quat[T] {
	return Quat[T]{q.X + r.X, q.Y + r.Y, q.Z + r.Z, q.W + r.W}
}

// Sub (-) returns q minus r, component-wise.
func (q Quat[T]) Sub(r Quat[T]) Quat[T] {
	return Quat[T]{q.X - r.X, q.Y - r.Y, q.Z - r.Z, q.W - r.W}
}

// Neg (-) returns the negation of q.
func (q Quat[T]) Neg() Quat[T] { return Quat[T]{-q.X, -q.Y, -q.Z, -q.W} }

// Scale (*) returns q with every component multiplied by the scalar s.
func (q Quat[T]) Scale(s T) Quat[T] { return Quat[T]{q.X * s, q.Y * s, q.Z * s, q.W * s} }

// Dot returns the dot product of q and r.
func (q Quat[T]) Dot(r Quat[T]) T { return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W }

// Length returns the length of q.
func (q Quat[T]) Length() T { return Sqrt(q.Dot(q)) }

// Normalize returns q scaled to unit length. A zero-length q is
// returned unchanged, unlike Normalize3/4 which produce NaN: a
// degenerate rotation quaternion is best left as "no rotation" rather
// than propagating NaN through every subsequent transform.
func (q Quat[T]) Normalize() Quat[T] {
	l := q.Length()
	if l == 0 {
		return q
	}
	return q.Scale(1 / l)
}

// Conjugate returns the conjugate of q: the vector part negated.
func (q Quat[T]) Conjugate() Quat[T] { return Quat[T]{-q.X, -q.Y, -q.Z, q.W} }

// Inverse returns the inverse of q: Conjugate(q) scaled by 1/Dot(q,q).
// For a unit quaternion this equals Conjugate(q).
func (q Quat[T]) Inverse() Quat[T] { return q.Conjugate().Scale(1 / q.Dot(q)) }

// Mul (*) returns the Hamilton product q*r: applying rotation r first,
// then q.
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	return Quat[T]{
		q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Rotate returns v rotated by unit quaternion q, the vector part of
// q*v*Conjugate(q), computed via the identity
// v + 2w(q.xyz x v) + 2(q.xyz x (q.xyz x v)).
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	qv := q.Vec()
	uv := Cross3(qv, v)
	uuv := Cross3(qv, uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// Angle returns the rotation angle, in radians, represented by q. Near
// the identity rotation, where W dominates and ACos loses precision,
// the angle is derived from the vector part instead.
func (q Quat[T]) Angle() T {
	if Abs(q.W) > CosOneOverTwo[T]() {
		return 2 * ASin(Sqrt(q.X*q.X+q.Y*q.Y+q.Z*q.Z))
	}
	return 2 * ACos(q.W)
}

// Axis returns the normalized rotation axis represented by q. The
// result is (0,0,1) when q represents no rotation (zero-length axis).
func (q Quat[T]) Axis() Vec3[T] {
	sinSqr := 1 - q.W*q.W
	if sinSqr <= 0 {
		return Vec3[T]{0, 0, 1}
	}
	s := InverseSqrt(sinSqr)
	return Vec3[T]{q.X * s, q.Y * s, q.Z * s}
}

// QuatAngleAxis returns the unit quaternion representing a rotation of
// ang radians about axis (which need not be normalized).
func QuatAngleAxis[T Float](ang T, axis Vec3[T]) Quat[T] {
	lenSqr := Dot3(axis, axis)
	if lenSqr == 0 {
		return QuatIdentity[T]()
	}
	s := Sin(ang*0.5) / Sqrt(lenSqr)
	return Quat[T]{axis.X * s, axis.Y * s, axis.Z * s, Cos(ang * 0.5)}
}

// Mix returns the spherical interpolation between q and r by a,
// without correcting for the sign ambiguity between r and -r: falls
// back to plain linear interpolation when q and r are nearly parallel,
// where the spherical formula is numerically unstable.
func (q Quat[T]) Mix(r Quat[T], a T) Quat[T] {
	cosTheta := q.Dot(r)
	if cosTheta > 1-Epsilon[T]() {
		return Quat[T]{
			Mix(q.X, r.X, a), Mix(q.Y, r.Y, a), Mix(q.Z, r.Z, a), Mix(q.W, r.W, a),
		}
	}
	theta := ACos(cosTheta)
	sinTheta := Sin(theta)
	s0 := Sin((1 - a) * theta) / sinTheta
	s1 := Sin(a*theta) / sinTheta
	return q.Scale(s0).Add(r.Scale(s1))
}

// Lerp is the plain component-wise linear interpolation of q and r by
// a, restricted by contract to a in [0,1].
func (q Quat[T]) Lerp(r Quat[T], a T) Quat[T] {
	return Quat[T]{
		Mix(q.X, r.X, a), Mix(q.Y, r.Y, a), Mix(q.Z, r.Z, a), Mix(q.W, r.W, a),
	}
}

// Nlerp returns the normalized linear interpolation between q and r,
// choosing the shorter of the two rotational paths (flipping the sign
// of r when q.Dot(r) < 0).
func (q Quat[T]) Nlerp(r Quat[T], a T) Quat[T] {
	if q.Dot(r) < 0 {
		r = r.Neg()
	}
	return q.Lerp(r, a).Normalize()
}

// Slerp returns the spherical linear interpolation between q and r at
// a in [0,1], following the shorter rotational path. Falls back to
// plain linear interpolation when q and r are nearly parallel, where
// the Slerp formula is numerically unstable.
func (q Quat[T]) Slerp(r Quat[T], a T) Quat[T] {
	cosTheta := q.Dot(r)
	if cosTheta < 0 {
		r = r.Neg()
		cosTheta = -cosTheta
	}
	if cosTheta > 1-Epsilon[T]() {
		return q.Lerp(r, a)
	}
	theta := ACos(cosTheta)
	sinTheta := Sin(theta)
	s0 := Sin((1 - a) * theta) / sinTheta
	s1 := Sin(a*theta) / sinTheta
	return q.Scale(s0).Add(r.Scale(s1))
}

// Exp returns the quaternion exponential of q.
func (q Quat[T]) Exp() Quat[T] {
	vlen := Length3(q.Vec())
	if vlen <= Epsilon[T]() {
		return Quat[T]{0, 0, 0, Exp(q.W)}
	}
	expW := Exp(q.W)
	s := expW * Sin(vlen) / vlen
	v := q.Vec().Scale(s)
	return Quat[T]{v.X, v.Y, v.Z, expW * Cos(vlen)}
}

// Log returns the quaternion natural logarithm of q.
func (q Quat[T]) Log() Quat[T] {
	vlen := Length3(q.Vec())
	qlen := q.Length()
	if vlen <= Epsilon[T]()*qlen {
		if q.W > 0 {
			return Quat[T]{0, 0, 0, Log(qlen)}
		}
		return Quat[T]{PI[T](), 0, 0, Log(qlen)}
	}
	theta := ATan2(vlen, q.W)
	s := theta / vlen
	v := q.Vec().Scale(s)
	return Quat[T]{v.X, v.Y, v.Z, Log(qlen)}
}

// Pow returns q raised to the real power y: Exp(Log(q).Scale(y)).
func (q Quat[T]) Pow(y T) Quat[T] { return q.Log().Scale(y).Exp() }

// Sqrt returns the principal square root of q.
func (q Quat[T]) Sqrt() Quat[T] { return q.Pow(0.5) }

// Pitch returns the pitch (rotation about X) Euler angle, in radians,
// represented by q.
func (q Quat[T]) Pitch() T {
	y := 2 * (q.Y*q.Z + q.W*q.X)
	x := q.W*q.W - q.X*q.X - q.Y*q.Y + q.Z*q.Z
	if x == 0 && y == 0 {
		return 2 * ATan2(q.X, q.W)
	}
	return ATan2(y, x)
}

// Yaw returns the yaw (rotation about Y) Euler angle, in radians,
// represented by q.
func (q Quat[T]) Yaw() T {
	return ASin(Clamp(-2*(q.X*q.Z-q.W*q.Y), T(-1), T(1)))
}

// Roll returns the roll (rotation about Z) Euler angle, in radians,
// represented by q.
func (q Quat[T]) Roll() T {
	y := 2 * (q.X*q.Y + q.W*q.Z)
	x := q.W*q.W + q.X*q.X - q.Y*q.Y - q.Z*q.Z
	return ATan2(y, x)
}

// EulerAngles returns the pitch, yaw and roll Euler angles, in
// radians, represented by q.
func (q Quat[T]) EulerAngles() (pitch, yaw, roll T) {
	return q.Pitch(), q.Yaw(), q.Roll()
}

// QuatFromEuler builds a unit quaternion from pitch (X), yaw (Y) and
// roll (Z) Euler angles in radians, applied in that order.
func QuatFromEuler[T Float](pitch, yaw, roll T) Quat[T] {
	hp, hy, hr := pitch*0.5, yaw*0.5, roll*0.5
	cp, sp := Cos(hp), Sin(hp)
	cy, sy := Cos(hy), Sin(hy)
	cr, sr := Cos(hr), Sin(hr)
	return Quat[T]{
		sp*cy*cr - cp*sy*sr,
		cp*sy*cr + sp*cy*sr,
		cp*cy*sr - sp*sy*cr,
		cp*cy*cr + sp*sy*sr,
	}
}

// QuatFromTo returns the unit quaternion rotating unit vector from to
// unit vector to, via the half-way vector construction (avoids the
// trigonometric calls an axis-angle derivation would need).
func QuatFromTo[T Float](from, to Vec3[T]) Quat[T] {
	d := Dot3(from, to)
	if d > 1-Epsilon[T]() {
		return QuatIdentity[T]()
	}
	if d < -1+Epsilon[T]() {
		p, _ := Plane3(from)
		return QuatAngleAxis(PI[T](), p)
	}
	axis := Cross3(from, to)
	s := Sqrt((1 + d) * 2)
	invs := 1 / s
	return Quat[T]{axis.X * invs, axis.Y * invs, axis.Z * invs, s * 0.5}
}

// Mat3Cast returns the 3x3 rotation matrix represented by unit
// quaternion q.
func (q Quat[T]) Mat3Cast() Mat3[T] {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	one := T(1)
	return Mat3[T]{
		Vec3[T]{one - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy)},
		Vec3[T]{2 * (xy - wz), one - 2*(xx+zz), 2 * (yz + wx)},
		Vec3[T]{2 * (xz + wy), 2 * (yz - wx), one - 2*(xx+yy)},
	}
}

// Mat4Cast returns the 4x4 rotation matrix represented by unit
// quaternion q, with zero translation.
func (q Quat[T]) Mat4Cast() Mat4[T] { return Mat4FromMat3(q.Mat3Cast()) }

// QuaternionCast returns the unit quaternion represented by the upper-
// left 3x3 rotation submatrix of m, selecting whichever of the four
// trace/diagonal-term branches is best conditioned for m's values.
func QuaternionCast[T Float](m Mat3[T]) Quat[T] {
	trace := m.Col0.X + m.Col1.Y + m.Col2.Z
	var q Quat[T]
	switch {
	case trace > 0:
		s := Sqrt(trace+1) * 2
		q.W = 0.25 * s
		q.X = (m.Col1.Z - m.Col2.Y) / s
		q.Y = (m.Col2.X - m.Col0.Z) / s
		q.Z = (m.Col0.Y - m.Col1.X) / s
	case m.Col0.X > m.Col1.Y && m.Col0.X > m.Col2.Z:
		s := Sqrt(m.Col0.X-m.Col1.Y-m.Col2.Z+1) * 2
		q.W = (m.Col1.Z - m.Col2.Y) / s
		q.X = 0.25 * s
		q.Y = (m.Col1.X + m.Col0.Y) / s
		q.Z = (m.Col2.X + m.Col0.Z) / s
	case m.Col1.Y > m.Col2.Z:
		s := Sqrt(m.Col1.Y-m.Col0.X-m.Col2.Z+1) * 2
		q.W = (m.Col2.X - m.Col0.Z) / s
		q.X = (m.Col1.X + m.Col0.Y) / s
		q.Y = 0.25 * s
		q.Z = (m.Col2.Y + m.Col1.Z) / s
	default:
		s := Sqrt(m.Col2.Z-m.Col0.X-m.Col1.Y+1) * 2
		q.W = (m.Col0.Y - m.Col1.X) / s
		q.X = (m.Col2.X + m.Col0.Z) / s
		q.Y = (m.Col2.Y + m.Col1.Z) / s
		q.Z = 0.25 * s
	}
	return q
}
