// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Graphics construction functions for view, projection and model
// transforms, and the Transform type used to carry translation,
// rotation and scale without the redundancy of a full Mat4, over any
// floating point element type with pure value semantics.

// Translate returns the 4x4 matrix that translates by v.
func Translate[T Float](v Vec3[T]) Mat4[T] {
	m := Mat4Identity[T]()
	m.Col3 = Vec4From3(v, 1)
	return m
}

// Rotate returns the 4x4 matrix that rotates by ang radians about axis
// (which need not be normalized), via Rodrigues' rotation formula.
func Rotate[T Float](ang T, axis Vec3[T]) Mat4[T] {
	return Mat4FromMat3(Mat3FromAxisAngle(axis, ang))
}

// Scale3 returns the 4x4 matrix that scales independently along each
// axis by the components of v.
func Scale3[T Float](v Vec3[T]) Mat4[T] {
	return Mat4Diag(Vec4From3(v, 1))
}

// LookAt returns the view matrix for a right-handed camera positioned
// at eye, aimed at center, with the given up direction.
func LookAt[T Float](eye, center, up Vec3[T]) Mat4[T] {
	f := Normalize3(center.Sub(eye))
	s := Normalize3(Cross3(f, up))
	u := Cross3(s, f)
	return Mat4[T]{
		Vec4[T]{s.X, u.X, -f.X, 0},
		Vec4[T]{s.Y, u.Y, -f.Y, 0},
		Vec4[T]{s.Z, u.Z, -f.Z, 0},
		Vec4[T]{-Dot3(s, eye), -Dot3(u, eye), Dot3(f, eye), 1},
	}
}

// Orthographic returns the projection matrix for an orthographic
// (parallel) view volume with the given clipping planes, mapping depth
// to the Vulkan clip-space range [0,1] (near maps to 0, far to 1).
func Orthographic[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	return Mat4[T]{
		Vec4[T]{2 / (right - left), 0, 0, 0},
		Vec4[T]{0, 2 / (top - bottom), 0, 0},
		Vec4[T]{0, 0, 1 / (near - far), 0},
		Vec4[T]{
			-(right + left) / (right - left),
			-(top + bottom) / (top - bottom),
			near / (near - far),
			1,
		},
	}
}

// Frustum returns the perspective projection matrix for the view
// frustum with the given clipping planes, mapping depth to the Vulkan
// clip-space range [0,1].
func Frustum[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	two := T(2)
	return Mat4[T]{
		Vec4[T]{two * near / (right - left), 0, 0, 0},
		Vec4[T]{0, two * near / (top - bottom), 0, 0},
		Vec4[T]{
			(right + left) / (right - left),
			(top + bottom) / (top - bottom),
			far / (near - far),
			-1,
		},
		Vec4[T]{0, 0, far * near / (near - far), 0},
	}
}

// Perspective returns the perspective projection matrix for a
// vertical field of view fovy (radians), aspect ratio (width/height)
// and near/far clipping planes, mapping depth to the Vulkan clip-space
// range [0,1] (near maps to 0, far to 1).
func Perspective[T Float](fovy, aspect, near, far T) Mat4[T] {
	f := 1 / Tan(fovy*0.5)
	return Mat4[T]{
		Vec4[T]{f / aspect, 0, 0, 0},
		Vec4[T]{0, f, 0, 0},
		Vec4[T]{0, 0, far / (near - far), -1},
		Vec4[T]{0, 0, far * near / (near - far), 0},
	}
}

// PerspectiveReverseZ is Perspective with a reversed depth range,
// mapping near to 1 and far to 0 for improved floating point depth
// precision at distance.
func PerspectiveReverseZ[T Float](fovy, aspect, near, far T) Mat4[T] {
	f := 1 / Tan(fovy*0.5)
	return Mat4[T]{
		Vec4[T]{f / aspect, 0, 0, 0},
		Vec4[T]{0, f, 0, 0},
		Vec4[T]{0, 0, near / (far - near), -1},
		Vec4[T]{0, 0, far * near / (far - near), 0},
	}
}

// PerspectiveFoV returns the perspective projection matrix given an
// explicit field of view fov (radians) and viewport width/height,
// rather than a precomputed aspect ratio.
func PerspectiveFoV[T Float](fov, width, height, near, far T) Mat4[T] {
	h := Cos(fov*0.5) / Sin(fov*0.5)
	w := h * height / width
	return Mat4[T]{
		Vec4[T]{w, 0, 0, 0},
		Vec4[T]{0, h, 0, 0},
		Vec4[T]{0, 0, far / (near - far), -1},
		Vec4[T]{0, 0, far * near / (near - far), 0},
	}
}

// PerspectiveFoVReverseZ combines PerspectiveFoV's explicit fov/width/
// height parameterization with PerspectiveReverseZ's reversed depth
// range.
func PerspectiveFoVReverseZ[T Float](fov, width, height, near, far T) Mat4[T] {
	h := Cos(fov*0.5) / Sin(fov*0.5)
	w := h * height / width
	return Mat4[T]{
		Vec4[T]{w, 0, 0, 0},
		Vec4[T]{0, h, 0, 0},
		Vec4[T]{0, 0, near / (far - near), -1},
		Vec4[T]{0, 0, far * near / (far - near), 0},
	}
}

// InfinitePerspective returns the perspective projection matrix for a
// vertical field of view fovy, aspect ratio and near clipping plane
// with the far plane pushed to infinity (the far->infinity limit of
// Perspective's Vulkan clip-space range [0,1]).
func InfinitePerspective[T Float](fovy, aspect, near T) Mat4[T] {
	f := 1 / Tan(fovy*0.5)
	return Mat4[T]{
		Vec4[T]{f / aspect, 0, 0, 0},
		Vec4[T]{0, f, 0, 0},
		Vec4[T]{0, 0, -1, -1},
		Vec4[T]{0, 0, -near, 0},
	}
}

// InfinitePerspectiveReverseZ is InfinitePerspective with a reversed
// depth range (near maps to 1, infinity maps to 0).
func InfinitePerspectiveReverseZ[T Float](fovy, aspect, near T) Mat4[T] {
	f := 1 / Tan(fovy*0.5)
	return Mat4[T]{
		Vec4[T]{f / aspect, 0, 0, 0},
		Vec4[T]{0, f, 0, 0},
		Vec4[T]{0, 0, 0, -1},
		Vec4[T]{0, 0, near, 0},
	}
}

// Transform carries a translation, rotation and independent
// uniform/non-uniform scale without the redundancy of a full Mat4,
// used to represent and compose the model transform of a scene
// object.
type Transform[T Float] struct {
	Loc   Vec3[T]
	Rot   Quat[T]
	Scale Vec3[T]
}

// TransformIdentity returns the identity transform: no translation, no
// rotation, unit scale.
func TransformIdentity[T Float]() Transform[T] {
	return Transform[T]{Scale: Vec3Of(T(1)), Rot: QuatIdentity[T]()}
}

// Mat4 returns the composite model matrix Translate(t.Loc) *
// Rotate(t.Rot) * Scale(t.Scale) represented by t.
func (t Transform[T]) Mat4() Mat4[T] {
	m := t.Rot.Mat4Cast()
	m.Col0 = m.Col0.Scale(t.Scale.X)
	m.Col1 = m.Col1.Scale(t.Scale.Y)
	m.Col2 = m.Col2.Scale(t.Scale.Z)
	m.Col3 = Vec4From3(t.Loc, 1)
	return m
}

// Apply transforms point v by t: scale, rotate, then translate.
func (t Transform[T]) Apply(v Vec3[T]) Vec3[T] {
	return t.Rot.Rotate(v.Mul(t.Scale)).Add(t.Loc)
}

// Mul returns the composite transform representing "apply a, then t",
// computed directly on the translation/rotation/scale components: the
// rotations are multiplied and the scales multiplied component-wise.
// This equals t.Mat4().Mul(a.Mat4()) when t.Scale is uniform or a.Rot is
// the identity; otherwise the matrix product contains a shear that a
// Transform cannot hold, and the result differs from it.
func (t Transform[T]) Mul(a Transform[T]) Transform[T] {
	return Transform[T]{
		Loc:   t.Rot.Rotate(a.Loc.Mul(t.Scale)).Add(t.Loc),
		Rot:   t.Rot.Mul(a.Rot),
		Scale: t.Scale.Mul(a.Scale),
	}
}

// Decompose extracts a translation, rotation and scale Transform from
// an affine Mat4 (no projective or shear component), reporting ok=false
// when m has no valid affine part (m.Col3.W is effectively zero). The
// sign of a negative scale is folded entirely into the X column.
func Decompose[T Float](m Mat4[T]) (t Transform[T], ok bool) {
	if Abs(m.Col3.W) <= Epsilon[T]() {
		return Transform[T]{}, false
	}
	c0, c1, c2 := Vec3From4(m.Col0), Vec3From4(m.Col1), Vec3From4(m.Col2)
	sx, sy, sz := Length3(c0), Length3(c1), Length3(c2)
	rot3 := Mat3[T]{c0.Scale(1 / sx), c1.Scale(1 / sy), c2.Scale(1 / sz)}
	if rot3.Determinant() < 0 {
		sx = -sx
		rot3.Col0 = rot3.Col0.Neg()
	}
	return Transform[T]{
		Loc:   Vec3From4(m.Col3).Scale(1 / m.Col3.W),
		Rot:   QuaternionCast(rot3),
		Scale: Vec3[T]{sx, sy, sz},
	}, true
}

// Recompose is the inverse of Decompose: it returns the Mat4
// represented by t. Alias of Transform.Mat4 provided so call sites can
// read "Decompose(m)" / "Recompose(t)" symmetrically.
func Recompose[T Float](t Transform[T]) Mat4[T] { return t.Mat4() }
