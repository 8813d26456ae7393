// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestTranslate(t *testing.T) {
	m := Translate(Vec3[float64]{1, 2, 3})
	got := m.MulVec(Vec4[float64]{0, 0, 0, 1})
	want := Vec4[float64]{1, 2, 3, 1}
	if got != want {
		t.Errorf("Translate.MulVec(origin) = %v, want %v", got, want)
	}
}

func TestScale3(t *testing.T) {
	m := Scale3(Vec3[float64]{2, 3, 4})
	got := m.MulVec(Vec4[float64]{1, 1, 1, 1})
	want := Vec4[float64]{2, 3, 4, 1}
	if got != want {
		t.Errorf("Scale3.MulVec = %v, want %v", got, want)
	}
}

func TestRotateMatchesQuatAngleAxis(t *testing.T) {
	m := Rotate(HalfPI[float64](), Vec3[float64]{0, 0, 1})
	got := Vec3From4(m.MulVec(Vec4[float64]{1, 0, 0, 0}))
	want := Vec3[float64]{0, 1, 0}
	if !Aeq(got.X, want.X) || !Aeq(got.Y, want.Y) || !Aeq(got.Z, want.Z) {
		t.Errorf("Rotate 90 about Z of X axis = %v, want %v", got, want)
	}
	qv := QuatAngleAxis(HalfPI[float64](), Vec3[float64]{0, 0, 1}).Rotate(Vec3[float64]{1, 0, 0})
	if !Aeq(got.X, qv.X) || !Aeq(got.Y, qv.Y) || !Aeq(got.Z, qv.Z) {
		t.Errorf("Rotate 90 about Z of X axis = %v, QuatAngleAxis rotation = %v", got, qv)
	}
}

func TestLookAtIdentity(t *testing.T) {
	// Looking down -Z from the origin with +Y up is the canonical
	// orientation: the view matrix should be the identity (no
	// translation component needed since eye is at the origin).
	m := LookAt(Vec3[float64]{0, 0, 0}, Vec3[float64]{0, 0, -1}, Vec3[float64]{0, 1, 0})
	id := Mat4Identity[float64]()
	if !EqualEpsMat4(m, id, 1e-9).All() {
		t.Errorf("LookAt canonical orientation = %+v, want identity", m)
	}
}

func TestLookAtOffset(t *testing.T) {
	eye := Vec3[float64]{-1, 1, 1}
	center := Vec3[float64]{1, -1, -1}
	up := Vec3[float64]{0, 1, 0}
	m := LookAt(eye, center, up)
	// The eye point itself must map to the view-space origin.
	got := Vec3From4(m.MulVec(Vec4From3(eye, 1)))
	if !Aeq(got.X, 0) || !Aeq(got.Y, 0) || !Aeq(got.Z, 0) {
		t.Errorf("LookAt(eye) should map eye to the origin, got %v", got)
	}
}

func TestOrthographicMapsNearFarToZeroOne(t *testing.T) {
	m := Orthographic(-1.0, 1.0, -1.0, 1.0, 0.1, 100.0)
	near := Vec3From4(m.MulVec(Vec4[float64]{0, 0, -0.1, 1}))
	far := Vec3From4(m.MulVec(Vec4[float64]{0, 0, -100, 1}))
	if !Aeq(near.Z, 0) {
		t.Errorf("Orthographic: near plane should map to depth 0, got %v", near.Z)
	}
	if !Aeq(far.Z, 1) {
		t.Errorf("Orthographic: far plane should map to depth 1, got %v", far.Z)
	}
}

func TestPerspectiveMapsNearFarToZeroOne(t *testing.T) {
	m := Perspective(QuarterPI[float64](), 1.0, 0.1, 100.0)
	near := m.MulVec(Vec4[float64]{0, 0, -0.1, 1})
	far := m.MulVec(Vec4[float64]{0, 0, -100, 1})
	if !Aeq(near.Z/near.W, 0) {
		t.Errorf("Perspective: near plane NDC depth = %v, want 0", near.Z/near.W)
	}
	if !Aeq(far.Z/far.W, 1) {
		t.Errorf("Perspective: far plane NDC depth = %v, want 1", far.Z/far.W)
	}
}

func TestPerspectiveReverseZMapsNearFarToOneZero(t *testing.T) {
	m := PerspectiveReverseZ(QuarterPI[float64](), 1.0, 0.1, 100.0)
	near := m.MulVec(Vec4[float64]{0, 0, -0.1, 1})
	far := m.MulVec(Vec4[float64]{0, 0, -100, 1})
	if !Aeq(near.Z/near.W, 1) {
		t.Errorf("PerspectiveReverseZ: near plane NDC depth = %v, want 1", near.Z/near.W)
	}
	if !Aeq(far.Z/far.W, 0) {
		t.Errorf("PerspectiveReverseZ: far plane NDC depth = %v, want 0", far.Z/far.W)
	}
}

func TestInfinitePerspectiveLimitsPerspective(t *testing.T) {
	fin := Perspective(QuarterPI[float64](), 1.0, 0.1, 1e8)
	inf := InfinitePerspective(QuarterPI[float64](), 1.0, 0.1)
	if !EqualEpsMat4(fin, inf, 1e-6).All() {
		t.Errorf("InfinitePerspective should be the far->infinity limit of Perspective:\n%+v\nvs\n%+v", fin, inf)
	}
}

func TestTransformIdentity(t *testing.T) {
	id := TransformIdentity[float64]()
	v := Vec3[float64]{1, 2, 3}
	if got := id.Apply(v); got != v {
		t.Errorf("TransformIdentity.Apply(v) = %v, want %v", got, v)
	}
	if got := id.Mat4(); !got.Eq(Mat4Identity[float64]()) {
		t.Errorf("TransformIdentity.Mat4() = %+v, want identity", got)
	}
}

func TestDecomposeRecomposeRoundTrip(t *testing.T) {
	want := Transform[float64]{
		Loc:   Vec3[float64]{1, 2, 3},
		Rot:   QuatAngleAxis(0.6, Normalize3(Vec3[float64]{1, 1, 0})),
		Scale: Vec3[float64]{2, 3, 4},
	}
	m := Recompose(want)
	got, ok := Decompose(m)
	if !ok {
		t.Fatal("Decompose should succeed on a valid affine transform")
	}
	if !Aeq(got.Loc.X, want.Loc.X) || !Aeq(got.Loc.Y, want.Loc.Y) || !Aeq(got.Loc.Z, want.Loc.Z) {
		t.Errorf("Decompose Loc = %v, want %v", got.Loc, want.Loc)
	}
	if !Aeq(got.Scale.X, want.Scale.X) || !Aeq(got.Scale.Y, want.Scale.Y) || !Aeq(got.Scale.Z, want.Scale.Z) {
		t.Errorf("Decompose Scale = %v, want %v", got.Scale, want.Scale)
	}
	rot := got.Rot
	if rot.Dot(want.Rot) < 0 {
		rot = rot.Neg()
	}
	if !Aeq(rot.X, want.Rot.X) || !Aeq(rot.Y, want.Rot.Y) || !Aeq(rot.Z, want.Rot.Z) || !Aeq(rot.W, want.Rot.W) {
		t.Errorf("Decompose Rot = %+v, want %+v", got.Rot, want.Rot)
	}
}

func TestDecomposeFailsOnZeroW(t *testing.T) {
	m := Mat4Identity[float64]()
	m.Col3.W = 0
	_, ok := Decompose(m)
	if ok {
		t.Error("Decompose should report failure when m.Col3.W is zero")
	}
}

func TestTransformMulComposes(t *testing.T) {
	a := Transform[float64]{Loc: Vec3[float64]{1, 0, 0}, Rot: QuatIdentity[float64](), Scale: Vec3Of(1.0)}
	b := Transform[float64]{Loc: Vec3[float64]{0, 1, 0}, Rot: QuatIdentity[float64](), Scale: Vec3Of(1.0)}
	composed := a.Mul(b)
	v := Vec3[float64]{0, 0, 0}
	direct := a.Apply(b.Apply(v))
	got := composed.Apply(v)
	if !Aeq(got.X, direct.X) || !Aeq(got.Y, direct.Y) || !Aeq(got.Z, direct.Z) {
		t.Errorf("composed.Apply(v) = %v, want %v", got, direct)
	}
}
