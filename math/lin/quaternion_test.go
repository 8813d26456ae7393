// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestQuatIdentityRotate(t *testing.T) {
	id := QuatIdentity[float64]()
	v := Vec3[float64]{1, 2, 3}
	if got := id.Rotate(v); got != v {
		t.Errorf("identity quaternion rotation = %v, want %v", got, v)
	}
}

func TestQuatAngleAxisRotate90(t *testing.T) {
	q := QuatAngleAxis(HalfPI[float64](), Vec3[float64]{0, 0, 1})
	got := q.Rotate(Vec3[float64]{1, 0, 0})
	want := Vec3[float64]{0, 1, 0}
	if !Aeq(got.X, want.X) || !Aeq(got.Y, want.Y) || !Aeq(got.Z, want.Z) {
		t.Errorf("90 degree Z rotation of X axis = %v, want %v", got, want)
	}
}

func TestQuatMulComposesRotations(t *testing.T) {
	qz := QuatAngleAxis(HalfPI[float64](), Vec3[float64]{0, 0, 1})
	composed := qz.Mul(qz)
	got := composed.Rotate(Vec3[float64]{1, 0, 0})
	want := Vec3[float64]{-1, 0, 0}
	if !Aeq(got.X, want.X) || !Aeq(got.Y, want.Y) || !Aeq(got.Z, want.Z) {
		t.Errorf("two 90 degree Z rotations of X axis = %v, want %v", got, want)
	}
}

func TestQuatConjugateInverse(t *testing.T) {
	q := QuatAngleAxis(0.7, Normalize3(Vec3[float64]{1, 2, 3}))
	inv := q.Inverse()
	got := q.Mul(inv)
	id := QuatIdentity[float64]()
	if !Aeq(got.X, id.X) || !Aeq(got.Y, id.Y) || !Aeq(got.Z, id.Z) || !Aeq(got.W, id.W) {
		t.Errorf("q*Inverse(q) = %+v, want identity", got)
	}
}

func TestQuatNormalizeZeroUnchanged(t *testing.T) {
	var z Quat[float64]
	got := z.Normalize()
	if got != z {
		t.Errorf("Normalize of the zero quaternion should return it unchanged, got %+v", got)
	}
}

func TestQuatAngleAxisRoundTrip(t *testing.T) {
	axis := Normalize3(Vec3[float64]{1, 1, 0})
	ang := 1.2
	q := QuatAngleAxis(ang, axis)
	if !Aeq(q.Angle(), ang) {
		t.Errorf("Angle() = %v, want %v", q.Angle(), ang)
	}
	gotAxis := q.Axis()
	if !Aeq(gotAxis.X, axis.X) || !Aeq(gotAxis.Y, axis.Y) || !Aeq(gotAxis.Z, axis.Z) {
		t.Errorf("Axis() = %v, want %v", gotAxis, axis)
	}
}

func TestQuatNlerpEndpoints(t *testing.T) {
	a := QuatIdentity[float64]()
	b := QuatAngleAxis(HalfPI[float64](), Vec3[float64]{0, 1, 0})
	if got := a.Nlerp(b, 0); !Aeq(got.W, a.W) {
		t.Errorf("Nlerp at a=0 should be close to a, got %+v", got)
	}
	mid := a.Nlerp(b, 0.5)
	if !Aeq(mid.Length(), 1) {
		t.Errorf("Nlerp result should be unit length, got length %v", mid.Length())
	}
}

func TestQuatSlerpEndpoints(t *testing.T) {
	a := QuatIdentity[float64]()
	b := QuatAngleAxis(QuarterPI[float64](), Vec3[float64]{0, 1, 0})
	if got := a.Slerp(b, 0); !Aeq(got.W, a.W) || !Aeq(got.Y, a.Y) {
		t.Errorf("Slerp at a=0 should equal a, got %+v", got)
	}
	if got := a.Slerp(b, 1); !Aeq(got.W, b.W) || !Aeq(got.Y, b.Y) {
		t.Errorf("Slerp at a=1 should equal b, got %+v", got)
	}
}

func TestQuatSlerpFlipsShortestPath(t *testing.T) {
	a := QuatIdentity[float64]()
	b := QuatAngleAxis(HalfPI[float64](), Vec3[float64]{0, 1, 0}).Neg()
	mid := a.Slerp(b, 0.5)
	if !Aeq(mid.Length(), 1) {
		t.Errorf("Slerp result should be unit length, got %v", mid.Length())
	}
	short := a.Slerp(b.Neg(), 0.5)
	if !Aeq(mid.X, short.X) || !Aeq(mid.Y, short.Y) || !Aeq(mid.Z, short.Z) || !Aeq(mid.W, short.W) {
		t.Errorf("Slerp(a,b,0.5) = %+v, want the shortest-path result %+v", mid, short)
	}
}

func TestQuatMixIsSphericalNotLinear(t *testing.T) {
	a := QuatIdentity[float64]()
	b := QuatAngleAxis(HalfPI[float64](), Vec3[float64]{0, 1, 0})
	mid := a.Mix(b, 0.5)
	wantAngle := HalfPI[float64]() * 0.5
	if !Aeq(mid.Angle(), wantAngle) {
		t.Errorf("Mix(a,b,0.5).Angle() = %v, want %v (the halfway rotation)", mid.Angle(), wantAngle)
	}
	lin := a.Lerp(b, 0.5)
	if Aeq(mid.X, lin.X) && Aeq(mid.Y, lin.Y) && Aeq(mid.Z, lin.Z) && Aeq(mid.W, lin.W) {
		t.Error("Mix should differ from Lerp away from the endpoints")
	}
}

func TestQuatMixDoesNotFlipSign(t *testing.T) {
	a := QuatIdentity[float64]()
	b := QuatAngleAxis(HalfPI[float64](), Vec3[float64]{0, 1, 0}).Neg()
	// Dot(a,b) < 0 here; Slerp/Nlerp flip b to take the shortest path,
	// while Mix interpolates along the great circle straight to b as
	// given. The two should land on different points.
	mixed := a.Mix(b, 0.5)
	slerped := a.Slerp(b, 0.5)
	if Aeq(mixed.X, slerped.X) && Aeq(mixed.Y, slerped.Y) && Aeq(mixed.Z, slerped.Z) && Aeq(mixed.W, slerped.W) {
		t.Error("Mix should not flip sign to the shortest path the way Slerp does")
	}
}

func TestQuatAxisDegenerateFallback(t *testing.T) {
	id := QuatIdentity[float64]()
	got := id.Axis()
	want := Vec3[float64]{0, 0, 1}
	if got != want {
		t.Errorf("Axis() of the identity quaternion = %v, want %v", got, want)
	}
}

func TestQuatAngleNearIdentityBranch(t *testing.T) {
	axis := Normalize3(Vec3[float64]{1, 0, 0})
	ang := 1e-8
	q := QuatAngleAxis(ang, axis)
	if !Aeq(q.Angle(), ang) {
		t.Errorf("Angle() near identity = %v, want %v", q.Angle(), ang)
	}
}

func TestQuatExpLogRoundTrip(t *testing.T) {
	q := QuatAngleAxis(0.8, Normalize3(Vec3[float64]{1, 0, 1}))
	got := q.Log().Exp()
	if !Aeq(got.X, q.X) || !Aeq(got.Y, q.Y) || !Aeq(got.Z, q.Z) || !Aeq(got.W, q.W) {
		t.Errorf("Exp(Log(q)) = %+v, want %+v", got, q)
	}
}

func TestQuatPowOneIsIdentity(t *testing.T) {
	q := QuatAngleAxis(0.8, Normalize3(Vec3[float64]{1, 0, 1}))
	got := q.Pow(1)
	if !Aeq(got.X, q.X) || !Aeq(got.Y, q.Y) || !Aeq(got.Z, q.Z) || !Aeq(got.W, q.W) {
		t.Errorf("q.Pow(1) = %+v, want %+v", got, q)
	}
}

func TestQuatSqrtSquares(t *testing.T) {
	q := QuatAngleAxis(0.8, Normalize3(Vec3[float64]{0, 1, 0}))
	root := q.Sqrt()
	got := root.Mul(root)
	if !Aeq(got.X, q.X) || !Aeq(got.Y, q.Y) || !Aeq(got.Z, q.Z) || !Aeq(got.W, q.W) {
		t.Errorf("Sqrt(q)*Sqrt(q) = %+v, want %+v", got, q)
	}
}

func TestQuatEulerRoundTrip(t *testing.T) {
	pitch, yaw, roll := 0.3, 0.4, 0.5
	q := QuatFromEuler(pitch, yaw, roll)
	gotPitch, gotYaw, gotRoll := q.EulerAngles()
	if !Aeq(gotPitch, pitch) || !Aeq(gotYaw, yaw) || !Aeq(gotRoll, roll) {
		t.Errorf("EulerAngles() = (%v,%v,%v), want (%v,%v,%v)",
			gotPitch, gotYaw, gotRoll, pitch, yaw, roll)
	}
}

func TestQuatFromToIdentity(t *testing.T) {
	v := Normalize3(Vec3[float64]{1, 2, 3})
	q := QuatFromTo(v, v)
	id := QuatIdentity[float64]()
	if !Aeq(q.W, id.W) {
		t.Errorf("QuatFromTo(v,v) = %+v, want identity", q)
	}
}

func TestQuatFromToOpposite(t *testing.T) {
	v := Vec3[float64]{1, 0, 0}
	q := QuatFromTo(v, v.Neg())
	got := q.Rotate(v)
	want := v.Neg()
	if !Aeq(got.X, want.X) || !Aeq(got.Y, want.Y) || !Aeq(got.Z, want.Z) {
		t.Errorf("QuatFromTo(v,-v).Rotate(v) = %v, want %v", got, want)
	}
}

func TestQuatFromToRotatesFromOntoTo(t *testing.T) {
	from := Vec3[float64]{1, 0, 0}
	to := Normalize3(Vec3[float64]{0, 1, 1})
	q := QuatFromTo(from, to)
	got := q.Rotate(from)
	if !Aeq(got.X, to.X) || !Aeq(got.Y, to.Y) || !Aeq(got.Z, to.Z) {
		t.Errorf("QuatFromTo(from,to).Rotate(from) = %v, want %v", got, to)
	}
}

func TestMat3CastQuaternionCastRoundTrip(t *testing.T) {
	q := QuatAngleAxis(0.9, Normalize3(Vec3[float64]{1, 2, 3}))
	m := q.Mat3Cast()
	back := QuaternionCast(m)
	if back.Dot(q) < 0 {
		back = back.Neg()
	}
	if !Aeq(back.X, q.X) || !Aeq(back.Y, q.Y) || !Aeq(back.Z, q.Z) || !Aeq(back.W, q.W) {
		t.Errorf("QuaternionCast(Mat3Cast(q)) = %+v, want %+v", back, q)
	}
}

func TestQuaternionCastAllFourBranches(t *testing.T) {
	// Angle 2.5 gives a negative trace, so the per-axis cases select the
	// X, Y and Z branches; the 0.9 case has a positive trace (W branch).
	cases := []struct {
		ang  float64
		axis Vec3[float64]
	}{
		{2.5, Vec3[float64]{1, 0, 0}}, {2.5, Vec3[float64]{0, 1, 0}}, {2.5, Vec3[float64]{0, 0, 1}},
		{2.5, Normalize3(Vec3[float64]{1, 1, 1})},
		{0.9, Normalize3(Vec3[float64]{1, 1, 1})},
	}
	for _, c := range cases {
		axis := c.axis
		q := QuatAngleAxis(c.ang, axis)
		m := q.Mat3Cast()
		back := QuaternionCast(m)
		if back.Dot(q) < 0 {
			back = back.Neg()
		}
		if !Aeq(back.X, q.X) || !Aeq(back.Y, q.Y) || !Aeq(back.Z, q.Z) || !Aeq(back.W, q.W) {
			t.Errorf("axis %v: QuaternionCast(Mat3Cast(q)) = %+v, want %+v", axis, back, q)
		}
	}
}
