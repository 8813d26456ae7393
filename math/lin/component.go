// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Component-wise lifts of the scalar, exponential and trigonometric
// functions onto Vec2/Vec3/Vec4, following the convention of naming the
// vector form after the scalar it lifts (see e.g. Vec3.Scale wrapping a
// per-component multiply). Functions that take a per-call scalar
// argument (edge, lo, hi, a) are provided in both an
// all-components-share-the-scalar form and a per-component-vector form.

// AbsV returns v with Abs applied to each component.
func AbsV2[T Signed](v Vec2[T]) Vec2[T] { return Vec2[T]{Abs(v.X), Abs(v.Y)} }
func AbsV3[T Signed](v Vec3[T]) Vec3[T] { return Vec3[T]{Abs(v.X), Abs(v.Y), Abs(v.Z)} }
func AbsV4[T Signed](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Abs(v.X), Abs(v.Y), Abs(v.Z), Abs(v.W)}
}

// SignV returns v with Sign applied to each component.
func SignV2[T Signed](v Vec2[T]) Vec2[T] { return Vec2[T]{Sign(v.X), Sign(v.Y)} }
func SignV3[T Signed](v Vec3[T]) Vec3[T] { return Vec3[T]{Sign(v.X), Sign(v.Y), Sign(v.Z)} }
func SignV4[T Signed](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Sign(v.X), Sign(v.Y), Sign(v.Z), Sign(v.W)}
}

// FloorV returns v with Floor applied to each component.
func FloorV2[T Float](v Vec2[T]) Vec2[T] { return Vec2[T]{Floor(v.X), Floor(v.Y)} }
func FloorV3[T Float](v Vec3[T]) Vec3[T] { return Vec3[T]{Floor(v.X), Floor(v.Y), Floor(v.Z)} }
func FloorV4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Floor(v.X), Floor(v.Y), Floor(v.Z), Floor(v.W)}
}

// CeilV returns v with Ceil applied to each component.
func CeilV2[T Float](v Vec2[T]) Vec2[T] { return Vec2[T]{Ceil(v.X), Ceil(v.Y)} }
func CeilV3[T Float](v Vec3[T]) Vec3[T] { return Vec3[T]{Ceil(v.X), Ceil(v.Y), Ceil(v.Z)} }
func CeilV4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Ceil(v.X), Ceil(v.Y), Ceil(v.Z), Ceil(v.W)}
}

// TruncV returns v with Trunc applied to each component.
func TruncV2[T Float](v Vec2[T]) Vec2[T] { return Vec2[T]{Trunc(v.X), Trunc(v.Y)} }
func TruncV3[T Float](v Vec3[T]) Vec3[T] { return Vec3[T]{Trunc(v.X), Trunc(v.Y), Trunc(v.Z)} }
func TruncV4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Trunc(v.X), Trunc(v.Y), Trunc(v.Z), Trunc(v.W)}
}

// RoundV returns v with Round applied to each component.
func RoundV2[T Float](v Vec2[T]) Vec2[T] { return Vec2[T]{Round(v.X), Round(v.Y)} }
func RoundV3[T Float](v Vec3[T]) Vec3[T] { return Vec3[T]{Round(v.X), Round(v.Y), Round(v.Z)} }
func RoundV4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Round(v.X), Round(v.Y), Round(v.Z), Round(v.W)}
}

// RoundEvenV returns v with RoundEven applied to each component.
func RoundEvenV2[T Float](v Vec2[T]) Vec2[T] {
	return Vec2[T]{RoundEven(v.X), RoundEven(v.Y)}
}
func RoundEvenV3[T Float](v Vec3[T]) Vec3[T] {
	return Vec3[T]{RoundEven(v.X), RoundEven(v.Y), RoundEven(v.Z)}
}
func RoundEvenV4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{RoundEven(v.X), RoundEven(v.Y), RoundEven(v.Z), RoundEven(v.W)}
}

// FractV returns v with Fract applied to each component.
func FractV2[T Float](v Vec2[T]) Vec2[T] { return Vec2[T]{Fract(v.X), Fract(v.Y)} }
func FractV3[T Float](v Vec3[T]) Vec3[T] { return Vec3[T]{Fract(v.X), Fract(v.Y), Fract(v.Z)} }
func FractV4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Fract(v.X), Fract(v.Y), Fract(v.Z), Fract(v.W)}
}

// ModV returns v with each component modulused by the corresponding
// component of a, using the mathematical-modulus Mod.
func ModV2[T Float](v, a Vec2[T]) Vec2[T] { return Vec2[T]{Mod(v.X, a.X), Mod(v.Y, a.Y)} }
func ModV3[T Float](v, a Vec3[T]) Vec3[T] {
	return Vec3[T]{Mod(v.X, a.X), Mod(v.Y, a.Y), Mod(v.Z, a.Z)}
}
func ModV4[T Float](v, a Vec4[T]) Vec4[T] {
	return Vec4[T]{Mod(v.X, a.X), Mod(v.Y, a.Y), Mod(v.Z, a.Z), Mod(v.W, a.W)}
}

// ModVS returns v with each component modulused by the scalar s.
func ModVS2[T Float](v Vec2[T], s T) Vec2[T] { return Vec2[T]{Mod(v.X, s), Mod(v.Y, s)} }
func ModVS3[T Float](v Vec3[T], s T) Vec3[T] {
	return Vec3[T]{Mod(v.X, s), Mod(v.Y, s), Mod(v.Z, s)}
}
func ModVS4[T Float](v Vec4[T], s T) Vec4[T] {
	return Vec4[T]{Mod(v.X, s), Mod(v.Y, s), Mod(v.Z, s), Mod(v.W, s)}
}

// ClampV constrains each component of x to the closed interval
// [lo, hi] given component-wise.
func ClampV2[T Number](x, lo, hi Vec2[T]) Vec2[T] {
	return Vec2[T]{Clamp(x.X, lo.X, hi.X), Clamp(x.Y, lo.Y, hi.Y)}
}
func ClampV3[T Number](x, lo, hi Vec3[T]) Vec3[T] {
	return Vec3[T]{Clamp(x.X, lo.X, hi.X), Clamp(x.Y, lo.Y, hi.Y), Clamp(x.Z, lo.Z, hi.Z)}
}
func ClampV4[T Number](x, lo, hi Vec4[T]) Vec4[T] {
	return Vec4[T]{
		Clamp(x.X, lo.X, hi.X), Clamp(x.Y, lo.Y, hi.Y),
		Clamp(x.Z, lo.Z, hi.Z), Clamp(x.W, lo.W, hi.W),
	}
}

// ClampVS constrains each component of x to the closed scalar interval
// [lo, hi].
func ClampVS2[T Number](x Vec2[T], lo, hi T) Vec2[T] {
	return Vec2[T]{Clamp(x.X, lo, hi), Clamp(x.Y, lo, hi)}
}
func ClampVS3[T Number](x Vec3[T], lo, hi T) Vec3[T] {
	return Vec3[T]{Clamp(x.X, lo, hi), Clamp(x.Y, lo, hi), Clamp(x.Z, lo, hi)}
}
func ClampVS4[T Number](x Vec4[T], lo, hi T) Vec4[T] {
	return Vec4[T]{Clamp(x.X, lo, hi), Clamp(x.Y, lo, hi), Clamp(x.Z, lo, hi), Clamp(x.W, lo, hi)}
}

// MixV linearly interpolates between x and y component-wise, by the
// per-component weight a.
func MixV2[T Float](x, y, a Vec2[T]) Vec2[T] {
	return Vec2[T]{Mix(x.X, y.X, a.X), Mix(x.Y, y.Y, a.Y)}
}
func MixV3[T Float](x, y, a Vec3[T]) Vec3[T] {
	return Vec3[T]{Mix(x.X, y.X, a.X), Mix(x.Y, y.Y, a.Y), Mix(x.Z, y.Z, a.Z)}
}
func MixV4[T Float](x, y, a Vec4[T]) Vec4[T] {
	return Vec4[T]{
		Mix(x.X, y.X, a.X), Mix(x.Y, y.Y, a.Y),
		Mix(x.Z, y.Z, a.Z), Mix(x.W, y.W, a.W),
	}
}

// MixVS linearly interpolates between x and y component-wise, by the
// single scalar weight a shared across all components.
func MixVS2[T Float](x, y Vec2[T], a T) Vec2[T] {
	return Vec2[T]{Mix(x.X, y.X, a), Mix(x.Y, y.Y, a)}
}
func MixVS3[T Float](x, y Vec3[T], a T) Vec3[T] {
	return Vec3[T]{Mix(x.X, y.X, a), Mix(x.Y, y.Y, a), Mix(x.Z, y.Z, a)}
}
func MixVS4[T Float](x, y Vec4[T], a T) Vec4[T] {
	return Vec4[T]{Mix(x.X, y.X, a), Mix(x.Y, y.Y, a), Mix(x.Z, y.Z, a), Mix(x.W, y.W, a)}
}

// LerpVS is a synonym for MixVS restricted by contract to a in [0,1].
func LerpVS2[T Float](x, y Vec2[T], a T) Vec2[T] { return MixVS2(x, y, a) }
func LerpVS3[T Float](x, y Vec3[T], a T) Vec3[T] { return MixVS3(x, y, a) }
func LerpVS4[T Float](x, y Vec4[T], a T) Vec4[T] { return MixVS4(x, y, a) }

// StepV returns, for each component, 0 if x < edge else 1, comparing
// against the per-component edge.
func StepV2[T Float](edge, x Vec2[T]) Vec2[T] {
	return Vec2[T]{Step(edge.X, x.X), Step(edge.Y, x.Y)}
}
func StepV3[T Float](edge, x Vec3[T]) Vec3[T] {
	return Vec3[T]{Step(edge.X, x.X), Step(edge.Y, x.Y), Step(edge.Z, x.Z)}
}
func StepV4[T Float](edge, x Vec4[T]) Vec4[T] {
	return Vec4[T]{Step(edge.X, x.X), Step(edge.Y, x.Y), Step(edge.Z, x.Z), Step(edge.W, x.W)}
}

// StepVS returns, for each component, 0 if x < edge else 1, against a
// single scalar edge shared across all components.
func StepVS2[T Float](edge T, x Vec2[T]) Vec2[T] {
	return Vec2[T]{Step(edge, x.X), Step(edge, x.Y)}
}
func StepVS3[T Float](edge T, x Vec3[T]) Vec3[T] {
	return Vec3[T]{Step(edge, x.X), Step(edge, x.Y), Step(edge, x.Z)}
}
func StepVS4[T Float](edge T, x Vec4[T]) Vec4[T] {
	return Vec4[T]{Step(edge, x.X), Step(edge, x.Y), Step(edge, x.Z), Step(edge, x.W)}
}

// SmoothStepV applies SmoothStep component-wise given per-component
// edges e0 and e1.
func SmoothStepV2[T Float](e0, e1, x Vec2[T]) Vec2[T] {
	return Vec2[T]{SmoothStep(e0.X, e1.X, x.X), SmoothStep(e0.Y, e1.Y, x.Y)}
}
func SmoothStepV3[T Float](e0, e1, x Vec3[T]) Vec3[T] {
	return Vec3[T]{
		SmoothStep(e0.X, e1.X, x.X), SmoothStep(e0.Y, e1.Y, x.Y), SmoothStep(e0.Z, e1.Z, x.Z),
	}
}
func SmoothStepV4[T Float](e0, e1, x Vec4[T]) Vec4[T] {
	return Vec4[T]{
		SmoothStep(e0.X, e1.X, x.X), SmoothStep(e0.Y, e1.Y, x.Y),
		SmoothStep(e0.Z, e1.Z, x.Z), SmoothStep(e0.W, e1.W, x.W),
	}
}

// SmoothStepVS applies SmoothStep component-wise against a single
// scalar pair of edges shared across all components.
func SmoothStepVS2[T Float](e0, e1 T, x Vec2[T]) Vec2[T] {
	return Vec2[T]{SmoothStep(e0, e1, x.X), SmoothStep(e0, e1, x.Y)}
}
func SmoothStepVS3[T Float](e0, e1 T, x Vec3[T]) Vec3[T] {
	return Vec3[T]{SmoothStep(e0, e1, x.X), SmoothStep(e0, e1, x.Y), SmoothStep(e0, e1, x.Z)}
}
func SmoothStepVS4[T Float](e0, e1 T, x Vec4[T]) Vec4[T] {
	return Vec4[T]{
		SmoothStep(e0, e1, x.X), SmoothStep(e0, e1, x.Y),
		SmoothStep(e0, e1, x.Z), SmoothStep(e0, e1, x.W),
	}
}

// SinV, CosV apply the corresponding trigonometric function to
// each component of v.
func SinV2[T Float](v Vec2[T]) Vec2[T] { return Vec2[T]{Sin(v.X), Sin(v.Y)} }
func SinV3[T Float](v Vec3[T]) Vec3[T] { return Vec3[T]{Sin(v.X), Sin(v.Y), Sin(v.Z)} }
func SinV4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Sin(v.X), Sin(v.Y), Sin(v.Z), Sin(v.W)}
}

func CosV2[T Float](v Vec2[T]) Vec2[T] { return Vec2[T]{Cos(v.X), Cos(v.Y)} }
func CosV3[T Float](v Vec3[T]) Vec3[T] { return Vec3[T]{Cos(v.X), Cos(v.Y), Cos(v.Z)} }
func CosV4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Cos(v.X), Cos(v.Y), Cos(v.Z), Cos(v.W)}
}

// PowV, SqrtV apply the corresponding exponential function
// component-wise.
func PowV2[T Float](v, e Vec2[T]) Vec2[T] { return Vec2[T]{Pow(v.X, e.X), Pow(v.Y, e.Y)} }
func PowV3[T Float](v, e Vec3[T]) Vec3[T] {
	return Vec3[T]{Pow(v.X, e.X), Pow(v.Y, e.Y), Pow(v.Z, e.Z)}
}
func PowV4[T Float](v, e Vec4[T]) Vec4[T] {
	return Vec4[T]{Pow(v.X, e.X), Pow(v.Y, e.Y), Pow(v.Z, e.Z), Pow(v.W, e.W)}
}

func SqrtV2[T Float](v Vec2[T]) Vec2[T] { return Vec2[T]{Sqrt(v.X), Sqrt(v.Y)} }
func SqrtV3[T Float](v Vec3[T]) Vec3[T] { return Vec3[T]{Sqrt(v.X), Sqrt(v.Y), Sqrt(v.Z)} }
func SqrtV4[T Float](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Sqrt(v.X), Sqrt(v.Y), Sqrt(v.Z), Sqrt(v.W)}
}

// MinV, MaxV apply Min/Max component-wise between v and a.
func MinV2[T Number](v, a Vec2[T]) Vec2[T] { return Vec2[T]{Min(v.X, a.X), Min(v.Y, a.Y)} }
func MinV3[T Number](v, a Vec3[T]) Vec3[T] {
	return Vec3[T]{Min(v.X, a.X), Min(v.Y, a.Y), Min(v.Z, a.Z)}
}
func MinV4[T Number](v, a Vec4[T]) Vec4[T] {
	return Vec4[T]{Min(v.X, a.X), Min(v.Y, a.Y), Min(v.Z, a.Z), Min(v.W, a.W)}
}

func MaxV2[T Number](v, a Vec2[T]) Vec2[T] { return Vec2[T]{Max(v.X, a.X), Max(v.Y, a.Y)} }
func MaxV3[T Number](v, a Vec3[T]) Vec3[T] {
	return Vec3[T]{Max(v.X, a.X), Max(v.Y, a.Y), Max(v.Z, a.Z)}
}
func MaxV4[T Number](v, a Vec4[T]) Vec4[T] {
	return Vec4[T]{Max(v.X, a.X), Max(v.Y, a.Y), Max(v.Z, a.Z), Max(v.W, a.W)}
}
