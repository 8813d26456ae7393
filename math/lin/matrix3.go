// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Mat3 is stored as three columns, matching the column-major convention
// used throughout this package (column vectors, matrices apply on the
// left: M*v). An earlier row-major scalar-field (Xx..Zz) representation
// with in-place pointer-receiver mutation gave way to this one; the
// Det/Cof/Adj/Inv derivations below are re-expressed over three Vec3
// columns with pure value receivers.
type Mat3[T Float] struct {
	Col0, Col1, Col2 Vec3[T]
}

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity[T Float]() Mat3[T] {
	return Mat3[T]{
		Vec3[T]{1, 0, 0},
		Vec3[T]{0, 1, 0},
		Vec3[T]{0, 0, 1},
	}
}

// Mat3Diag returns a 3x3 diagonal matrix with d on the main diagonal.
func Mat3Diag[T Float](d Vec3[T]) Mat3[T] {
	return Mat3[T]{
		Vec3[T]{d.X, 0, 0},
		Vec3[T]{0, d.Y, 0},
		Vec3[T]{0, 0, d.Z},
	}
}

// Mat3Scalar returns a 3x3 diagonal matrix with s on the main diagonal
// and zero elsewhere. Mat3Scalar(1) is the identity.
func Mat3Scalar[T Float](s T) Mat3[T] { return Mat3Diag(Vec3Of(s)) }

// Mat3FromCols assembles a matrix from its three columns.
func Mat3FromCols[T Float](c0, c1, c2 Vec3[T]) Mat3[T] { return Mat3[T]{c0, c1, c2} }

// Mat3FromMat4 extracts the upper-left 3x3 submatrix of m.
func Mat3FromMat4[T Float](m Mat4[T]) Mat3[T] {
	return Mat3[T]{
		Vec3From4(m.Col0),
		Vec3From4(m.Col1),
		Vec3From4(m.Col2),
	}
}

// Col returns the i'th column (0,1,2).
func (m Mat3[T]) Col(i int) Vec3[T] {
	switch i {
	case 0:
		return m.Col0
	case 1:
		return m.Col1
	case 2:
		return m.Col2
	default:
		panic("lin: Mat3 column index out of range")
	}
}

// At returns the element at the given column and row (both 0,1,2).
func (m Mat3[T]) At(col, row int) T { return m.Col(col).At(row) }

// Row returns the i'th row (0,1,2) as a Vec3, built from the
// corresponding element of each column.
func (m Mat3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{m.Col0.At(i), m.Col1.At(i), m.Col2.At(i)}
}

// Eq (==) returns true if every element of m equals the corresponding
// element of a.
func (m Mat3[T]) Eq(a Mat3[T]) bool {
	return m.Col0.Eq(a.Col0) && m.Col1.Eq(a.Col1) && m.Col2.Eq(a.Col2)
}

// EqualMat3 returns a boolean vector with true in position i where
// column i of m exactly equals column i of a.
func EqualMat3[T Float](m, a Mat3[T]) Vec3b {
	return Vec3b{m.Col0.Eq(a.Col0), m.Col1.Eq(a.Col1), m.Col2.Eq(a.Col2)}
}

// EqualEpsMat3 returns a boolean vector with true in position i where
// every element of column i of m differs from the corresponding
// element of column i of a by no more than eps.
func EqualEpsMat3[T Float](m, a Mat3[T], eps T) Vec3b {
	return Vec3b{
		EqualEps3(m.Col0, a.Col0, eps).All(),
		EqualEps3(m.Col1, a.Col1, eps).All(),
		EqualEps3(m.Col2, a.Col2, eps).All(),
	}
}

// EqualULPMat3 returns a boolean vector with true in position i where
// every element of column i of m is within ulps representable steps of
// the corresponding element of column i of a.
func EqualULPMat3(m, a Mat3[float32], ulps int32) Vec3b {
	return Vec3b{
		EqualULP3(m.Col0, a.Col0, ulps).All(),
		EqualULP3(m.Col1, a.Col1, ulps).All(),
		EqualULP3(m.Col2, a.Col2, ulps).All(),
	}
}

// NotEqualMat3 returns the column-wise negation of EqualMat3.
func NotEqualMat3[T Float](m, a Mat3[T]) Vec3b { return EqualMat3(m, a).Not() }

// Add (+) returns the element-wise sum of m and a.
func (m Mat3[T]) Add(a Mat3[T]) Mat3[T] {
	return Mat3[T]{m.Col0.Add(a.Col0), m.Col1.Add(a.Col1), m.Col2.Add(a.Col2)}
}

// Sub (-) returns m minus a, element-wise.
func (m Mat3[T]) Sub(a Mat3[T]) Mat3[T] {
	return Mat3[T]{m.Col0.Sub(a.Col0), m.Col1.Sub(a.Col1), m.Col2.Sub(a.Col2)}
}

// Scale (*) returns m with every element multiplied by the scalar s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	return Mat3[T]{m.Col0.Scale(s), m.Col1.Scale(s), m.Col2.Scale(s)}
}

// CompMul returns the component-wise (Hadamard) product of m and a,
// distinct from Mul which is matrix multiplication.
func (m Mat3[T]) CompMul(a Mat3[T]) Mat3[T] {
	return Mat3[T]{m.Col0.Mul(a.Col0), m.Col1.Mul(a.Col1), m.Col2.Mul(a.Col2)}
}

// Mul (*) returns the matrix product m*a: applying a first, then m.
func (m Mat3[T]) Mul(a Mat3[T]) Mat3[T] {
	return Mat3[T]{m.MulVec(a.Col0), m.MulVec(a.Col1), m.MulVec(a.Col2)}
}

// MulVec returns m*v, transforming column vector v by m.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m.Col0.X*v.X + m.Col1.X*v.Y + m.Col2.X*v.Z,
		m.Col0.Y*v.X + m.Col1.Y*v.Y + m.Col2.Y*v.Z,
		m.Col0.Z*v.X + m.Col1.Z*v.Y + m.Col2.Z*v.Z,
	}
}

// VecMul returns v*m, transforming row vector v by m (v's transpose
// times m, equivalently Transpose(m)*v).
func (m Mat3[T]) VecMul(v Vec3[T]) Vec3[T] { return m.Transpose().MulVec(v) }

// Transpose returns the reflection of m over its diagonal.
func (m Mat3[T]) Transpose() Mat3[T] { return Mat3[T]{m.Row(0), m.Row(1), m.Row(2)} }

// Determinant returns the determinant of m. A zero determinant means m
// has no inverse.
func (m Mat3[T]) Determinant() T {
	return m.Col0.X*(m.Col1.Y*m.Col2.Z-m.Col2.Y*m.Col1.Z) -
		m.Col1.X*(m.Col0.Y*m.Col2.Z-m.Col2.Y*m.Col0.Z) +
		m.Col2.X*(m.Col0.Y*m.Col1.Z-m.Col1.Y*m.Col0.Z)
}

// Inverse returns the inverse of m. If m is singular (zero determinant)
// the result's elements are all NaN/Inf, matching the IEEE-754 division
// semantics of the adjugate/determinant formula rather than silently
// returning the identity.
func (m Mat3[T]) Inverse() Mat3[T] {
	det := m.Determinant()
	s := 1 / det
	c00 := m.Col1.Y*m.Col2.Z - m.Col2.Y*m.Col1.Z
	c01 := m.Col2.Y*m.Col0.Z - m.Col0.Y*m.Col2.Z
	c02 := m.Col0.Y*m.Col1.Z - m.Col1.Y*m.Col0.Z
	c10 := m.Col2.X*m.Col1.Z - m.Col1.X*m.Col2.Z
	c11 := m.Col0.X*m.Col2.Z - m.Col2.X*m.Col0.Z
	c12 := m.Col1.X*m.Col0.Z - m.Col0.X*m.Col1.Z
	c20 := m.Col1.X*m.Col2.Y - m.Col2.X*m.Col1.Y
	c21 := m.Col2.X*m.Col0.Y - m.Col0.X*m.Col2.Y
	c22 := m.Col0.X*m.Col1.Y - m.Col1.X*m.Col0.Y
	return Mat3[T]{
		Vec3[T]{c00 * s, c01 * s, c02 * s},
		Vec3[T]{c10 * s, c11 * s, c12 * s},
		Vec3[T]{c20 * s, c21 * s, c22 * s},
	}
}

// OuterProduct3 returns the outer product of column vector c and row
// vector r: a Mat3 whose (col,row) element is c[row]*r[col].
func OuterProduct3[T Float](c, r Vec3[T]) Mat3[T] {
	return Mat3[T]{c.Scale(r.X), c.Scale(r.Y), c.Scale(r.Z)}
}

// Mat3FromAxisAngle returns the rotation matrix for a right-handed
// rotation of ang radians about axis (which need not be normalized),
// via Rodrigues' rotation formula.
func Mat3FromAxisAngle[T Float](axis Vec3[T], ang T) Mat3[T] {
	axis = Normalize3(axis)
	rcos, rsin := Cos(ang), Sin(ang)
	ax, ay, az := axis.X, axis.Y, axis.Z
	one := T(1)
	return Mat3[T]{
		Vec3[T]{
			rcos + ax*ax*(one-rcos),
			az*rsin + ax*ay*(one-rcos),
			-ay*rsin + ax*az*(one-rcos),
		},
		Vec3[T]{
			-az*rsin + ay*ax*(one-rcos),
			rcos + ay*ay*(one-rcos),
			ax*rsin + ay*az*(one-rcos),
		},
		Vec3[T]{
			ay*rsin + az*ax*(one-rcos),
			-ax*rsin + az*ay*(one-rcos),
			rcos + az*az*(one-rcos),
		},
	}
}
