// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Mat4 is stored as four columns, following the same column-major
// convention as Mat3: what was once sixteen row-major scalar fields
// and in-place Mult/Transpose/Ortho/Persp methods are re-derived here
// over four Vec4 columns with value receivers.
type Mat4[T Float] struct {
	Col0, Col1, Col2, Col3 Vec4[T]
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity[T Float]() Mat4[T] {
	return Mat4[T]{
		Vec4[T]{1, 0, 0, 0},
		Vec4[T]{0, 1, 0, 0},
		Vec4[T]{0, 0, 1, 0},
		Vec4[T]{0, 0, 0, 1},
	}
}

// Mat4Diag returns a 4x4 diagonal matrix with d on the main diagonal.
func Mat4Diag[T Float](d Vec4[T]) Mat4[T] {
	return Mat4[T]{
		Vec4[T]{d.X, 0, 0, 0},
		Vec4[T]{0, d.Y, 0, 0},
		Vec4[T]{0, 0, d.Z, 0},
		Vec4[T]{0, 0, 0, d.W},
	}
}

// Mat4Scalar returns a 4x4 diagonal matrix with s on the main diagonal.
// Mat4Scalar(1) is the identity.
func Mat4Scalar[T Float](s T) Mat4[T] { return Mat4Diag(Vec4Of(s)) }

// Mat4FromCols assembles a matrix from its four columns.
func Mat4FromCols[T Float](c0, c1, c2, c3 Vec4[T]) Mat4[T] { return Mat4[T]{c0, c1, c2, c3} }

// Mat4FromMat3 embeds a to the upper-left of an otherwise identity Mat4.
func Mat4FromMat3[T Float](a Mat3[T]) Mat4[T] {
	return Mat4[T]{
		Vec4From3(a.Col0, 0),
		Vec4From3(a.Col1, 0),
		Vec4From3(a.Col2, 0),
		Vec4[T]{0, 0, 0, 1},
	}
}

// Col returns the i'th column (0-3).
func (m Mat4[T]) Col(i int) Vec4[T] {
	switch i {
	case 0:
		return m.Col0
	case 1:
		return m.Col1
	case 2:
		return m.Col2
	case 3:
		return m.Col3
	default:
		panic("lin: Mat4 column index out of range")
	}
}

// At returns the element at the given column and row (both 0-3).
func (m Mat4[T]) At(col, row int) T { return m.Col(col).At(row) }

// Row returns the i'th row (0-3) as a Vec4.
func (m Mat4[T]) Row(i int) Vec4[T] {
	return Vec4[T]{m.Col0.At(i), m.Col1.At(i), m.Col2.At(i), m.Col3.At(i)}
}

// Eq (==) returns true if every element of m equals the corresponding
// element of a.
func (m Mat4[T]) Eq(a Mat4[T]) bool {
	return m.Col0.Eq(a.Col0) && m.Col1.Eq(a.Col1) && m.Col2.Eq(a.Col2) && m.Col3.Eq(a.Col3)
}

// EqualMat4 returns a boolean vector with true in position i where
// column i of m exactly equals column i of a.
func EqualMat4[T Float](m, a Mat4[T]) Vec4b {
	return Vec4b{m.Col0.Eq(a.Col0), m.Col1.Eq(a.Col1), m.Col2.Eq(a.Col2), m.Col3.Eq(a.Col3)}
}

// EqualEpsMat4 returns a boolean vector with true in position i where
// every element of column i of m differs from the corresponding
// element of column i of a by no more than eps.
func EqualEpsMat4[T Float](m, a Mat4[T], eps T) Vec4b {
	return Vec4b{
		EqualEps4(m.Col0, a.Col0, eps).All(),
		EqualEps4(m.Col1, a.Col1, eps).All(),
		EqualEps4(m.Col2, a.Col2, eps).All(),
		EqualEps4(m.Col3, a.Col3, eps).All(),
	}
}

// EqualULPMat4 returns a boolean vector with true in position i where
// every element of column i of m is within ulps representable steps of
// the corresponding element of column i of a.
func EqualULPMat4(m, a Mat4[float32], ulps int32) Vec4b {
	return Vec4b{
		EqualULP4(m.Col0, a.Col0, ulps).All(),
		EqualULP4(m.Col1, a.Col1, ulps).All(),
		EqualULP4(m.Col2, a.Col2, ulps).All(),
		EqualULP4(m.Col3, a.Col3, ulps).All(),
	}
}

// NotEqualMat4 returns the column-wise negation of EqualMat4.
func NotEqualMat4[T Float](m, a Mat4[T]) Vec4b { return EqualMat4(m, a).Not() }

// Add (+) returns the element-wise sum of m and a.
func (m Mat4[T]) Add(a Mat4[T]) Mat4[T] {
	return Mat4[T]{m.Col0.Add(a.Col0), m.Col1.Add(a.Col1), m.Col2.Add(a.Col2), m.Col3.Add(a.Col3)}
}

// Sub (-) returns m minus a, element-wise.
func (m Mat4[T]) Sub(a Mat4[T]) Mat4[T] {
	return Mat4[T]{m.Col0.Sub(a.Col0), m.Col1.Sub(a.Col1), m.Col2.Sub(a.Col2), m.Col3.Sub(a.Col3)}
}

// Scale (*) returns m with every element multiplied by the scalar s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	return Mat4[T]{m.Col0.Scale(s), m.Col1.Scale(s), m.Col2.Scale(s), m.Col3.Scale(s)}
}

// CompMul returns the component-wise (Hadamard) product of m and a.
func (m Mat4[T]) CompMul(a Mat4[T]) Mat4[T] {
	return Mat4[T]{m.Col0.Mul(a.Col0), m.Col1.Mul(a.Col1), m.Col2.Mul(a.Col2), m.Col3.Mul(a.Col3)}
}

// Mul (*) returns the matrix product m*a: applying a first, then m.
func (m Mat4[T]) Mul(a Mat4[T]) Mat4[T] {
	return Mat4[T]{m.MulVec(a.Col0), m.MulVec(a.Col1), m.MulVec(a.Col2), m.MulVec(a.Col3)}
}

// MulVec returns m*v, transforming column vector v by m.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m.Col0.X*v.X + m.Col1.X*v.Y + m.Col2.X*v.Z + m.Col3.X*v.W,
		m.Col0.Y*v.X + m.Col1.Y*v.Y + m.Col2.Y*v.Z + m.Col3.Y*v.W,
		m.Col0.Z*v.X + m.Col1.Z*v.Y + m.Col2.Z*v.Z + m.Col3.Z*v.W,
		m.Col0.W*v.X + m.Col1.W*v.Y + m.Col2.W*v.Z + m.Col3.W*v.W,
	}
}

// VecMul returns v*m, transforming row vector v by m.
func (m Mat4[T]) VecMul(v Vec4[T]) Vec4[T] { return m.Transpose().MulVec(v) }

// Transpose returns the reflection of m over its diagonal.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// minor3 returns the determinant of the 3x3 matrix formed by deleting
// the given row and column from m (both 0-3).
func (m Mat4[T]) minor3(col, row int) T {
	var r [3]Vec3[T]
	k := 0
	for c := 0; c < 4; c++ {
		if c == col {
			continue
		}
		full := m.Col(c)
		var v Vec3[T]
		j := 0
		for i := 0; i < 4; i++ {
			if i == row {
				continue
			}
			switch j {
			case 0:
				v.X = full.At(i)
			case 1:
				v.Y = full.At(i)
			case 2:
				v.Z = full.At(i)
			}
			j++
		}
		r[k] = v
		k++
	}
	return Mat3[T]{r[0], r[1], r[2]}.Determinant()
}

// cofactor4 returns the signed minor3 at (col,row).
func (m Mat4[T]) cofactor4(col, row int) T {
	sign := T(1)
	if (col+row)%2 != 0 {
		sign = -1
	}
	return sign * m.minor3(col, row)
}

// Determinant returns the determinant of m via cofactor expansion
// across the first column.
func (m Mat4[T]) Determinant() T {
	return m.Col0.X*m.cofactor4(0, 0) + m.Col0.Y*m.cofactor4(0, 1) +
		m.Col0.Z*m.cofactor4(0, 2) + m.Col0.W*m.cofactor4(0, 3)
}

// Inverse returns the inverse of m, computed as the transpose of the
// cofactor matrix scaled by 1/Determinant(m) (the adjugate method).
// Singular m produces NaN/Inf elements rather than a silent identity.
func (m Mat4[T]) Inverse() Mat4[T] {
	det := m.Determinant()
	s := 1 / det
	var cols [4]Vec4[T]
	for col := 0; col < 4; col++ {
		var v Vec4[T]
		for row := 0; row < 4; row++ {
			// adjugate(row,col) = cofactor(col,row); stored transposed.
			c := m.cofactor4(row, col) * s
			switch row {
			case 0:
				v.X = c
			case 1:
				v.Y = c
			case 2:
				v.Z = c
			case 3:
				v.W = c
			}
		}
		cols[col] = v
	}
	return Mat4[T]{cols[0], cols[1], cols[2], cols[3]}
}

// OuterProduct4 returns the outer product of column vector c and row
// vector r.
func OuterProduct4[T Float](c, r Vec4[T]) Mat4[T] {
	return Mat4[T]{c.Scale(r.X), c.Scale(r.Y), c.Scale(r.Z), c.Scale(r.W)}
}
