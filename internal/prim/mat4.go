package prim

import (
	"fmt"
	"math"
)

// Mat4 is a row-major 4x4 matrix used to carry an affine transform
// (translation + rotation, per the restriction documented on
// optictrace.Transform) between a hittable's local space and world space.
type Mat4 struct {
	m [4][4]float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	var out Mat4
	for i := range 4 {
		out.m[i][i] = 1
	}
	return out
}

// Translate returns the affine matrix that translates by v.
func Translate(v Vec3) Mat4 {
	out := Identity()
	out.m[0][3] = v.X
	out.m[1][3] = v.Y
	out.m[2][3] = v.Z
	return out
}

// RotateY returns the affine matrix that rotates by angle radians about
// the Y axis, right-handed.
func RotateY(angle float64) Mat4 {
	s, c := math.Sin(angle), math.Cos(angle)
	out := Identity()
	out.m[0][0] = c
	out.m[0][2] = s
	out.m[2][0] = -s
	out.m[2][2] = c
	return out
}

// Mul returns the matrix product a*b (applying b first, then a, to a
// column vector on the right).
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for i := range 4 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += a.m[i][k] * b.m[k][j]
			}
			out.m[i][j] = sum
		}
	}
	return out
}

// MulPoint applies the matrix to a point (implicit w=1): translation
// is applied.
func (a Mat4) MulPoint(p Vec3) Vec3 {
	return Vec3{
		X: a.m[0][0]*p.X + a.m[0][1]*p.Y + a.m[0][2]*p.Z + a.m[0][3],
		Y: a.m[1][0]*p.X + a.m[1][1]*p.Y + a.m[1][2]*p.Z + a.m[1][3],
		Z: a.m[2][0]*p.X + a.m[2][1]*p.Y + a.m[2][2]*p.Z + a.m[2][3],
	}
}

// MulVector applies the matrix to a vector (implicit w=0): translation
// is not applied. Used for directions and normals.
func (a Mat4) MulVector(v Vec3) Vec3 {
	return Vec3{
		X: a.m[0][0]*v.X + a.m[0][1]*v.Y + a.m[0][2]*v.Z,
		Y: a.m[1][0]*v.X + a.m[1][1]*v.Y + a.m[1][2]*v.Z,
		Z: a.m[2][0]*v.X + a.m[2][1]*v.Y + a.m[2][2]*v.Z,
	}
}

// Transpose returns the transpose of a. Used to map normals by the
// inverse-transpose of the local-to-world matrix.
func (a Mat4) Transpose() Mat4 {
	var out Mat4
	for i := range 4 {
		for j := range 4 {
			out.m[j][i] = a.m[i][j]
		}
	}
	return out
}

// Inverse returns the inverse of a via Gauss-Jordan elimination with
// partial pivoting. Inverse panics if a is singular: a non-invertible
// transform is a construction-time programmer error, not a runtime
// condition the caller can recover from (spec invariant: the matrix is
// invertible).
func (a Mat4) Inverse() Mat4 {
	var aug [4][8]float64
	for i := range 4 {
		for j := range 4 {
			aug[i][j] = a.m[i][j]
		}
		aug[i][4+i] = 1
	}

	for col := range 4 {
		pivot := col
		best := math.Abs(aug[col][col])
		for row := col + 1; row < 4; row++ {
			if v := math.Abs(aug[row][col]); v > best {
				pivot, best = row, v
			}
		}
		if best < 1e-12 {
			panic(fmt.Sprintf("Mat4.Inverse: matrix is singular (column %d)", col))
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pv := aug[col][col]
		for k := range 8 {
			aug[col][k] /= pv
		}
		for row := range 4 {
			if row == col {
				continue
			}
			factor := aug[row][col]
			if factor == 0 {
				continue
			}
			for k := range 8 {
				aug[row][k] -= factor * aug[col][k]
			}
		}
	}

	var out Mat4
	for i := range 4 {
		for j := range 4 {
			out.m[i][j] = aug[i][4+j]
		}
	}
	return out
}
