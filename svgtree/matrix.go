package svgtree

import "math"

// Matrix2D is an affine transform:
//
//	[ A C E ]
//	[ B D F ]
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{A: 1, D: 1}

// Mult returns a.Mult(b), the transform b followed by a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, D: 1, E: x, F: y})
}

func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: x, D: y})
}

func (a Matrix2D) Rotate(radians float64) Matrix2D {
	sin, cos := math.Sin(radians), math.Cos(radians)
	return a.Mult(Matrix2D{A: cos, B: sin, C: -sin, D: cos})
}

func (a Matrix2D) SkewX(radians float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, D: 1, C: math.Tan(radians)})
}

func (a Matrix2D) SkewY(radians float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, D: 1, B: math.Tan(radians)})
}

// Apply transforms the point (x, y).
func (a Matrix2D) Apply(x, y float64) (float64, float64) {
	return a.A*x + a.C*y + a.E, a.B*x + a.D*y + a.F
}

// Invert returns the inverse transform; ok is false when the matrix is
// singular.
func (a Matrix2D) Invert() (Matrix2D, bool) {
	det := a.A*a.D - a.B*a.C
	if det == 0 {
		return Matrix2D{}, false
	}
	return Matrix2D{
		A: a.D / det,
		B: -a.B / det,
		C: -a.C / det,
		D: a.A / det,
		E: (a.C*a.F - a.D*a.E) / det,
		F: (a.B*a.E - a.A*a.F) / det,
	}, true
}
