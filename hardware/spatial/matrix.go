// This file is part of Bitsim.
//
// Bitsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bitsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bitsim.  If not, see <https://www.gnu.org/licenses/>.

package spatial

import "math"

// Matrix is a rotation matrix. Each row is one of the axes of the board
// (X, Y and the axis pointing out of the front of the board) expressed in
// world coordinates. In world coordinates gravity points along negative Z.
type Matrix [3][3]float64

// Identity is the orientation of a board lying flat and face up.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotateX returns the matrix for a rotation about the X axis. The angle is
// in radians.
func RotateX(a float64) Matrix {
	s, c := math.Sincos(a)
	return Matrix{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotateY returns the matrix for a rotation about the Y axis. The angle is
// in radians.
func RotateY(a float64) Matrix {
	s, c := math.Sincos(a)
	return Matrix{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotateZ returns the matrix for a rotation about the Z axis. The angle is
// in radians.
func RotateZ(a float64) Matrix {
	s, c := math.Sincos(a)
	return Matrix{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Mul returns the product of the two matrices.
func (m Matrix) Mul(n Matrix) Matrix {
	var r Matrix
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				r[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return r
}
