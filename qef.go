// seehuhn.de/go/isoline - contour lines of 2D scalar fields
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package isoline

import (
	"gonum.org/v1/gonum/mat"
	"seehuhn.de/go/geom/vec"
)

// EdgeRecord describes a grid edge crossed by the contour.
type EdgeRecord struct {
	P vec.Vec2 // crossing point, in image coordinates
	N vec.Vec2 // unit field gradient at P
}

// QEFSolver places the dual contouring vertex of a grid cell.
//
// Each record defines a tangent line: the line through P perpendicular to
// N. The vertex should minimise the sum of squared distances to these lines
// (the quadratic error function of the cell).
//
// Solve is called with at least one record. The slice is only valid
// during the call.
type QEFSolver interface {
	Solve(edges []EdgeRecord) vec.Vec2
}

// Projection minimises the quadratic error function iteratively, without
// forming a matrix.
//
// The estimate starts at the mean of the crossing points. Each iteration
// projects the current estimate onto every tangent line and replaces it by
// the mean of the projections. If all tangent lines are nearly parallel the
// estimate can leave the cell; no clamping is done.
type Projection struct {
	// Iterations is the number of refinement steps. Zero gives the mean of
	// the crossing points.
	Iterations int
}

// Solve implements the [QEFSolver] interface.
func (s Projection) Solve(edges []EdgeRecord) vec.Vec2 {
	m := meanPoint(edges)
	scale := 1 / float64(len(edges))
	for range s.Iterations {
		var sum vec.Vec2
		for _, r := range edges {
			t := m.Dot(r.N) - r.P.Dot(r.N)
			sum = sum.Add(m.Sub(r.N.Mul(t)))
		}
		m = sum.Mul(scale)
	}
	return m
}

// PseudoInverse minimises the quadratic error function by linear least
// squares, using the Moore–Penrose pseudo-inverse.
//
// Each record contributes the row N·v = N·P. The system is solved relative
// to the mean m of the crossing points, that is for d = v - m with rows
// N·d = N·(P - m). If Bias is positive, the rows Bias·d.X = 0 and
// Bias·d.Y = 0 are added. They pull the solution towards m and keep the
// system well determined when the normals do not span the plane.
// A larger Bias gives more stable but less accurate vertices.
type PseudoInverse struct {
	Bias float64
}

// NewPseudoInverse returns a PseudoInverse solver with the default bias.
func NewPseudoInverse() PseudoInverse {
	return PseudoInverse{Bias: defaultBias}
}

// Solve implements the [QEFSolver] interface.
func (s PseudoInverse) Solve(edges []EdgeRecord) vec.Vec2 {
	m := meanPoint(edges)

	n := len(edges)
	if s.Bias > 0 {
		n += 2
	}
	a := mat.NewDense(n, 2, nil)
	b := mat.NewVecDense(n, nil)
	for i, r := range edges {
		a.Set(i, 0, r.N.X)
		a.Set(i, 1, r.N.Y)
		b.SetVec(i, r.P.Sub(m).Dot(r.N))
	}
	if s.Bias > 0 {
		a.Set(n-2, 0, s.Bias)
		a.Set(n-1, 1, s.Bias)
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return m
	}
	rank := svd.Rank(rankTolerance)
	if rank == 0 {
		return m
	}
	var d mat.VecDense
	svd.SolveVecTo(&d, b, rank)
	return m.Add(vec.Vec2{X: d.AtVec(0), Y: d.AtVec(1)})
}

// meanPoint returns the mean of the crossing points.
func meanPoint(edges []EdgeRecord) vec.Vec2 {
	var sum vec.Vec2
	for _, r := range edges {
		sum = sum.Add(r.P)
	}
	return sum.Mul(1 / float64(len(edges)))
}

// rankTolerance is the relative size below which singular values are
// treated as zero by [PseudoInverse].
const rankTolerance = 1e-12
