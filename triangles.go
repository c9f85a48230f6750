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
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/vec"
)

// triangleCases maps the vertex mask of a triangle (A=1, B=2, C=4; a bit is
// set if the value is positive) to a permutation of the vertices which
// puts the vertex with the lone sign first. The contour then crosses the
// two edges starting at the first vertex.
// Masks 0 and 7 are never looked up.
var triangleCases = [8][3]uint8{
	{0, 0, 0},
	{0, 1, 2}, // A alone
	{1, 0, 2}, // B alone
	{2, 0, 1}, // C alone
	{2, 0, 1}, // C alone
	{1, 0, 2}, // B alone
	{0, 1, 2}, // A alone
	{0, 0, 0},
}

// triangleLattice describes the lattice used by marching triangles.
//
// Rows of lattice points are h = s·√3/2 apart. Points in even rows start at
// x = -s/2, points in odd rows at x = 0; within a row the points are s
// apart. Between two adjacent rows there are triangles with their base on
// the even row and triangles with their base on the odd row.
type triangleLattice struct {
	s, h     float64
	wideEven int // number of triangles with base on an even row
	wideOdd  int // number of triangles with base on an odd row
	high     int // number of triangle rows
}

func (e *Extractor) lattice() triangleLattice {
	s := e.TriangleSide
	if s <= 0 {
		panic(fmt.Sprintf("isoline: invalid triangle side %g", s))
	}
	if e.Width <= 0 || e.Height <= 0 {
		panic(fmt.Sprintf("isoline: invalid image size %gx%g", e.Width, e.Height))
	}
	h := s * math.Sqrt(3) / 2
	return triangleLattice{
		s:        s,
		h:        h,
		wideEven: int(math.Ceil(0.5 + e.Width/s)),
		wideOdd:  int(math.Ceil(e.Width / s)),
		high:     int(math.Ceil(e.Height / h)),
	}
}

// fillRow samples f at the lattice points of row i.
func (l *triangleLattice) fillRow(f Field, row []float64, i int) {
	x0, n := 0.0, l.wideOdd
	if i&1 == 0 {
		x0, n = -0.5*l.s, l.wideEven
	}
	y := float64(i) * l.h
	for k := range n + 1 {
		row[k] = f.Eval(x0+float64(k)*l.s, y)
	}
}

// MarchingTriangles extracts the contour of f with the marching triangles
// method, using equilateral triangles of side e.TriangleSide, and sends one
// segment per crossed triangle to sink.
func (e *Extractor) MarchingTriangles(f Field, sink Sink) {
	l := e.lattice()

	e.rows.reset(l.wideEven + 1)
	l.fillRow(f, e.rows.row(0), 0)

	numSegments := 0
	var vals [3]float64
	for i := range l.high {
		l.fillRow(f, e.rows.row(i+1), i+1)

		even, odd := e.rows.row(i), e.rows.row(i+1)
		evenY, oddY := float64(i)*l.h, float64(i+1)*l.h
		if i&1 == 1 {
			even, odd = odd, even
			evenY, oddY = oddY, evenY
		}

		// triangles with base on the even row
		for k := range l.wideEven {
			vals = [3]float64{even[k], even[k+1], odd[k]}
			x := -0.5*l.s + float64(k)*l.s
			if e.triangle(sink, &vals, l.s, x, evenY, oddY) {
				numSegments++
			}
		}

		// triangles with base on the odd row
		for k := range l.wideOdd {
			vals = [3]float64{odd[k], odd[k+1], even[k+1]}
			x := float64(k) * l.s
			if e.triangle(sink, &vals, l.s, x, oddY, evenY) {
				numSegments++
			}
		}
	}

	Logger().Debug("isoline extracted",
		slog.String("method", Triangles.String()),
		slog.Float64("side", l.s),
		slog.Int("rows", l.high),
		slog.Int("segments", numSegments))
}

// triangle emits the contour segment of one triangle. The vertices are
// A = (x, baseY), B = (x+s, baseY) and C = (x+s/2, apexY), with field values
// vals. The return value reports whether a segment was emitted.
func (e *Extractor) triangle(sink Sink, vals *[3]float64, s, x, baseY, apexY float64) bool {
	mask := 0
	for i, v := range vals {
		if v > 0 {
			mask |= 1 << i
		}
	}
	if mask == 0 || mask == 7 {
		return false
	}

	pts := [3]vec.Vec2{
		{X: x, Y: baseY},
		{X: x + s, Y: baseY},
		{X: x + 0.5*s, Y: apexY},
	}
	idx := triangleCases[mask]
	a, b, c := pts[idx[0]], pts[idx[1]], pts[idx[2]]
	va, vb, vc := vals[idx[0]], vals[idx[1]], vals[idx[2]]

	if e.Grid != nil {
		e.Grid.DrawLine(a, b)
		e.Grid.DrawLine(a, c)
		e.Grid.DrawLine(b, c)
	}

	p := lerp(a, b, CrossingFraction(va, vb))
	q := lerp(a, c, CrossingFraction(va, vc))
	sink.DrawLine(p, q)
	return true
}
