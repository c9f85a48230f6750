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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Crosses reports whether the contour crosses the edge between two samples
// with values a and b. Zero counts as not positive, so an edge from 0 to a
// positive value is crossed but an edge from 0 to a negative value is not.
func Crosses(a, b float64) bool {
	return (a > 0) != (b > 0)
}

// CrossingFraction returns the position of the zero crossing on the edge
// from a sample with value a to a sample with value b, as a fraction of the
// edge length measured from a.
//
// The caller must make sure that [Crosses] holds. This implies a != b, so
// the division is safe.
func CrossingFraction(a, b float64) float64 {
	return a / (a - b)
}

// Gradient returns the unit gradient of f at p, estimated by central
// differences with the given step. If the estimate is zero, the direction
// (1, 0) is returned.
func Gradient(f Field, p vec.Vec2, step float64) vec.Vec2 {
	dx := f.Eval(p.X+step, p.Y) - f.Eval(p.X-step, p.Y)
	dy := f.Eval(p.X, p.Y+step) - f.Eval(p.X, p.Y-step)

	l := math.Hypot(dx, dy)
	if l == 0 {
		return vec.Vec2{X: 1, Y: 0}
	}
	return vec.Vec2{X: dx / l, Y: dy / l}
}

// lerp returns the point at fraction t on the segment from a to b.
func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
