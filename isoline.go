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

// Package isoline extracts the zero contour of a 2D scalar field.
//
// The field is sampled on a regular grid and the contour is approximated by
// straight line segments, using one of three methods: marching squares,
// marching triangles, or dual contouring. Segments are delivered in image
// coordinates to a [Sink]; the package never allocates images or chooses
// colours.
//
// A sample value of exactly zero counts as "not positive" everywhere in this
// package.
package isoline

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Field is a scalar field in image coordinates.
//
// Eval must be pure: the same arguments always give the same result.
// It is called at grid nodes and, for dual contouring, at arbitrary points
// near edge crossings.
type Field interface {
	Eval(x, y float64) float64
}

// FieldFunc adapts an ordinary function to the [Field] interface.
type FieldFunc func(x, y float64) float64

// Eval calls f(x, y).
func (f FieldFunc) Eval(x, y float64) float64 {
	return f(x, y)
}

// Sink receives the line segments of an extracted contour.
// Coordinates are in image space.
type Sink interface {
	DrawLine(a, b vec.Vec2)
}

// PointSink is a [Sink] which can also mark single points.
// Debug output (edge crossings, cell vertices) is only drawn to sinks
// which implement this interface.
type PointSink interface {
	Sink
	DrawPoint(p vec.Vec2)
}

// Method selects a contour extraction algorithm.
type Method int

const (
	Squares   Method = iota // marching squares
	Triangles               // marching triangles
	Dual                    // dual contouring
)

func (m Method) String() string {
	switch m {
	case Squares:
		return "squares"
	case Triangles:
		return "triangles"
	case Dual:
		return "dual"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}
