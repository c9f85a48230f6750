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

package scenes

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/isoline"
	"seehuhn.de/go/isoline/field"
)

var circleScenes = []Scene{
	{
		Name:       "squares",
		Field:      field.Circle{Center: pt(253, 247), Radius: 180},
		Method:     isoline.Squares,
		Width:      500,
		Height:     500,
		GridWidth:  50,
		GridHeight: 50,
	},
	{
		Name:       "triangles",
		Field:      field.Circle{Center: pt(253, 247), Radius: 180},
		Method:     isoline.Triangles,
		Width:      500,
		Height:     500,
		GridWidth:  50,
		GridHeight: 50,
	},
	{
		Name:       "dual",
		Field:      field.Circle{Center: pt(253, 247), Radius: 180},
		Method:     isoline.Dual,
		Width:      500,
		Height:     500,
		GridWidth:  50,
		GridHeight: 50,
	},

	// Coarse grid: the difference between the methods is most visible.
	{
		Name:       "coarse_squares",
		Field:      field.Circle{Center: pt(64, 64), Radius: 45},
		Method:     isoline.Squares,
		Width:      128,
		Height:     128,
		GridWidth:  6,
		GridHeight: 6,
	},
	{
		Name:       "coarse_dual",
		Field:      field.Circle{Center: pt(64, 64), Radius: 45},
		Method:     isoline.Dual,
		Width:      128,
		Height:     128,
		GridWidth:  6,
		GridHeight: 6,
	},

	// A ring: the inside of the small circle is negative again.
	{
		Name:       "ring_dual",
		Field:      ring(pt(100, 100), 80, pt(110, 95), 40),
		Method:     isoline.Dual,
		Width:      200,
		Height:     200,
		GridWidth:  25,
		GridHeight: 25,
	},
}

// ring is positive inside the outer circle, except for the inside of the
// inner circle.
func ring(outer vec.Vec2, r1 float64, inner vec.Vec2, r2 float64) isoline.Field {
	a := field.Circle{Center: outer, Radius: r1}
	b := field.Negate{F: field.Circle{Center: inner, Radius: r2}}
	return isoline.FieldFunc(func(x, y float64) float64 {
		return math.Min(a.Eval(x, y), b.Eval(x, y))
	})
}
