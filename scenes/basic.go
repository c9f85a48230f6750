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

	"seehuhn.de/go/isoline"
	"seehuhn.de/go/isoline/field"
)

var basicScenes = []Scene{
	// A field without sign changes has no contour.
	{
		Name:       "uniform",
		Field:      field.Constant(1),
		Method:     isoline.Squares,
		Width:      100,
		Height:     100,
		GridWidth:  10,
		GridHeight: 10,
	},

	// Straight lines are reproduced exactly by all three methods.
	{
		Name:       "plane_squares",
		Field:      field.Plane{A: 1, B: 0.5, C: -80},
		Method:     isoline.Squares,
		Width:      128,
		Height:     128,
		GridWidth:  16,
		GridHeight: 16,
	},
	{
		Name:       "plane_triangles",
		Field:      field.Plane{A: 1, B: 0.5, C: -80},
		Method:     isoline.Triangles,
		Width:      128,
		Height:     128,
		GridWidth:  16,
		GridHeight: 16,
	},
	{
		Name:       "plane_dual",
		Field:      field.Plane{A: 1, B: 0.5, C: -80},
		Method:     isoline.Dual,
		Width:      128,
		Height:     128,
		GridWidth:  16,
		GridHeight: 16,
	},

	// Non-square cells.
	{
		Name:       "plane_wide_cells",
		Field:      field.Plane{A: 0.3, B: 1, C: -70},
		Method:     isoline.Squares,
		Width:      200,
		Height:     100,
		GridWidth:  10,
		GridHeight: 20,
	},

	// Smaller triangles than grid cells.
	{
		Name:         "wave_fine_triangles",
		Field:        wave(20, 30),
		Method:       isoline.Triangles,
		Width:        200,
		Height:       200,
		GridWidth:    10,
		GridHeight:   10,
		TriangleSide: 5,
	},
}

// wave returns a field with a grid of round blobs, which are sx by sy units
// apart.
func wave(sx, sy float64) isoline.Field {
	return isoline.FieldFunc(func(x, y float64) float64 {
		return math.Sin(x*math.Pi/sx) + math.Cos(y*math.Pi/sy) - 0.3
	})
}
