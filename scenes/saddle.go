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
	"seehuhn.de/go/isoline"
)

// saddleScenes contain cells whose corners alternate in sign. Marching
// squares leaves these cells empty, marching triangles and dual contouring
// connect them.
var saddleScenes = []Scene{
	{
		Name:       "squares",
		Field:      saddle(52, 47),
		Method:     isoline.Squares,
		Width:      100,
		Height:     100,
		GridWidth:  10,
		GridHeight: 10,
	},
	{
		Name:       "triangles",
		Field:      saddle(52, 47),
		Method:     isoline.Triangles,
		Width:      100,
		Height:     100,
		GridWidth:  10,
		GridHeight: 10,
	},
	{
		Name:       "dual",
		Field:      saddle(52, 47),
		Method:     isoline.Dual,
		Width:      100,
		Height:     100,
		GridWidth:  10,
		GridHeight: 10,
	},

	// A checkerboard with one saddle in every cell.
	{
		Name:       "checkerboard_squares",
		Field:      wave(10, 10),
		Method:     isoline.Squares,
		Width:      100,
		Height:     100,
		GridWidth:  10,
		GridHeight: 10,
	},
	{
		Name:       "checkerboard_dual",
		Field:      wave(10, 10),
		Method:     isoline.Dual,
		Width:      100,
		Height:     100,
		GridWidth:  10,
		GridHeight: 10,
	},
}

// saddle returns the field (x-cx)·(y-cy), which has a saddle point at
// (cx, cy).
func saddle(cx, cy float64) isoline.Field {
	return isoline.FieldFunc(func(x, y float64) float64 {
		return (x - cx) * (y - cy)
	})
}
