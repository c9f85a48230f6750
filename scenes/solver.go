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

// solverScenes compare the two vertex placement strategies on a shape with
// sharp corners.
var solverScenes = []Scene{
	{
		Name:       "square_projection",
		Field:      box(64, 64, 40),
		Method:     isoline.Dual,
		Width:      128,
		Height:     128,
		GridWidth:  9,
		GridHeight: 9,
		Solver:     isoline.Projection{Iterations: 6},
	},
	{
		Name:       "square_pseudoinverse",
		Field:      box(64, 64, 40),
		Method:     isoline.Dual,
		Width:      128,
		Height:     128,
		GridWidth:  9,
		GridHeight: 9,
		Solver:     isoline.NewPseudoInverse(),
	},
	{
		Name:       "circle_pseudoinverse",
		Field:      field.Circle{Center: pt(253, 247), Radius: 180},
		Method:     isoline.Dual,
		Width:      500,
		Height:     500,
		GridWidth:  50,
		GridHeight: 50,
		Solver:     isoline.NewPseudoInverse(),
	},
}

// box returns a field which is positive inside the axis-parallel square with
// the given center and half side length.
func box(cx, cy, half float64) isoline.Field {
	return isoline.FieldFunc(func(x, y float64) float64 {
		return half - max(math.Abs(x-cx), math.Abs(y-cy))
	})
}
