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
	"seehuhn.de/go/isoline/field"
)

// noiseScenes use the same noise field at 1000×1000 with a 100×100 grid.
var noiseScenes = []Scene{
	{
		Name:       "squares",
		Field:      noise(1, 0.005, 0),
		Method:     isoline.Squares,
		Width:      1000,
		Height:     1000,
		GridWidth:  100,
		GridHeight: 100,
	},
	{
		Name:       "triangles",
		Field:      noise(1, 0.005, 0),
		Method:     isoline.Triangles,
		Width:      1000,
		Height:     1000,
		GridWidth:  100,
		GridHeight: 100,
	},
	{
		Name:       "dual",
		Field:      noise(1, 0.005, 0),
		Method:     isoline.Dual,
		Width:      1000,
		Height:     1000,
		GridWidth:  100,
		GridHeight: 100,
	},

	// Small islands: the offset shrinks the positive regions.
	{
		Name:       "islands_dual",
		Field:      noise(7, 0.01, -0.4),
		Method:     isoline.Dual,
		Width:      400,
		Height:     400,
		GridWidth:  40,
		GridHeight: 40,
	},
}

func noise(seed int64, freq, offset float64) *field.Noise {
	n := field.NewNoise(seed)
	n.Frequency = freq
	n.Offset = offset
	return n
}
