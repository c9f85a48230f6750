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

// Package scenes contains example fields with the settings used to draw
// their contour lines.
package scenes

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/isoline"
)

// Scene defines a single contour extraction.
type Scene struct {
	Name         string            // lowercase a-z, 0-9 and _ only
	Field        isoline.Field     // the field to contour
	Method       isoline.Method    // extraction method
	Width        int               // image width
	Height       int               // image height
	GridWidth    int               // grid cells in x direction
	GridHeight   int               // grid cells in y direction
	TriangleSide float64           // zero-value means the width of a grid cell
	Solver       isoline.QEFSolver // nil means the extractor default
}

// Extractor returns an extractor configured for the scene.
func (s Scene) Extractor() *isoline.Extractor {
	e := isoline.NewExtractor(float64(s.Width), float64(s.Height), s.GridWidth, s.GridHeight)
	s.configure(e)
	return e
}

// Run extracts the contour lines of the scene and sends them to sink.
// If grid is not nil, it receives the debug output of the extractor.
func (s Scene) Run(sink, grid isoline.Sink) {
	e := s.Extractor()
	e.Grid = grid
	e.Extract(s.Method, s.Field, sink)
}

// RunWith is like Run, but reuses the extractor e.
func (s Scene) RunWith(e *isoline.Extractor, sink, grid isoline.Sink) {
	e.Reset(float64(s.Width), float64(s.Height), s.GridWidth, s.GridHeight)
	s.configure(e)
	e.Grid = grid
	e.Extract(s.Method, s.Field, sink)
}

func (s Scene) configure(e *isoline.Extractor) {
	if s.TriangleSide > 0 {
		e.TriangleSide = s.TriangleSide
	}
	if s.Solver != nil {
		e.Solver = s.Solver
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
