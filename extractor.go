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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Extractor extracts contour lines from scalar fields.
// The caller creates one instance and reuses it for many fields.
// Internal buffers grow as needed but never shrink.
//
// An Extractor is not safe for concurrent use.
type Extractor struct {
	// Width and Height give the image size. The grid covers the rectangle
	// [0, Width] × [0, Height]. Both must be > 0.
	Width, Height float64

	// GridWidth and GridHeight give the number of grid cells in each
	// direction, for marching squares and dual contouring.
	// Both must be > 0.
	GridWidth, GridHeight int

	// TriangleSide is the side length of the triangles used by marching
	// triangles, in image units. Must be > 0.
	TriangleSide float64

	// GradientStep is the finite difference step used to estimate field
	// normals for dual contouring. Changing the step changes the normals,
	// and with them the vertex positions. Must be > 0.
	GradientStep float64

	// Solver places the dual contouring vertex of a cell.
	Solver QEFSolver

	// Grid, if not nil, receives debug output: the outlines of all cells
	// which produced a segment and, for dual contouring, the crossed grid
	// edges. If Grid is a [PointSink], edge crossings and cell vertices are
	// marked as points.
	Grid Sink

	// NormalLength is the length of the normal ticks drawn to Grid at each
	// dual contouring edge crossing. Zero disables the ticks.
	NormalLength float64

	rows    rowRing    // two most recent sample rows (squares, triangles)
	corners []float64  // full corner matrix (dual contouring)
	edgesX  []crossing // horizontal grid edges, (GridHeight+1) × GridWidth
	edgesY  []crossing // vertical grid edges, GridHeight × (GridWidth+1)
	records []EdgeRecord
	verts   VertexGrid
}

// NewExtractor returns an Extractor for an image of the given size, using a
// grid of gridWidth × gridHeight cells. Triangles default to the width of a
// grid cell, the remaining fields are set to their default values.
func NewExtractor(width, height float64, gridWidth, gridHeight int) *Extractor {
	e := &Extractor{}
	e.Reset(width, height, gridWidth, gridHeight)
	return e
}

// Reset sets all parameters to the values used by [NewExtractor],
// keeping the capacity of the internal buffers.
func (e *Extractor) Reset(width, height float64, gridWidth, gridHeight int) {
	e.Width = width
	e.Height = height
	e.GridWidth = gridWidth
	e.GridHeight = gridHeight
	e.TriangleSide = 0
	if gridWidth > 0 {
		e.TriangleSide = width / float64(gridWidth)
	}
	e.GradientStep = defaultGradientStep
	e.Solver = Projection{Iterations: defaultIterations}
	e.Grid = nil
	e.NormalLength = 0

	e.rows.reset(0)
	e.corners = e.corners[:0]
	e.edgesX = e.edgesX[:0]
	e.edgesY = e.edgesY[:0]
	e.records = e.records[:0]
}

// Extract runs the given method on f and sends the contour to sink.
func (e *Extractor) Extract(m Method, f Field, sink Sink) {
	switch m {
	case Squares:
		e.MarchingSquares(f, sink)
	case Triangles:
		e.MarchingTriangles(f, sink)
	case Dual:
		e.DualContour(f, sink)
	default:
		panic(fmt.Sprintf("isoline: unknown method %d", int(m)))
	}
}

func (e *Extractor) checkGrid() {
	if e.Width <= 0 || e.Height <= 0 {
		panic(fmt.Sprintf("isoline: invalid image size %gx%g", e.Width, e.Height))
	}
	if e.GridWidth <= 0 || e.GridHeight <= 0 {
		panic(fmt.Sprintf("isoline: invalid grid size %dx%d", e.GridWidth, e.GridHeight))
	}
}

// cellSize returns the size of a grid cell in image units.
func (e *Extractor) cellSize() (w, h float64) {
	return e.Width / float64(e.GridWidth), e.Height / float64(e.GridHeight)
}

// node returns the image position of grid node (x, y).
func (e *Extractor) node(x, y int) vec.Vec2 {
	return vec.Vec2{
		X: float64(x) * e.Width / float64(e.GridWidth),
		Y: float64(y) * e.Height / float64(e.GridHeight),
	}
}

// cellToImage maps a point in the local coordinates [0,1]×[0,1] of cell
// (x, y) to image space.
func (e *Extractor) cellToImage(x, y int, local vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: (float64(x) + local.X) * e.Width / float64(e.GridWidth),
		Y: (float64(y) + local.Y) * e.Height / float64(e.GridHeight),
	}
}

// fillGridRow samples f at the GridWidth+1 nodes of grid row y.
func (e *Extractor) fillGridRow(f Field, row []float64, y int) {
	for x := range e.GridWidth + 1 {
		p := e.node(x, y)
		row[x] = f.Eval(p.X, p.Y)
	}
}

// drawCell sends the outline of grid cell (x, y) to the debug sink.
func (e *Extractor) drawCell(x, y int) {
	p00 := e.node(x, y)
	p10 := e.node(x+1, y)
	p01 := e.node(x, y+1)
	p11 := e.node(x+1, y+1)
	e.Grid.DrawLine(p00, p10)
	e.Grid.DrawLine(p00, p01)
	e.Grid.DrawLine(p11, p10)
	e.Grid.DrawLine(p11, p01)
}

// rowRing holds the two most recently sampled rows of a grid.
// Row i lives in slot i&1, so sampling row i+1 overwrites row i-1.
type rowRing struct {
	buf [2][]float64
}

// reset makes sure that both rows can hold n samples.
func (r *rowRing) reset(n int) {
	for i := range r.buf {
		r.buf[i] = slices.Grow(r.buf[i][:0], n)[:n]
	}
}

// row returns the buffer for row i.
func (r *rowRing) row(i int) []float64 {
	return r.buf[i&1]
}

// Default values for the extractor parameters.
const (
	// defaultGradientStep is the central difference step, in image units.
	defaultGradientStep = 1.0

	// defaultIterations is the number of refinement steps of the default
	// [Projection] solver.
	defaultIterations = 6

	// defaultBias is the default weight of the bias rows of
	// [PseudoInverse]. Values of 0.01-0.05 work well for cells of 5-20
	// image units.
	defaultBias = 0.05
)
