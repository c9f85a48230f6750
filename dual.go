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
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// crossing is a grid edge, as seen by dual contouring.
// If ok is false, the edge is not crossed and p and n are unused.
type crossing struct {
	ok bool
	p  vec.Vec2 // crossing point
	n  vec.Vec2 // unit field gradient at p
}

// VertexGrid holds the dual contouring vertices of all grid cells.
type VertexGrid struct {
	// Width and Height give the number of cells.
	Width, Height int

	// CellWidth and CellHeight give the size of a cell in image units.
	CellWidth, CellHeight float64

	// Pos[y*Width+x] is the vertex of cell (x, y).
	// Only entries with OK[y*Width+x] set are meaningful.
	Pos []vec.Vec2
	OK  []bool
}

// At returns the vertex of cell (x, y). If the contour does not pass
// through the cell, ok is false.
func (g *VertexGrid) At(x, y int) (v vec.Vec2, ok bool) {
	i := y*g.Width + x
	return g.Pos[i], g.OK[i]
}

// CellRect returns the image-space rectangle covered by cell (x, y).
func (g *VertexGrid) CellRect(x, y int) rect.Rect {
	return rect.Rect{
		LLx: float64(x) * g.CellWidth,
		LLy: float64(y) * g.CellHeight,
		URx: float64(x+1) * g.CellWidth,
		URy: float64(y+1) * g.CellHeight,
	}
}

// DualContour extracts the contour of f with the dual contouring method.
//
// Every cell crossed by the contour gets one vertex, placed by e.Solver.
// Two vertices in adjacent cells are joined by a segment if the grid edge
// between the two cells is crossed.
func (e *Extractor) DualContour(f Field, sink Sink) {
	g := e.PlaceVertices(f)

	gw, gh := e.GridWidth, e.GridHeight
	numSegments := 0

	// neighbours across horizontal grid edges
	for y := 1; y < gh; y++ {
		for x := range gw {
			if e.edgesX[y*gw+x].ok {
				sink.DrawLine(g.Pos[(y-1)*gw+x], g.Pos[y*gw+x])
				numSegments++
			}
		}
	}

	// neighbours across vertical grid edges
	for y := range gh {
		for x := 1; x < gw; x++ {
			if e.edgesY[y*(gw+1)+x].ok {
				sink.DrawLine(g.Pos[y*gw+x-1], g.Pos[y*gw+x])
				numSegments++
			}
		}
	}

	Logger().Debug("isoline extracted",
		slog.String("method", Dual.String()),
		slog.Int("grid_width", gw),
		slog.Int("grid_height", gh),
		slog.Int("segments", numSegments))
}

// PlaceVertices runs the first phase of dual contouring: it finds all edge
// crossings of f on the grid and places one vertex in every crossed cell.
//
// The returned grid is owned by the Extractor and is only valid until the
// next call of a method on e.
func (e *Extractor) PlaceVertices(f Field) *VertexGrid {
	e.checkGrid()
	gw, gh := e.GridWidth, e.GridHeight
	cw, ch := e.cellSize()

	// field values at all grid nodes
	e.corners = slices.Grow(e.corners[:0], (gw+1)*(gh+1))[:(gw+1)*(gh+1)]
	for y := range gh + 1 {
		e.fillGridRow(f, e.corners[y*(gw+1):(y+1)*(gw+1)], y)
	}
	corner := func(x, y int) float64 { return e.corners[y*(gw+1)+x] }

	// horizontal edges
	e.edgesX = slices.Grow(e.edgesX[:0], (gh+1)*gw)[:(gh+1)*gw]
	for y := range gh + 1 {
		for x := range gw {
			a, b := corner(x, y), corner(x+1, y)
			c := &e.edgesX[y*gw+x]
			*c = crossing{ok: Crosses(a, b)}
			if c.ok {
				c.p = e.node(x, y).Add(vec.Vec2{X: cw * CrossingFraction(a, b)})
				c.n = Gradient(f, c.p, e.GradientStep)
			}
		}
	}

	// vertical edges
	e.edgesY = slices.Grow(e.edgesY[:0], gh*(gw+1))[:gh*(gw+1)]
	for y := range gh {
		for x := range gw + 1 {
			a, b := corner(x, y), corner(x, y+1)
			c := &e.edgesY[y*(gw+1)+x]
			*c = crossing{ok: Crosses(a, b)}
			if c.ok {
				c.p = e.node(x, y).Add(vec.Vec2{Y: ch * CrossingFraction(a, b)})
				c.n = Gradient(f, c.p, e.GradientStep)
			}
		}
	}

	if e.Grid != nil {
		e.drawCrossings()
	}

	g := &e.verts
	g.Width, g.Height = gw, gh
	g.CellWidth, g.CellHeight = cw, ch
	g.Pos = slices.Grow(g.Pos[:0], gw*gh)[:gw*gh]
	g.OK = slices.Grow(g.OK[:0], gw*gh)[:gw*gh]

	numVertices := 0
	for y := range gh {
		for x := range gw {
			e.records = e.records[:0]
			for _, c := range [4]*crossing{
				&e.edgesX[y*gw+x],       // top
				&e.edgesX[(y+1)*gw+x],   // bottom
				&e.edgesY[y*(gw+1)+x],   // left
				&e.edgesY[y*(gw+1)+x+1], // right
			} {
				if c.ok {
					e.records = append(e.records, EdgeRecord{P: c.p, N: c.n})
				}
			}

			i := y*gw + x
			if len(e.records) == 0 {
				g.Pos[i] = vec.Vec2{}
				g.OK[i] = false
				continue
			}
			g.Pos[i] = e.Solver.Solve(e.records)
			g.OK[i] = true
			numVertices++

			if ps, ok := e.Grid.(PointSink); ok {
				ps.DrawPoint(g.Pos[i])
			}
		}
	}

	Logger().Debug("isoline vertices placed",
		slog.Int("grid_width", gw),
		slog.Int("grid_height", gh),
		slog.Int("vertices", numVertices))

	return g
}

// drawCrossings sends the crossed grid edges to the debug sink. If the sink
// can draw points, the crossing points are marked too, and normal ticks of
// length e.NormalLength are drawn.
func (e *Extractor) drawCrossings() {
	gw, gh := e.GridWidth, e.GridHeight
	ps, hasPoints := e.Grid.(PointSink)

	mark := func(c *crossing) {
		if !hasPoints {
			return
		}
		ps.DrawPoint(c.p)
		if e.NormalLength > 0 {
			e.Grid.DrawLine(c.p, c.p.Add(c.n.Mul(e.NormalLength)))
		}
	}

	for y := range gh + 1 {
		for x := range gw {
			if c := &e.edgesX[y*gw+x]; c.ok {
				e.Grid.DrawLine(e.node(x, y), e.node(x+1, y))
				mark(c)
			}
		}
	}
	for y := range gh {
		for x := range gw + 1 {
			if c := &e.edgesY[y*(gw+1)+x]; c.ok {
				e.Grid.DrawLine(e.node(x, y), e.node(x, y+1))
				mark(c)
			}
		}
	}
}
