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

	"seehuhn.de/go/geom/vec"
)

// cellSide identifies one side of a square grid cell.
type cellSide uint8

const (
	sideNone   cellSide = iota
	sideTop             // tl–tr
	sideBottom          // bl–br
	sideLeft            // tl–bl
	sideRight           // tr–br
)

// squareCase is the contour segment of a cell, given by the two cell sides
// it connects. The zero value means "no segment".
type squareCase struct {
	from, to cellSide
}

// squareCases maps the corner mask of a cell (tl=1, tr=2, bl=4, br=8; a bit
// is set if the corner value is positive) to the segment through the cell.
//
// Masks 6 and 9 are saddles, where diagonal corners agree. One segment
// cannot represent them and no tie-break is attempted, so these cells
// produce no output.
var squareCases = [16]squareCase{
	// one corner differs from the other three
	1:  {sideLeft, sideTop},
	2:  {sideTop, sideRight},
	4:  {sideLeft, sideBottom},
	8:  {sideBottom, sideRight},
	7:  {sideBottom, sideRight},
	11: {sideLeft, sideBottom},
	13: {sideTop, sideRight},
	14: {sideLeft, sideTop},

	// two adjacent corners differ from the other two
	3:  {sideLeft, sideRight},
	12: {sideLeft, sideRight},
	5:  {sideTop, sideBottom},
	10: {sideTop, sideBottom},
}

// cellCorners holds the field values at the corners of a square cell.
type cellCorners struct {
	tl, tr, bl, br float64
}

func (c cellCorners) mask() int {
	m := 0
	if c.tl > 0 {
		m |= 1
	}
	if c.tr > 0 {
		m |= 2
	}
	if c.bl > 0 {
		m |= 4
	}
	if c.br > 0 {
		m |= 8
	}
	return m
}

// crossing returns the zero crossing on the given side, in cell-local
// coordinates. The side must be crossed.
func (c cellCorners) crossing(s cellSide) vec.Vec2 {
	switch s {
	case sideTop:
		return vec.Vec2{X: CrossingFraction(c.tl, c.tr), Y: 0}
	case sideBottom:
		return vec.Vec2{X: CrossingFraction(c.bl, c.br), Y: 1}
	case sideLeft:
		return vec.Vec2{X: 0, Y: CrossingFraction(c.tl, c.bl)}
	case sideRight:
		return vec.Vec2{X: 1, Y: CrossingFraction(c.tr, c.br)}
	default:
		panic("unreachable")
	}
}

// segment returns the contour segment through the cell in cell-local
// coordinates. If the cell is unanimous or a saddle, ok is false.
func (c cellCorners) segment() (a, b vec.Vec2, ok bool) {
	sc := squareCases[c.mask()]
	if sc.from == sideNone {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	return c.crossing(sc.from), c.crossing(sc.to), true
}

// MarchingSquares extracts the contour of f with the marching squares
// method and sends one segment per crossed cell to sink.
//
// Field values are kept for two grid rows at a time, so each grid node is
// evaluated exactly once.
func (e *Extractor) MarchingSquares(f Field, sink Sink) {
	e.checkGrid()

	gw, gh := e.GridWidth, e.GridHeight
	e.rows.reset(gw + 1)
	e.fillGridRow(f, e.rows.row(0), 0)

	numSegments := 0
	for y := range gh {
		e.fillGridRow(f, e.rows.row(y+1), y+1)
		top, bottom := e.rows.row(y), e.rows.row(y+1)

		for x := range gw {
			c := cellCorners{tl: top[x], tr: top[x+1], bl: bottom[x], br: bottom[x+1]}
			a, b, ok := c.segment()
			if !ok {
				continue
			}
			if e.Grid != nil {
				e.drawCell(x, y)
			}
			sink.DrawLine(e.cellToImage(x, y, a), e.cellToImage(x, y, b))
			numSegments++
		}
	}

	Logger().Debug("isoline extracted",
		slog.String("method", Squares.String()),
		slog.Int("grid_width", gw),
		slog.Int("grid_height", gh),
		slog.Int("segments", numSegments))
}
