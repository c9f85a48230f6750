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

// Package raster draws isolines into grey-scale images.
//
// The [Rasterizer] turns paths into anti-aliased pixel coverage, using
// signed area accumulation and the nonzero winding rule. A [Canvas] wraps a
// Rasterizer and an [image.Gray], so that it can be used as the sink of an
// isoline extractor.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row. Coverage[i] is the
// fraction of pixel (xMin+i, y) covered by the shape, between 0 and 1.
// The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device space, stored with
// y0 < y1. The original direction is kept in dir.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // slope, (x1-x0)/(y1-y0)
	dir    float32 // +1 if the segment pointed down, -1 if up
}

// xAt returns the x-coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasterizer converts paths into pixel coverage values.
// Create one instance and reuse it: the internal buffers grow as needed but
// are never freed.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space, where pixel (x, y) is the
	// square [x, x+1] × [y, y+1]. Must be invertible.
	CTM matrix.Matrix

	// Clip limits the output, in device coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it. Must be positive.
	Flatness float64

	// Width is the line width for [Rasterizer.Stroke], in user space units.
	Width float64

	// Cap selects the shape of line ends for [Rasterizer.Stroke].
	Cap graphics.LineCapStyle

	edges  []edge
	active []int     // indices into edges, for the current row
	cover  []float32 // per-pixel change of the winding count
	area   []float32 // per-pixel signed area left of the edges

	// bounding box of edges, in device space
	bbox      rect.Rect
	bboxEmpty bool

	// stroke outlines: outline i is outline[outlineStart[i]:outlineStart[i+1]]
	outline      []vec.Vec2
	outlineStart []int
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// the identity transformation, a line width of 1 and butt caps.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the parameters set by [NewRasterizer], keeping the
// capacity of the internal buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
}

// FillNonZero fills the path p with the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.startEdges()

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.addEdge(cur, start)
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addEdge(cur, start)
			cur = start
		}
	}
	r.addEdge(cur, start)

	r.fillEdges(emit)
}

// toDevice applies the CTM to a point.
func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the length of the vector v after applying the
// linear part of the CTM.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuadratic approximates the quadratic Bézier curve with control
// points p0, p1, p2 by straight segments, which are passed to emit.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// The distance between the curve and its chord is at most
	// |p0 - 2p1 + p2|/4.
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic approximates the cubic Bézier curve with control points
// p0, ..., p3 by straight segments, which are passed to emit.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	// Wang's formula
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)))
	n := 1
	if x := math.Sqrt(3 * dev / (4 * r.Flatness)); x > 1 {
		n = int(math.Ceil(x))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}

// startEdges clears the edge list.
func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge appends the segment from a to b, given in user space, to the
// edge list. Horizontal segments do not change the coverage and are
// dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	a = r.toDevice(a)
	b = r.toDevice(b)

	var dir float32 = 1
	if b.Y < a.Y {
		a, b = b, a
		dir = -1
	}
	dy := b.Y - a.Y
	if dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
		dir:  dir,
	})

	if r.bboxEmpty {
		r.bbox = rect.Rect{LLx: a.X, LLy: a.Y, URx: a.X, URy: b.Y}
		r.bboxEmpty = false
	}
	r.bbox.LLx = min(r.bbox.LLx, a.X, b.X)
	r.bbox.URx = max(r.bbox.URx, a.X, b.X)
	r.bbox.LLy = min(r.bbox.LLy, a.Y)
	r.bbox.URy = max(r.bbox.URy, b.Y)
}

// pixelRange returns the pixel rectangle touched by the edges, clipped to
// r.Clip. If the rectangle is empty, ok is false.
func (r *Rasterizer) pixelRange() (xMin, xMax, yMin, yMax int, ok bool) {
	if r.bboxEmpty {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	ok = xMin < xMax && yMin < yMax
	return
}

// fillEdges scan converts the collected edges with the nonzero winding rule.
//
// The edges are sorted by their top end. Going down the pixel rows, edges
// join the active list when their top end is reached and leave it once
// their bottom end is passed.
func (r *Rasterizer) fillEdges(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelRange()
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, top, bottom, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			if next == len(r.edges) {
				break
			}
			continue
		}

		integrateNonZero(r.cover, r.area)
		if cov, offs := trimZeros(r.cover); cov != nil {
			emit(y, xMin+offs, cov)
		}
	}
}

// Each edge changes the winding count of all pixels to its right.
// For pixel column i of the current row, cover[i] holds the total
// (signed) height of the edge pieces inside the column, and area[i]
// holds the part of that height which lies to the right of the pieces,
// that is the coverage the pieces contribute to pixel i itself.
// Summing cover from the left gives the winding count carried into each
// pixel.

// accumulate adds the contribution of edge e to the row between heights
// top and bottom. Pixels left of xMin are folded into column 0, pixels
// right of xMax are ignored.
func (r *Rasterizer) accumulate(e *edge, top, bottom float64, xMin, xMax int) {
	ya := max(top, e.y0)
	yb := min(bottom, e.y1)
	if yb <= ya {
		return
	}

	xa, xb := e.xAt(ya), e.xAt(yb)
	colA := int(math.Floor(min(xa, xb)))
	colB := int(math.Floor(max(xa, xb)))

	if colA == colB {
		r.deposit(colA, e.dir*float32(yb-ya), (xa+xb)/2, xMin, xMax)
		return
	}

	// Split the piece at the pixel column boundaries.
	dydx := 1 / e.dxdy
	for col := colA; col <= colB; col++ {
		y1 := e.y0 + dydx*(float64(col)-e.x0)
		y2 := e.y0 + dydx*(float64(col+1)-e.x0)
		lo := max(min(y1, y2), ya)
		hi := min(max(y1, y2), yb)
		if hi <= lo {
			continue
		}
		r.deposit(col, e.dir*float32(hi-lo), e.xAt((lo+hi)/2), xMin, xMax)
	}
}

// deposit records an edge piece of signed height h in pixel column col,
// with average x-coordinate xMid.
func (r *Rasterizer) deposit(col int, h float32, xMid float64, xMin, xMax int) {
	switch {
	case col < xMin:
		r.cover[0] += h
		r.area[0] += h
	case col < xMax:
		i := col - xMin
		r.cover[i] += h
		r.area[i] += h * float32(float64(col+1)-xMid)
	}
}

// integrateNonZero turns the accumulated cover and area of one row into
// coverage values. The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var winding float32
	for i := range cover {
		c := winding + area[i]
		winding += cover[i]
		if c < 0 {
			c = -c
		}
		cover[i] = min(c, 1)
	}
}

// trimZeros removes leading and trailing zeros from the coverage of a row.
// It returns nil if all values are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent, in device
	// pixels, of an edge which contributes to the coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which stroke segments are
	// treated as single points.
	zeroLengthThreshold = 1e-10
)
