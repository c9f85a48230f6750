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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke draws the outline of path p with line width r.Width and line
// ends r.Cap.
//
// Every straight piece of the path is stroked on its own, with a cap at
// both ends. For round caps this is the same as stroking with round
// joins; for the other cap styles corners are not filled in. Isolines
// consist of short unconnected segments, so this is rarely visible.
//
// A subpath without length is drawn as a dot of diameter r.Width if the
// cap style is round or square, and is omitted for butt caps.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]

	var cur, start vec.Vec2
	hasLength := false
	endSubpath := func() {
		if !hasLength {
			r.addDot(start)
		}
	}

	inSubpath := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				endSubpath()
			}
			cur = p.Coords[k]
			start = cur
			hasLength = false
			inSubpath = true
			k++
		case path.CmdLineTo:
			hasLength = r.addSegment(cur, p.Coords[k]) || hasLength
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], func(a, b vec.Vec2) {
				hasLength = r.addSegment(a, b) || hasLength
			})
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], func(a, b vec.Vec2) {
				hasLength = r.addSegment(a, b) || hasLength
			})
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			hasLength = r.addSegment(cur, start) || hasLength
			cur = start
		}
	}
	if inSubpath {
		endSubpath()
	}

	r.fillOutlines(emit)
}

// addSegment adds the outline of the stroked segment from a to b.
// The outline runs along the +N side from a to b, around the end cap,
// back along the -N side and around the start cap.
// If the segment is too short to have a direction, nothing is added and
// false is returned.
func (r *Rasterizer) addSegment(a, b vec.Vec2) bool {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return false
	}
	t := d.Mul(1 / l)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	w := r.Width / 2

	r.outlineStart = append(r.outlineStart, len(r.outline))
	r.addCap(a, t.Mul(-1), w)
	r.outline = append(r.outline, a.Add(n.Mul(w)), b.Add(n.Mul(w)))
	r.addCap(b, t, w)
	r.outline = append(r.outline, b.Sub(n.Mul(w)), a.Sub(n.Mul(w)))
	return true
}

// addCap adds the cap at the end point p of a segment to the outline.
// Dir is the unit vector pointing away from the segment, w is half the
// line width. Butt caps add no points.
func (r *Rasterizer) addCap(p, dir vec.Vec2, w float64) {
	n := vec.Vec2{X: -dir.Y, Y: dir.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		tip := p.Add(dir.Mul(w))
		r.outline = append(r.outline, tip.Add(n.Mul(w)), tip.Sub(n.Mul(w)))
	case graphics.LineCapRound:
		// half circle from +n through dir to -n
		r.addArc(p, w, n, -math.Pi)
	}
}

// addDot adds a dot of diameter r.Width at p, shaped according to r.Cap.
// The outline has the same orientation as the segment outlines, so that
// overlaps do not cancel under the nonzero rule.
func (r *Rasterizer) addDot(p vec.Vec2) {
	w := r.Width / 2
	switch r.Cap {
	case graphics.LineCapRound:
		r.outlineStart = append(r.outlineStart, len(r.outline))
		r.addArc(p, w, vec.Vec2{X: 1}, -2*math.Pi)
	case graphics.LineCapSquare:
		r.outlineStart = append(r.outlineStart, len(r.outline))
		r.outline = append(r.outline,
			vec.Vec2{X: p.X + w, Y: p.Y + w},
			vec.Vec2{X: p.X + w, Y: p.Y - w},
			vec.Vec2{X: p.X - w, Y: p.Y - w},
			vec.Vec2{X: p.X - w, Y: p.Y + w},
		)
	}
}

// addArc adds points on the circle of the given radius around center,
// starting in direction from and turning by sweep radians (positive is
// counter-clockwise in a y-up coordinate system). The number of points is
// chosen so that the polygon stays within r.Flatness of the circle in
// device space.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, from vec.Vec2, sweep float64) {
	devRadius := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}))

	n := 1
	if devRadius > r.Flatness {
		// a chord of angle θ deviates from the circle by radius·(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = int(math.Ceil(math.Abs(sweep) / step))
	}
	n = max(n, 2)

	for i := range n + 1 {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: from.X*cos - from.Y*sin,
			Y: from.X*sin + from.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// fillOutlines fills all collected outlines together, with the nonzero
// winding rule.
func (r *Rasterizer) fillOutlines(emit EmitFunc) {
	if len(r.outlineStart) == 0 {
		return
	}

	r.startEdges()
	for i, start := range r.outlineStart {
		end := len(r.outline)
		if i+1 < len(r.outlineStart) {
			end = r.outlineStart[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 3 {
			continue
		}
		prev := poly[len(poly)-1]
		for _, q := range poly {
			r.addEdge(prev, q)
			prev = q
		}
	}

	r.fillEdges(emit)
}
