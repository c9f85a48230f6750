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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Line is a line segment from A to B.
type Line struct {
	A, B vec.Vec2
}

// Recorder is a [PointSink] which stores everything drawn to it.
type Recorder struct {
	Lines  []Line
	Points []vec.Vec2
}

// DrawLine implements the [Sink] interface.
func (r *Recorder) DrawLine(a, b vec.Vec2) {
	r.Lines = append(r.Lines, Line{A: a, B: b})
}

// DrawPoint implements the [PointSink] interface.
func (r *Recorder) DrawPoint(p vec.Vec2) {
	r.Points = append(r.Points, p)
}

// Reset discards all recorded lines and points, keeping the capacity of
// the buffers.
func (r *Recorder) Reset() {
	r.Lines = r.Lines[:0]
	r.Points = r.Points[:0]
}

// Replay sends all recorded lines to sink, in the order they were
// recorded. If sink is a [PointSink], the recorded points follow.
func (r *Recorder) Replay(sink Sink) {
	for _, l := range r.Lines {
		sink.DrawLine(l.A, l.B)
	}
	if ps, ok := sink.(PointSink); ok {
		for _, p := range r.Points {
			ps.DrawPoint(p)
		}
	}
}

// Path returns the recorded lines as a path, with one subpath per line.
func (r *Recorder) Path() *path.Data {
	p := &path.Data{}
	for _, l := range r.Lines {
		p = p.MoveTo(l.A).LineTo(l.B)
	}
	return p
}
