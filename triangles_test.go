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
	"math"
	"testing"
)

func TestTriangleCases(t *testing.T) {
	for mask := 1; mask < 7; mask++ {
		idx := triangleCases[mask]
		lone := mask&(1<<idx[0]) != 0
		for _, other := range idx[1:] {
			if (mask&(1<<other) != 0) == lone {
				t.Errorf("mask %d: vertex %d has the same sign as vertex %d",
					mask, other, idx[0])
			}
		}
		if idx[1] == idx[2] || idx[0] == idx[1] || idx[0] == idx[2] {
			t.Errorf("mask %d: %v is not a permutation", mask, idx)
		}
		if triangleCases[7-mask] != idx {
			t.Errorf("mask %d: case differs from complement %d", mask, 7-mask)
		}
	}
}

func TestTrianglesVerticalLine(t *testing.T) {
	const c = 33.3
	e := NewExtractor(100, 100, 10, 10)
	rec := &Recorder{}
	e.MarchingTriangles(FieldFunc(func(x, y float64) float64 { return x - c }), rec)

	if len(rec.Lines) == 0 {
		t.Fatal("no segments")
	}
	maxY := 0.0
	for i, l := range rec.Lines {
		if math.Abs(l.A.X-c) > 1e-9 || math.Abs(l.B.X-c) > 1e-9 {
			t.Errorf("segment %d: %v is not on x=%g", i, l, c)
		}
		maxY = max(maxY, l.A.Y, l.B.Y)
	}
	if maxY < 100 {
		t.Errorf("segments end at y=%g, want to cover the image height", maxY)
	}
}

func TestTrianglesOnCircle(t *testing.T) {
	f := circleField(48.1, 53.6, 29.4)
	e := NewExtractor(100, 100, 10, 10)
	e.TriangleSide = 3
	rec := &Recorder{}
	e.MarchingTriangles(f, rec)

	if len(rec.Lines) < 50 {
		t.Fatalf("got %d segments, want a closed polygon", len(rec.Lines))
	}
	for i, l := range rec.Lines {
		if d := math.Abs(f.Eval(l.A.X, l.A.Y)); d > 0.05 {
			t.Errorf("segment %d: start point is %g away from the circle", i, d)
		}
	}
}

// countingField counts the calls of Eval.
type countingField struct {
	f     Field
	calls int
}

func (c *countingField) Eval(x, y float64) float64 {
	c.calls++
	return c.f.Eval(x, y)
}

func TestSampleOnce(t *testing.T) {
	flat := FieldFunc(func(x, y float64) float64 { return -1 })

	cases := []struct {
		method Method
		want   int
	}{
		{Squares, 11 * 11},
		// 7 even rows with 12 points, 6 odd rows with 11 points
		{Triangles, 7*12 + 6*11},
		{Dual, 11 * 11},
	}
	for _, c := range cases {
		e := NewExtractor(100, 100, 10, 10)
		f := &countingField{f: flat}
		e.Extract(c.method, f, &Recorder{})
		if f.calls != c.want {
			t.Errorf("%s: %d field evaluations, want %d", c.method, f.calls, c.want)
		}
	}
}
