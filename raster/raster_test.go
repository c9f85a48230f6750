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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/isoline"
)

var _ isoline.PointSink = (*Canvas)(nil)

// coverageImage renders with r into a w×h coverage buffer.
func coverageImage(w, h int, draw func(emit EmitFunc)) []float32 {
	buf := make([]float32, w*h)
	draw(func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	})
	return buf
}

func sum(buf []float32) float64 {
	total := 0.0
	for _, c := range buf {
		total += float64(c)
	}
	return total
}

// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
	got := coverageImage(10, 1, func(emit EmitFunc) { r.FillNonZero(triangle, emit) })

	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(got[x]-want)) > 1e-6 {
			t.Errorf("pixel %d: coverage %.4f, want %.4f", x, got[x], want)
		}
	}
}

func TestFillOrientation(t *testing.T) {
	square := func(clockwise bool) *path.Data {
		pts := []vec.Vec2{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}
		if clockwise {
			pts[1], pts[3] = pts[3], pts[1]
		}
		p := (&path.Data{}).MoveTo(pts[0])
		for _, q := range pts[1:] {
			p = p.LineTo(q)
		}
		return p // closed implicitly
	}

	for _, cw := range []bool{false, true} {
		r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
		buf := coverageImage(10, 10, func(emit EmitFunc) { r.FillNonZero(square(cw), emit) })
		if s := sum(buf); math.Abs(s-36) > 1e-4 {
			t.Errorf("clockwise=%t: total coverage %g, want 36", cw, s)
		}
	}
}

func TestFillClip(t *testing.T) {
	// a large square, clipped to a 4×4 window in the middle
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: -100, Y: -100}).
		LineTo(vec.Vec2{X: 100, Y: -100}).
		LineTo(vec.Vec2{X: 100, Y: 100}).
		LineTo(vec.Vec2{X: -100, Y: 100}).
		Close()

	r := NewRasterizer(rect.Rect{LLx: 3, LLy: 3, URx: 7, URy: 7})
	n := 0
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		if y < 3 || y >= 7 || xMin != 3 || len(coverage) != 4 {
			t.Errorf("row %d: got pixels %d..%d", y, xMin, xMin+len(coverage))
		}
		for _, c := range coverage {
			if c != 1 {
				t.Errorf("row %d: coverage %g, want 1", y, c)
			}
		}
		n++
	})
	if n != 4 {
		t.Errorf("got %d rows, want 4", n)
	}
}

func TestFillCTM(t *testing.T) {
	// unit square scaled by 4 and moved to (2, 3)
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 0, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Scale(4, 4).Translate(2, 3)
	buf := coverageImage(10, 10, func(emit EmitFunc) { r.FillNonZero(p, emit) })

	for y := range 10 {
		for x := range 10 {
			want := float32(0)
			if x >= 2 && x < 6 && y >= 3 && y < 7 {
				want = 1
			}
			if got := buf[y*10+x]; math.Abs(float64(got-want)) > 1e-5 {
				t.Errorf("pixel (%d, %d): coverage %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestFillCurve(t *testing.T) {
	// a circle of radius 8 made from four cubic arcs
	const k = 0.5522847498 * 8
	c := vec.Vec2{X: 10, Y: 10}
	p := (&path.Data{}).
		MoveTo(c.Add(vec.Vec2{X: 8})).
		CubeTo(c.Add(vec.Vec2{X: 8, Y: k}), c.Add(vec.Vec2{X: k, Y: 8}), c.Add(vec.Vec2{Y: 8})).
		CubeTo(c.Add(vec.Vec2{X: -k, Y: 8}), c.Add(vec.Vec2{X: -8, Y: k}), c.Add(vec.Vec2{X: -8})).
		CubeTo(c.Add(vec.Vec2{X: -8, Y: -k}), c.Add(vec.Vec2{X: -k, Y: -8}), c.Add(vec.Vec2{Y: -8})).
		CubeTo(c.Add(vec.Vec2{X: k, Y: -8}), c.Add(vec.Vec2{X: 8, Y: -k}), c.Add(vec.Vec2{X: 8})).
		Close()

	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	buf := coverageImage(20, 20, func(emit EmitFunc) { r.FillNonZero(p, emit) })
	want := math.Pi * 64
	if s := sum(buf); math.Abs(s-want) > 0.01*want {
		t.Errorf("circle area %g, want %g", s, want)
	}
}

func TestStrokeHorizontal(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 5.5}).
		LineTo(vec.Vec2{X: 12, Y: 5.5})

	cases := []struct {
		cap      graphics.LineCapStyle
		from, to int
		area     float64
	}{
		{graphics.LineCapButt, 2, 12, 20},
		{graphics.LineCapSquare, 1, 13, 24},
		{graphics.LineCapRound, 1, 13, 20 + math.Pi},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.cap), func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 20, URy: 10})
			r.Width = 2
			r.Cap = c.cap
			r.Flatness = 0.01
			buf := coverageImage(20, 10, func(emit EmitFunc) { r.Stroke(p, emit) })

			if s := sum(buf); math.Abs(s-c.area) > 0.05 {
				t.Errorf("total coverage %g, want %g", s, c.area)
			}
			for y := range 10 {
				for x := range 20 {
					inside := y >= 4 && y < 7 && x >= c.from && x < c.to
					if !inside && buf[y*20+x] != 0 {
						t.Errorf("pixel (%d, %d) is painted", x, y)
					}
				}
			}
			// rows 4 and 6 are half covered, row 5 is solid
			for x := 3; x < 11; x++ {
				col := []float32{buf[4*20+x], buf[5*20+x], buf[6*20+x]}
				for i, want := range []float32{0.5, 1, 0.5} {
					if math.Abs(float64(col[i]-want)) > 1e-5 {
						t.Errorf("column %d: coverage %v", x, col)
						break
					}
				}
			}
		})
	}
}

func TestStrokeDot(t *testing.T) {
	const radius = 5
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 20.3, Y: 20.7})

	cases := []struct {
		cap  graphics.LineCapStyle
		area float64
	}{
		{graphics.LineCapButt, 0},
		{graphics.LineCapRound, math.Pi * radius * radius},
		{graphics.LineCapSquare, 4 * radius * radius},
	}
	for _, c := range cases {
		r := NewRasterizer(rect.Rect{URx: 40, URy: 40})
		r.Width = 2 * radius
		r.Cap = c.cap
		r.Flatness = 0.01
		buf := coverageImage(40, 40, func(emit EmitFunc) { r.Stroke(p, emit) })
		if s := sum(buf); math.Abs(s-c.area) > 0.005*c.area+1e-6 {
			t.Errorf("cap %v: dot area %g, want %g", c.cap, s, c.area)
		}
	}
}

func TestStrokeOverlap(t *testing.T) {
	// Two crossing lines and a dot on the crossing point: overlaps must
	// not cancel or accumulate beyond full coverage.
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 10}).LineTo(vec.Vec2{X: 20, Y: 10}).
		MoveTo(vec.Vec2{X: 10, Y: 20}).LineTo(vec.Vec2{X: 10, Y: 0}).
		MoveTo(vec.Vec2{X: 10, Y: 10})

	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	r.Width = 4
	r.Cap = graphics.LineCapRound
	buf := coverageImage(20, 20, func(emit EmitFunc) { r.Stroke(p, emit) })

	for _, pix := range [][2]int{{9, 9}, {10, 10}, {9, 10}, {10, 9}} {
		if c := buf[pix[1]*20+pix[0]]; c != 1 {
			t.Errorf("pixel %v: coverage %g, want 1", pix, c)
		}
	}
	// 2 lines of 20×4, minus the 4×4 overlap
	if s := sum(buf); math.Abs(s-(2*80-16)) > 0.01 {
		t.Errorf("total coverage %g, want %d", s, 2*80-16)
	}
}

func TestAgainstVector(t *testing.T) {
	const w, h = 32, 32
	// a concave polygon
	pts := []vec.Vec2{
		{X: 3.2, Y: 4.7}, {X: 27.9, Y: 2.1}, {X: 16.3, Y: 13.4},
		{X: 29.4, Y: 28.3}, {X: 6.6, Y: 19.5},
	}

	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	p = p.Close()
	r := NewRasterizer(rect.Rect{URx: w, URy: h})
	got := coverageImage(w, h, func(emit EmitFunc) { r.FillNonZero(p, emit) })

	z := vector.NewRasterizer(w, h)
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, q := range pts[1:] {
		z.LineTo(float32(q.X), float32(q.Y))
	}
	z.ClosePath()
	ref := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(ref, ref.Bounds(), image.Opaque, image.Point{})

	failed := false
	for y := range h {
		for x := range w {
			want := float64(ref.AlphaAt(x, y).A) / 255
			if d := math.Abs(float64(got[y*w+x]) - want); d > 0.02 {
				t.Errorf("pixel (%d, %d): coverage %.3f, x/image/vector %.3f",
					x, y, got[y*w+x], want)
				failed = true
			}
		}
	}
	if failed {
		actual := make([]byte, w*h)
		for i, c := range got {
			actual[i] = uint8(c*255 + 0.5)
		}
		writeDiffImage("against_vector", ref.Pix, actual, w, h)
	}
}

// writeDiffImage writes expected coverage to the red and actual coverage
// to the green channel of debug/<name>.png.
func writeDiffImage(name string, expected, actual []byte, w, h int) {
	os.MkdirAll("debug", 0755)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			img.Set(x, y, color.RGBA{
				R: expected[i], // expected in red
				G: actual[i],   // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(100, 100)
	c.LineWidth = 2
	c.DotRadius = 3

	e := isoline.NewExtractor(100, 100, 20, 20)
	circle := isoline.FieldFunc(func(x, y float64) float64 {
		return 30 - math.Hypot(x-50, y-50)
	})
	e.MarchingSquares(circle, c)
	c.DrawPoint(vec.Vec2{X: 50, Y: 50})
	c.Flush()

	if g := c.At(50, 50); g != 0 {
		t.Errorf("centre dot: grey %d, want 0", g)
	}
	if g := c.At(40, 40); g != 0xFF {
		t.Errorf("inside the circle: grey %d, want 255", g)
	}
	if g := c.At(2, 2); g != 0xFF {
		t.Errorf("corner: grey %d, want 255", g)
	}
	for _, pix := range [][2]int{{80, 50}, {19, 50}, {50, 80}, {50, 19}} {
		if g := c.At(pix[0], pix[1]); g > 0x80 {
			t.Errorf("pixel %v on the circle: grey %d", pix, g)
		}
	}

	// a second flush without new drawing calls changes nothing
	before := append([]uint8(nil), c.Img.Pix...)
	c.Flush()
	for i := range before {
		if c.Img.Pix[i] != before[i] {
			t.Fatal("empty flush changed the image")
		}
	}
}

func TestWritePNG(t *testing.T) {
	c := NewCanvas(30, 20)
	c.DrawLine(vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 30, Y: 10})
	c.Flush()

	fname := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(fname, c.Img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("image size %v, want 30×20", b)
	}
}
