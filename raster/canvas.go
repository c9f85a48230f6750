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
	"image"
	"image/png"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas collects lines and points and paints them into a grey-scale
// image. It implements the Sink and PointSink interfaces of the isoline
// package.
//
// Drawing calls only record the shapes. [Canvas.Flush] paints everything
// recorded so far, so that overlapping segments of one flush are painted
// only once.
type Canvas struct {
	Img *image.Gray

	// Ink is the grey level used for painting.
	Ink uint8

	// LineWidth is the width of lines, in image units.
	LineWidth float64

	// DotRadius is the radius of the dots drawn by DrawPoint, in image
	// units.
	DotRadius float64

	// Cap is the line cap style. Dots are always round.
	Cap graphics.LineCapStyle

	// CTM maps image units to pixels.
	CTM matrix.Matrix

	lines  *path.Data
	points *path.Data
	r      *Rasterizer
}

// NewCanvas returns a canvas of the given size in pixels, filled with
// white. Lines are black, one pixel wide, with round caps.
func NewCanvas(width, height int) *Canvas {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return &Canvas{
		Img:       img,
		Ink:       0,
		LineWidth: 1,
		DotRadius: 1.5,
		Cap:       graphics.LineCapRound,
		CTM:       matrix.Identity,
		lines:     &path.Data{},
		points:    &path.Data{},
	}
}

// DrawLine records a line from a to b.
func (c *Canvas) DrawLine(a, b vec.Vec2) {
	c.lines = c.lines.MoveTo(a).LineTo(b)
}

// DrawPoint records a dot at p.
func (c *Canvas) DrawPoint(p vec.Vec2) {
	c.points = c.points.MoveTo(p)
}

// Flush paints all recorded lines and dots into c.Img and clears the
// records. Dots are painted after the lines.
func (c *Canvas) Flush() {
	b := c.Img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}
	if c.r == nil {
		c.r = NewRasterizer(clip)
	} else {
		c.r.Reset(clip)
	}
	c.r.CTM = c.CTM

	if len(c.lines.Cmds) > 0 {
		c.r.Width = c.LineWidth
		c.r.Cap = c.Cap
		c.r.Stroke(c.lines, c.blend)
	}
	if len(c.points.Cmds) > 0 && c.DotRadius > 0 {
		c.r.Width = 2 * c.DotRadius
		c.r.Cap = graphics.LineCapRound
		c.r.Stroke(c.points, c.blend)
	}

	c.lines = &path.Data{}
	c.points = &path.Data{}
}

// blend mixes c.Ink into one row of the image, weighted by the coverage.
func (c *Canvas) blend(y, xMin int, coverage []float32) {
	ink := float32(c.Ink)
	row := c.Img.Pix[c.Img.PixOffset(xMin, y):]
	for i, cov := range coverage {
		dst := float32(row[i])
		row[i] = uint8(dst + (ink-dst)*cov + 0.5)
	}
}

// At returns the grey level of pixel (x, y).
func (c *Canvas) At(x, y int) uint8 {
	return c.Img.GrayAt(x, y).Y
}

// WritePNG writes img to the named file in PNG format.
func WritePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
