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

// Package pdfsink writes isolines to PDF files.
package pdfsink

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/isoline"
)

// Writer records isolines and writes them as a single page PDF file.
// The page has the size of the image, with one PDF unit per image unit,
// and the y-axis pointing down like in the image.
//
// The embedded Recorder receives the isolines. Debug output of an
// extractor can be sent to Grid, which is drawn below the isolines in a
// lighter grey.
type Writer struct {
	isoline.Recorder

	Grid isoline.Recorder

	Width, Height float64

	// LineWidth is the width of the isolines. Grid lines are drawn at
	// half this width.
	LineWidth float64

	// Cap is the line cap style of the isolines.
	Cap graphics.LineCapStyle

	// Gray and GridGray are the grey levels of isolines and grid, between
	// 0 (black) and 1 (white).
	Gray, GridGray float64

	// DotRadius is the radius of points recorded by DrawPoint.
	DotRadius float64
}

// New returns a Writer for an image of the given size.
func New(width, height float64) *Writer {
	return &Writer{
		Width:     width,
		Height:    height,
		LineWidth: 1,
		Cap:       graphics.LineCapRound,
		Gray:      0,
		GridGray:  0.75,
		DotRadius: 1.5,
	}
}

// WriteFile writes everything recorded so far to the named file.
func (w *Writer) WriteFile(fname string) error {
	paper := &pdf.Rectangle{URx: w.Width, URy: w.Height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w.Width, w.Height)
	page.Fill()

	// PDF has the origin at the bottom left, images at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, w.Height})

	page.SetLineJoin(graphics.LineJoinRound)

	strokeLines := func(lines []isoline.Line) {
		if len(lines) == 0 {
			return
		}
		for _, l := range lines {
			page.MoveTo(l.A.X, l.A.Y)
			page.LineTo(l.B.X, l.B.Y)
		}
		page.Stroke()
	}
	// Points are drawn as zero length lines with round caps.
	// This changes the line width and cap style.
	strokeDots := func(points []vec.Vec2) {
		if len(points) == 0 || w.DotRadius <= 0 {
			return
		}
		page.SetLineWidth(2 * w.DotRadius)
		page.SetLineCap(graphics.LineCapRound)
		for _, p := range points {
			page.MoveTo(p.X, p.Y)
			page.LineTo(p.X, p.Y)
		}
		page.Stroke()
	}

	if len(w.Grid.Lines) > 0 || len(w.Grid.Points) > 0 {
		page.SetStrokeColor(color.DeviceGray(w.GridGray))
		page.SetLineWidth(w.LineWidth / 2)
		page.SetLineCap(graphics.LineCapButt)
		strokeLines(w.Grid.Lines)
		strokeDots(w.Grid.Points)
	}

	page.SetStrokeColor(color.DeviceGray(w.Gray))
	page.SetLineWidth(w.LineWidth)
	page.SetLineCap(w.Cap)
	strokeLines(w.Lines)
	strokeDots(w.Points)

	return page.Close()
}
