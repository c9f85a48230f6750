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

// Command genpng draws the contour lines of all scenes into PNG images.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/isoline"
	"seehuhn.de/go/isoline/raster"
	"seehuhn.de/go/isoline/scenes"
)

func main() {
	outDir := flag.String("out", "testdata/png", "output directory")
	scale := flag.Float64("scale", 1, "pixels per image unit")
	grid := flag.Bool("grid", false, "draw the grid cells which produced segments")
	verbose := flag.Bool("v", false, "log extraction statistics")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		isoline.SetLogger(slog.New(h))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	e := isoline.NewExtractor(1, 1, 1, 1)
	lines := &isoline.Recorder{}
	var gridRec *isoline.Recorder
	if *grid {
		gridRec = &isoline.Recorder{}
	}

	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, s := range scenes.All[category] {
			name := category + "_" + s.Name
			fname := filepath.Join(*outDir, name+".png")

			lines.Reset()
			if gridRec != nil {
				gridRec.Reset()
				s.RunWith(e, lines, gridRec)
			} else {
				s.RunWith(e, lines, nil)
			}

			if err := draw(fname, s, *scale, lines, gridRec); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func draw(fname string, s scenes.Scene, scale float64, lines, grid *isoline.Recorder) error {
	w := int(math.Ceil(float64(s.Width) * scale))
	h := int(math.Ceil(float64(s.Height) * scale))
	c := raster.NewCanvas(w, h)
	c.CTM = matrix.Scale(scale, scale)

	if grid != nil {
		c.Ink = 0xC0
		c.LineWidth = 0.5
		grid.Replay(c)
		c.Flush()
	}

	c.Ink = 0
	c.LineWidth = 1
	lines.Replay(c)
	c.Flush()

	return raster.WritePNG(fname, c.Img)
}
