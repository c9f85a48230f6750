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

// Command genpdf writes the contour lines of all scenes to PDF files.
// Optionally, the PDF files are rendered to PNG using Ghostscript, for
// comparison with the output of genpng.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/isoline"
	"seehuhn.de/go/isoline/pdfsink"
	"seehuhn.de/go/isoline/scenes"
)

func main() {
	outDir := flag.String("out", "testdata/pdf", "output directory")
	grid := flag.Bool("grid", false, "draw the crossed grid edges and cell vertices")
	normals := flag.Float64("normals", 0, "length of the normal ticks at edge crossings")
	render := flag.Bool("png", false, "also render each PDF to PNG with Ghostscript")
	verbose := flag.Bool("v", false, "log extraction statistics")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		isoline.SetLogger(slog.New(h))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, s := range scenes.All[category] {
			name := category + "_" + s.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			w := pdfsink.New(float64(s.Width), float64(s.Height))
			e := s.Extractor()
			if *grid {
				e.Grid = &w.Grid
				e.NormalLength = *normals
			}
			e.Extract(s.Method, s.Field, w)

			if err := w.WriteFile(pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *render {
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, like genpng
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
