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

// Command export writes the contour segments of all scenes to
// testdata/scenes.json, for use by other implementations.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/isoline"
	"seehuhn.de/go/isoline/scenes"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	rec := &isoline.Recorder{}
	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, s := range scenes.All[category] {
			rec.Reset()
			s.Run(rec, nil)
			out.Scenes = append(out.Scenes, toJSON(category, s, rec))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name         string       `json:"name"`
	Method       string       `json:"method"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	GridWidth    int          `json:"grid_width"`
	GridHeight   int          `json:"grid_height"`
	TriangleSide float64      `json:"triangle_side,omitempty"`
	Segments     [][4]float64 `json:"segments"`
}

func toJSON(category string, s scenes.Scene, rec *isoline.Recorder) jsonScene {
	js := jsonScene{
		Name:         category + "_" + s.Name,
		Method:       s.Method.String(),
		Width:        s.Width,
		Height:       s.Height,
		GridWidth:    s.GridWidth,
		GridHeight:   s.GridHeight,
		TriangleSide: s.TriangleSide,
		Segments:     make([][4]float64, len(rec.Lines)),
	}
	for i, l := range rec.Lines {
		js.Segments[i] = [4]float64{l.A.X, l.A.Y, l.B.X, l.B.Y}
	}
	return js
}
