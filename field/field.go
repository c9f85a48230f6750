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

// Package field provides scalar fields for contour extraction.
//
// All types in this package implement [isoline.Field] and are safe for
// concurrent use.
package field

import (
	"math"

	"github.com/ojrac/opensimplex-go"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/isoline"
)

// Constant is a field with the same value everywhere.
type Constant float64

// Eval implements the [isoline.Field] interface.
func (c Constant) Eval(x, y float64) float64 {
	return float64(c)
}

// Plane is the linear field A·x + B·y + C.
type Plane struct {
	A, B, C float64
}

// Eval implements the [isoline.Field] interface.
func (p Plane) Eval(x, y float64) float64 {
	return p.A*x + p.B*y + p.C
}

// Circle is positive inside the circle with the given center and radius and
// negative outside. The value is the signed distance to the circle.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// Eval implements the [isoline.Field] interface.
func (c Circle) Eval(x, y float64) float64 {
	return c.Radius - math.Hypot(x-c.Center.X, y-c.Center.Y)
}

// Sum is the sum of several fields.
type Sum []isoline.Field

// Eval implements the [isoline.Field] interface.
func (s Sum) Eval(x, y float64) float64 {
	total := 0.0
	for _, f := range s {
		total += f.Eval(x, y)
	}
	return total
}

// Negate swaps the inside and the outside of a field.
type Negate struct {
	F isoline.Field
}

// Eval implements the [isoline.Field] interface.
func (n Negate) Eval(x, y float64) float64 {
	return -n.F.Eval(x, y)
}

// Noise is a smooth pseudo-random field, based on OpenSimplex noise.
//
// The value at (x, y) is noise(x·Frequency, y·Frequency) + Offset, where
// noise takes values in [-1, 1]. Offset moves the zero contour: positive
// values enlarge the positive regions.
type Noise struct {
	Frequency float64
	Offset    float64

	noise opensimplex.Noise
}

// NewNoise returns a noise field for the given seed, with frequency 0.01
// (features about 100 image units across) and offset 0.
// Equal seeds give equal fields.
func NewNoise(seed int64) *Noise {
	return &Noise{
		Frequency: defaultFrequency,
		noise:     opensimplex.New(seed),
	}
}

// Eval implements the [isoline.Field] interface.
func (n *Noise) Eval(x, y float64) float64 {
	return n.noise.Eval2(x*n.Frequency, y*n.Frequency) + n.Offset
}

const defaultFrequency = 0.01
