// seehuhn.de/go/sketch - a pixel-level vector renderer
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

package testcases

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
)

var primitiveCases = []TestCase{
	{
		Name: "triangle",
		Shape: Polyline{
			Primitive: sketch.Primitive{
				Verts:  []vec.Vec2{pt(-0.9, -0.7), pt(0.8, -0.6), pt(0.1, 0.7)},
				Center: pt(0, 0),
			},
			Closed: true,
		},
		Width:  500,
		Height: 500,
	},
	{
		Name: "open_zigzag",
		Shape: Polyline{
			Primitive: sketch.Primitive{
				Verts:  []vec.Vec2{pt(-0.8, 0.5), pt(-0.4, -0.5), pt(0, 0.5), pt(0.4, -0.5), pt(0.8, 0.5)},
				Center: pt(0, 0),
			},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "square",
		Shape:  regularPolygon(4, pt(0, 0), 0.6, math.Pi/4),
		Width:  64,
		Height: 64,
		Color:  color.RGBA{R: 255, G: 255, A: 255},
	},
	{
		Name:   "hexagon",
		Shape:  regularPolygon(6, pt(0.1, -0.1), 0.7, 0),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "star",
		Shape:  star(5, pt(0, 0), 0.85, 0.35),
		Width:  128,
		Height: 128,
	},
}

// regularPolygon returns a closed n-gon centred at c, with the first vertex
// at angle phase.
func regularPolygon(n int, c vec.Vec2, radius, phase float64) Polyline {
	p := Polyline{Closed: true}
	p.Primitive.Center = c
	for i := range n {
		phi := phase + 2*math.Pi*float64(i)/float64(n)
		p.Primitive.Verts = append(p.Primitive.Verts,
			pt(c.X+radius*math.Cos(phi), c.Y+radius*math.Sin(phi)))
	}
	return p
}

// star returns a closed star outline with n points, alternating between the
// outer and inner radius.
func star(n int, c vec.Vec2, outer, inner float64) Polyline {
	p := Polyline{Closed: true}
	p.Primitive.Center = c
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		phi := -math.Pi/2 + math.Pi*float64(i)/float64(n)
		p.Primitive.Verts = append(p.Primitive.Verts,
			pt(c.X+r*math.Cos(phi), c.Y+r*math.Sin(phi)))
	}
	return p
}
