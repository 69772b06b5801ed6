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
	"math"

	"seehuhn.de/go/sketch"
)

var transformCases = []TestCase{
	{
		Name:       "triangle_translated",
		Shape:      primitiveCases[0].Shape,
		Transforms: []Transform{Translate{D: pt(0.1, 0.2)}},
		Width:      128,
		Height:     128,
	},
	{
		Name:       "triangle_rotated",
		Shape:      primitiveCases[0].Shape,
		Transforms: []Transform{Rotate{Angle: math.Pi / 6}},
		Width:      128,
		Height:     128,
	},
	{
		Name:       "triangle_reflected",
		Shape:      primitiveCases[0].Shape,
		Transforms: []Transform{Reflect{}},
		Width:      128,
		Height:     128,
	},
	{
		Name:       "square_squashed",
		Shape:      regularPolygon(4, pt(0.2, 0.2), 0.5, 0),
		Transforms: []Transform{Scale{S: pt(1.5, 0.5)}},
		Width:      64,
		Height:     64,
	},
	{
		Name:  "star_spun",
		Shape: star(5, pt(-0.2, 0), 0.6, 0.25),
		Transforms: []Transform{
			Scale{S: pt(0.8, 0.8)},
			Rotate{Angle: math.Pi / 5},
			Translate{D: pt(0.3, 0)},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "bezier_rotated",
		Shape: Curve{
			Controls: sketch.Bezier{pt(-0.6, 0.5), pt(-0.3, -0.8), pt(0.3, 0.8), pt(0.6, -0.5)},
			Segments: 32,
			Options:  sketch.CurveOptions{ShowLine: true},
		},
		Transforms: []Transform{Rotate{Angle: math.Pi / 2}},
		Width:      128,
		Height:     128,
	},
	{
		Name: "cardinal_scaled",
		Shape: Curve{
			Controls: sketch.Cardinal{Points: wave, Tension: 0.25},
			Segments: 12,
			Options:  sketch.CurveOptions{ShowLine: true},
		},
		Transforms: []Transform{Scale{S: pt(0.5, 1.5)}, Translate{D: pt(0, 0.1)}},
		Width:      128,
		Height:     128,
	},
	{
		Name: "hermite_turned",
		Shape: Curve{
			Controls: sketch.Hermite{pt(-0.5, 0), pt(0, 2), pt(0.5, 0), pt(0, -2)},
			Segments: 24,
			Options:  sketch.CurveOptions{ShowLine: true, ShowControl: true},
		},
		Transforms: []Transform{Rotate{Angle: -math.Pi / 4}},
		Width:      128,
		Height:     128,
	},
}
