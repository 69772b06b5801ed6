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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
)

var curveCases = []TestCase{
	{
		Name: "hermite",
		Shape: Curve{
			Controls: sketch.Hermite{pt(-0.8, 0.5), pt(1.5, -3), pt(0.8, 0.5), pt(1.5, 3)},
			Segments: 20,
			Options:  sketch.CurveOptions{ShowLine: true},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "hermite_overlay",
		Shape: Curve{
			Controls: sketch.Hermite{pt(-0.8, 0.5), pt(1.5, -3), pt(0.8, 0.5), pt(1.5, 3)},
			Segments: 12,
			Options:  sketch.CurveOptions{ShowLine: true, ShowPoints: true, ShowControl: true},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "hermite_one_segment",
		Shape: Curve{
			Controls: sketch.Hermite{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)},
			Segments: 1,
			Options:  sketch.CurveOptions{ShowLine: true},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "catmull_rom",
		Shape: Curve{
			Controls: sketch.Cardinal{
				Points: wave,
			},
			Segments: 16,
			Options:  sketch.CurveOptions{ShowLine: true},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "cardinal_loose",
		Shape: Curve{
			Controls: sketch.Cardinal{
				Points:  wave,
				Tension: -0.5,
			},
			Segments: 16,
			Options:  sketch.CurveOptions{ShowLine: true, ShowControl: true},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "cardinal_taut",
		Shape: Curve{
			Controls: sketch.Cardinal{
				Points:  wave,
				Tension: 1,
			},
			Segments: 4,
			Options:  sketch.CurveOptions{ShowLine: true},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "bezier_linear",
		Shape: Curve{
			Controls: sketch.Bezier{pt(-0.7, 0.7), pt(0.7, -0.7)},
			Segments: 8,
			Options:  sketch.CurveOptions{ShowLine: true, ShowPoints: true},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "bezier_quadratic",
		Shape: Curve{
			Controls: sketch.Bezier{pt(-0.7, 0.6), pt(0, -0.9), pt(0.7, 0.6)},
			Segments: 24,
			Options:  sketch.CurveOptions{ShowLine: true},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "bezier_cubic",
		Shape: Curve{
			Controls: sketch.Bezier{pt(-0.7, 0.6), pt(-0.4, -0.9), pt(0.4, 0.9), pt(0.7, -0.6)},
			Segments: 32,
			Options:  sketch.CurveOptions{ShowLine: true, ShowControl: true},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "bezier_quintic",
		Shape: Curve{
			Controls: sketch.Bezier{pt(-0.9, 0), pt(-0.6, -0.9), pt(-0.2, 0.9), pt(0.2, -0.9), pt(0.6, 0.9), pt(0.9, 0)},
			Segments: 48,
			Options:  sketch.CurveOptions{ShowLine: true, ShowControl: true},
		},
		Width:  128,
		Height: 128,
	},
}

// wave is a zig-zag of interpolation points for the cardinal splines.
var wave = []vec.Vec2{
	pt(-0.8, 0), pt(-0.5, -0.5), pt(-0.2, 0.4), pt(0.2, -0.4), pt(0.5, 0.5), pt(0.8, 0),
}
