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
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
)

// Path is a piece of geometry in world coordinates.
type Path struct {
	Points []vec.Vec2
	Closed bool
}

// Apply returns the shape of tc after all transforms have been applied.
func (tc TestCase) Apply() (Shape, error) {
	shape := tc.Shape
	for _, t := range tc.Transforms {
		var err error
		switch s := shape.(type) {
		case Line:
			p := sketch.Primitive{
				Verts:  []vec.Vec2{s.P0, s.P1},
				Center: s.P0.Add(s.P1).Mul(0.5),
			}
			p, err = transformPrimitive(p, t)
			if err == nil {
				shape = Line{P0: p.Verts[0], P1: p.Verts[1]}
			}
		case Polyline:
			s.Primitive, err = transformPrimitive(s.Primitive, t)
			shape = s
		case Curve:
			s.Controls, err = transformCurve(s.Controls, t)
			shape = s
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tc.Name, err)
		}
	}
	return shape, nil
}

func transformPrimitive(p sketch.Primitive, t Transform) (sketch.Primitive, error) {
	switch t := t.(type) {
	case Translate:
		return sketch.Translate(p, t.D)
	case Scale:
		return sketch.Scale(p, t.S)
	case Rotate:
		return sketch.Rotate(p, t.Angle)
	case Reflect:
		return sketch.Reflect(p)
	}
	return sketch.Primitive{}, fmt.Errorf("unsupported transform %T", t)
}

func transformCurve(c sketch.Controls, t Transform) (sketch.Controls, error) {
	switch t := t.(type) {
	case Translate:
		return sketch.TranslateCurve(c, t.D)
	case Scale:
		return sketch.ScaleCurve(c, t.S)
	case Rotate:
		return sketch.RotateCurve(c, t.Angle)
	case Reflect:
		return sketch.ScaleCurveAbout(c, pt(-1, -1), pt(0, 0))
	}
	return nil, fmt.Errorf("unsupported transform %T", t)
}

// Render draws the test case using r.
func (tc TestCase) Render(r *sketch.Renderer) error {
	shape, err := tc.Apply()
	if err != nil {
		return err
	}

	col := tc.Color
	if col == nil {
		col = color.White
	}
	switch s := shape.(type) {
	case Line:
		r.DrawLine(s.P0, s.P1, col)
	case Polyline:
		err = r.DrawPrimitive(s.Primitive, s.Closed, col)
	case Curve:
		_, err = r.DrawCurve(s.Controls, s.Segments, s.Options, col)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", tc.Name, err)
	}
	return nil
}

// Paths returns the transformed geometry of tc as world-space polylines.
// Curves are sampled; control overlays are not included.
func (tc TestCase) Paths() ([]Path, error) {
	shape, err := tc.Apply()
	if err != nil {
		return nil, err
	}

	switch s := shape.(type) {
	case Line:
		return []Path{{Points: []vec.Vec2{s.P0, s.P1}}}, nil
	case Polyline:
		return []Path{{Points: s.Primitive.Verts, Closed: s.Closed}}, nil
	case Curve:
		samples, err := sketch.Evaluate(s.Controls, s.Segments)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tc.Name, err)
		}
		return []Path{{Points: samples}}, nil
	}
	return nil, fmt.Errorf("%s: unsupported shape %T", tc.Name, shape)
}

// Frame returns frame i out of n of an animation in which the shape of tc
// turns once about its centre.
func (tc TestCase) Frame(i, n int) TestCase {
	angle := 2 * math.Pi * float64(i) / float64(n)
	res := tc
	res.Name = fmt.Sprintf("%s_%03d", tc.Name, i)
	res.Transforms = append(append([]Transform(nil), tc.Transforms...), Rotate{Angle: angle})
	return res
}
