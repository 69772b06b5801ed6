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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
)

// TestCase defines a single scene.
type TestCase struct {
	Name       string      // lowercase a-z, 0-9 and _ only
	Width      int         // grid width in pixels
	Height     int         // grid height in pixels
	Shape      Shape       // what to draw
	Transforms []Transform // applied in order before drawing
	Color      color.Color // nil means white
}

// Shape is the geometry of a test case.
type Shape interface {
	isShape()
}

// Line is a single segment between two world-space points.
type Line struct {
	P0, P1 vec.Vec2
}

func (Line) isShape() {}

// Polyline draws a primitive, optionally closing it.
type Polyline struct {
	Primitive sketch.Primitive
	Closed    bool
}

func (Polyline) isShape() {}

// Curve draws a sampled curve.
type Curve struct {
	Controls sketch.Controls
	Segments int
	Options  sketch.CurveOptions
}

func (Curve) isShape() {}

// Transform is a geometric transformation applied to the shape.
type Transform interface {
	isTransform()
}

// Translate shifts the shape by D.
type Translate struct {
	D vec.Vec2
}

func (Translate) isTransform() {}

// Scale scales the shape by S about its centre. For curves the centroid of
// the control points is used.
type Scale struct {
	S vec.Vec2
}

func (Scale) isTransform() {}

// Rotate rotates the shape by Angle radians about its centre.
// For curves the centroid of the control points is used.
type Rotate struct {
	Angle float64
}

func (Rotate) isTransform() {}

// Reflect mirrors a polyline through the origin.
type Reflect struct{}

func (Reflect) isTransform() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
