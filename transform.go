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

package sketch

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Primitive is an open or closed polyline in world space.
//
// Consecutive vertices are joined by edges. Center is the pivot for
// scaling and rotation; it is chosen by the caller and need not coincide
// with any vertex.
type Primitive struct {
	Verts  []vec.Vec2
	Center vec.Vec2
}

// validatePrimitive checks that p has at least two vertices and that all
// coordinates are finite.
func validatePrimitive(op string, p Primitive) error {
	if len(p.Verts) < 2 {
		return &InvalidShapeError{Op: op, Kind: "primitive", Got: len(p.Verts), Want: "at least 2"}
	}
	if err := checkPoints(op, "verts", p.Verts); err != nil {
		return err
	}
	return checkVec(op, "center", p.Center)
}

// apply maps a point through the affine map m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// applyLinear maps a direction vector through the linear part of m.
func applyLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

func applyAll(m matrix.Matrix, ps []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(ps))
	for i, p := range ps {
		res[i] = apply(m, p)
	}
	return res
}

// scaleAbout returns the map v -> s⊙v + pivot⊙(1-s).
func scaleAbout(s, pivot vec.Vec2) matrix.Matrix {
	return matrix.Matrix{
		s.X, 0,
		0, s.Y,
		pivot.X * (1 - s.X), pivot.Y * (1 - s.Y),
	}
}

// rotateAbout returns the counter-clockwise rotation by angle (in radians)
// which keeps pivot fixed.
func rotateAbout(angle float64, pivot vec.Vec2) matrix.Matrix {
	sin, cos := math.Sincos(angle)
	return matrix.Matrix{
		cos, sin,
		-sin, cos,
		pivot.X - cos*pivot.X + sin*pivot.Y,
		pivot.Y - sin*pivot.X - cos*pivot.Y,
	}
}

// Translate returns a copy of p with all vertices and the centre
// shifted by d.
func Translate(p Primitive, d vec.Vec2) (Primitive, error) {
	const op = "Translate"
	if err := validatePrimitive(op, p); err != nil {
		return Primitive{}, reject(err)
	}
	if err := checkVec(op, "distance", d); err != nil {
		return Primitive{}, reject(err)
	}

	m := matrix.Translate(d.X, d.Y)
	return Primitive{
		Verts:  applyAll(m, p.Verts),
		Center: apply(m, p.Center),
	}, nil
}

// Scale returns a copy of p scaled by the per-axis factors s about
// p.Center. The centre is unchanged.
func Scale(p Primitive, s vec.Vec2) (Primitive, error) {
	const op = "Scale"
	if err := validatePrimitive(op, p); err != nil {
		return Primitive{}, reject(err)
	}
	if err := checkVec(op, "scale", s); err != nil {
		return Primitive{}, reject(err)
	}

	return Primitive{
		Verts:  applyAll(scaleAbout(s, p.Center), p.Verts),
		Center: p.Center,
	}, nil
}

// Rotate returns a copy of p rotated by angle (in radians) about p.Center.
// Positive angles turn the positive x-axis towards the positive y-axis.
// The centre is unchanged.
func Rotate(p Primitive, angle float64) (Primitive, error) {
	const op = "Rotate"
	if err := validatePrimitive(op, p); err != nil {
		return Primitive{}, reject(err)
	}
	if !isFinite(angle) {
		return Primitive{}, reject(&InvalidArgumentError{Op: op, Arg: "angle", Err: ErrNonFinite})
	}

	return Primitive{
		Verts:  applyAll(rotateAbout(angle, p.Center), p.Verts),
		Center: p.Center,
	}, nil
}

// Reflect returns the point reflection of p through the origin.
// Vertices and centre are both negated.
func Reflect(p Primitive) (Primitive, error) {
	const op = "Reflect"
	if err := validatePrimitive(op, p); err != nil {
		return Primitive{}, reject(err)
	}

	m := matrix.Scale(-1, -1)
	return Primitive{
		Verts:  applyAll(m, p.Verts),
		Center: apply(m, p.Center),
	}, nil
}

// Centroid returns the arithmetic mean of the control points of c.
// For Hermite curves only the two end points are used, since the tangents
// are directions rather than positions.
func Centroid(c Controls) (vec.Vec2, error) {
	const op = "Centroid"
	if err := validateControls(op, c); err != nil {
		return vec.Vec2{}, reject(err)
	}
	return centroid(c), nil
}

// centroid assumes that c has been validated.
func centroid(c Controls) vec.Vec2 {
	var pts []vec.Vec2
	switch ctl := c.(type) {
	case Hermite:
		pts = []vec.Vec2{ctl[0], ctl[2]}
	case Cardinal:
		pts = ctl.Points
	case Bezier:
		pts = ctl
	}
	var sum vec.Vec2
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pts)))
}

// transformControls applies m to every control point of c and returns the
// result as a new control structure of the same kind. Hermite tangents are
// mapped by the linear part of m only. Cardinal tension is kept.
func transformControls(m matrix.Matrix, c Controls) Controls {
	switch ctl := c.(type) {
	case Hermite:
		return Hermite{
			apply(m, ctl[0]),
			applyLinear(m, ctl[1]),
			apply(m, ctl[2]),
			applyLinear(m, ctl[3]),
		}
	case Cardinal:
		return Cardinal{
			Points:  applyAll(m, ctl.Points),
			Tension: ctl.Tension,
		}
	case Bezier:
		return Bezier(applyAll(m, ctl))
	}
	panic("unreachable")
}

// TranslateCurve returns a copy of c with every control point shifted by d.
func TranslateCurve(c Controls, d vec.Vec2) (Controls, error) {
	const op = "TranslateCurve"
	if err := validateControls(op, c); err != nil {
		return nil, reject(err)
	}
	if err := checkVec(op, "distance", d); err != nil {
		return nil, reject(err)
	}
	return transformControls(matrix.Translate(d.X, d.Y), c), nil
}

// ScaleCurve scales c by the per-axis factors s about the centroid of its
// control points, see [Centroid].
func ScaleCurve(c Controls, s vec.Vec2) (Controls, error) {
	return scaleCurve("ScaleCurve", c, s, nil)
}

// ScaleCurveAbout scales c by the per-axis factors s about anchor.
func ScaleCurveAbout(c Controls, s, anchor vec.Vec2) (Controls, error) {
	return scaleCurve("ScaleCurveAbout", c, s, &anchor)
}

func scaleCurve(op string, c Controls, s vec.Vec2, anchor *vec.Vec2) (Controls, error) {
	pivot, err := curvePivot(op, c, anchor)
	if err != nil {
		return nil, reject(err)
	}
	if err := checkVec(op, "scale", s); err != nil {
		return nil, reject(err)
	}
	return transformControls(scaleAbout(s, pivot), c), nil
}

// RotateCurve rotates c by angle (in radians) about the centroid of its
// control points, see [Centroid].
func RotateCurve(c Controls, angle float64) (Controls, error) {
	return rotateCurve("RotateCurve", c, angle, nil)
}

// RotateCurveAbout rotates c by angle (in radians) about anchor.
func RotateCurveAbout(c Controls, angle float64, anchor vec.Vec2) (Controls, error) {
	return rotateCurve("RotateCurveAbout", c, angle, &anchor)
}

func rotateCurve(op string, c Controls, angle float64, anchor *vec.Vec2) (Controls, error) {
	pivot, err := curvePivot(op, c, anchor)
	if err != nil {
		return nil, reject(err)
	}
	if !isFinite(angle) {
		return nil, reject(&InvalidArgumentError{Op: op, Arg: "angle", Err: ErrNonFinite})
	}
	return transformControls(rotateAbout(angle, pivot), c), nil
}

// curvePivot validates c and returns the anchor, or the centroid of c if
// anchor is nil.
func curvePivot(op string, c Controls, anchor *vec.Vec2) (vec.Vec2, error) {
	if err := validateControls(op, c); err != nil {
		return vec.Vec2{}, err
	}
	if anchor == nil {
		return centroid(c), nil
	}
	if err := checkVec(op, "anchor", *anchor); err != nil {
		return vec.Vec2{}, err
	}
	return *anchor, nil
}
