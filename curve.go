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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// CurveKind identifies the representation of a parametric curve.
type CurveKind int

// These are the supported curve kinds.
const (
	KindHermite CurveKind = iota
	KindCardinal
	KindBezier
)

func (k CurveKind) String() string {
	switch k {
	case KindHermite:
		return "hermite"
	case KindCardinal:
		return "cardinal"
	case KindBezier:
		return "bezier"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// Controls is the control structure of a curve.
// It is implemented by Hermite, Cardinal and Bezier.
type Controls interface {
	Kind() CurveKind
}

// Hermite holds the controls of a cubic Hermite curve, in the order
// P0, T0, P1, T1: first end point, tangent at P0, second end point,
// tangent at P1. Exactly four entries are required.
type Hermite []vec.Vec2

// Kind implements the Controls interface.
func (Hermite) Kind() CurveKind { return KindHermite }

// Cardinal holds the controls of a cardinal spline through Points.
//
// Tension must lie in [-1, 1]. Tension 0 gives a Catmull-Rom spline,
// tension 1 gives straight line segments between the points.
type Cardinal struct {
	Points  []vec.Vec2
	Tension float64
}

// Kind implements the Controls interface.
func (Cardinal) Kind() CurveKind { return KindCardinal }

// Bezier holds the control points of a Bézier curve.
// The degree of the curve is len(b)-1, which must be at least 1.
type Bezier []vec.Vec2

// Kind implements the Controls interface.
func (Bezier) Kind() CurveKind { return KindBezier }

// Degree returns the degree of the curve.
func (b Bezier) Degree() int {
	return len(b) - 1
}

// Tension limits for cardinal splines.
const (
	minTension = -1
	maxTension = 1
)

// Evaluate samples the curve using the package-wide basis tables.
// See [Basis.Evaluate].
func Evaluate(c Controls, segments int) ([]vec.Vec2, error) {
	return defaultBasis.Evaluate(c, segments)
}

// Evaluate samples the curve described by c at segments+1 equally spaced
// parameter values per curve segment. For cardinal splines, the samples of
// consecutive segments are concatenated, and the point shared by two
// segments is included only once.
//
// Malformed controls result in an [*InvalidShapeError] and a non-positive
// segment count or a non-finite coordinate in an [*InvalidArgumentError].
// In both cases no samples are returned.
func (b *Basis) Evaluate(c Controls, segments int) ([]vec.Vec2, error) {
	samples, err := b.evaluate("Evaluate", c, segments)
	if err != nil {
		return nil, reject(err)
	}
	return samples, nil
}

func (b *Basis) evaluate(op string, c Controls, segments int) ([]vec.Vec2, error) {
	if err := validateControls(op, c); err != nil {
		return nil, err
	}
	if segments <= 0 {
		return nil, &InvalidArgumentError{Op: op, Arg: "segments", Err: ErrNonPositive}
	}

	switch c.Kind() {
	case KindHermite:
		h := c.(Hermite)
		return b.hermite(h[0], h[1], h[2], h[3], segments), nil
	case KindCardinal:
		return b.cardinal(c.(Cardinal), segments), nil
	case KindBezier:
		ctl := c.(Bezier)
		if ctl.Degree() == 3 {
			return b.bezierCubic(ctl, segments), nil
		}
		return b.bezierGeneral(ctl, segments), nil
	}
	panic("unreachable")
}

// validateControls checks the shape and the coordinates of c.
func validateControls(op string, c Controls) error {
	var pts []vec.Vec2
	switch ctl := c.(type) {
	case Hermite:
		if len(ctl) != 4 {
			return &InvalidShapeError{Op: op, Kind: "hermite curve", Got: len(ctl), Want: "exactly 4"}
		}
		pts = ctl
	case Cardinal:
		if len(ctl.Points) < 2 {
			return &InvalidShapeError{Op: op, Kind: "cardinal spline", Got: len(ctl.Points), Want: "at least 2"}
		}
		if !isFinite(ctl.Tension) {
			return &InvalidArgumentError{Op: op, Arg: "tension", Err: ErrNonFinite}
		}
		if ctl.Tension < minTension || ctl.Tension > maxTension {
			return &InvalidArgumentError{Op: op, Arg: "tension", Err: ErrOutOfRange}
		}
		pts = ctl.Points
	case Bezier:
		if len(ctl) < 2 {
			return &InvalidShapeError{Op: op, Kind: "bezier curve", Got: len(ctl), Want: "at least 2"}
		}
		pts = ctl
	case nil:
		return &InvalidShapeError{Op: op, Kind: "curve", Got: 0, Want: "a control structure"}
	default:
		return &InvalidShapeError{Op: op, Kind: fmt.Sprintf("%T", c), Got: 0, Want: "a known curve type"}
	}
	return checkPoints(op, "controls", pts)
}

// hermite samples a single Hermite segment.
func (b *Basis) hermite(p0, t0, p1, t1 vec.Vec2, segments int) []vec.Vec2 {
	basis := b.Hermite(segments)
	res := make([]vec.Vec2, len(basis))
	for i, h := range basis {
		res[i] = hermitePoint(h, p0, t0, p1, t1)
	}
	return res
}

func hermitePoint(h [4]float64, p0, t0, p1, t1 vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: h[0]*p0.X + h[1]*p1.X + h[2]*t0.X + h[3]*t1.X,
		Y: h[0]*p0.Y + h[1]*p1.Y + h[2]*t0.Y + h[3]*t1.Y,
	}
}

// cardinal samples every segment of a cardinal spline with the Hermite
// basis. At the ends of the spline the missing neighbour is replaced by the
// end point itself.
func (b *Basis) cardinal(c Cardinal, segments int) []vec.Vec2 {
	pts := c.Points
	last := len(pts) - 1
	alpha := (1 - c.Tension) / 2
	basis := b.Hermite(segments)

	res := make([]vec.Vec2, 0, last*segments+1)
	for i := range last {
		prev := pts[max(i-1, 0)]
		p0 := pts[i]
		p1 := pts[i+1]
		next := pts[min(i+2, last)]

		t0 := p1.Sub(prev).Mul(alpha)
		t1 := next.Sub(p0).Mul(alpha)

		start := 0
		if i > 0 {
			start = 1 // shared with the end of the previous segment
		}
		for _, h := range basis[start:] {
			res = append(res, hermitePoint(h, p0, t0, p1, t1))
		}
	}
	return res
}

// bezierCubic samples a cubic Bézier curve using the power basis and the
// constant Bézier matrix.
func (b *Basis) bezierCubic(ctl Bezier, segments int) []vec.Vec2 {
	power := b.Power(segments)
	m := &cubicBezierMatrix
	res := make([]vec.Vec2, len(power))
	for i, tp := range power {
		var p vec.Vec2
		for k := range 4 {
			w := tp[0]*m[0][k] + tp[1]*m[1][k] + tp[2]*m[2][k] + tp[3]*m[3][k]
			p.X += w * ctl[k].X
			p.Y += w * ctl[k].Y
		}
		res[i] = p
	}
	return res
}

// bezierGeneral samples a Bézier curve of any degree using Bernstein
// blending.
func (b *Basis) bezierGeneral(ctl Bezier, segments int) []vec.Vec2 {
	blending := b.Bernstein(ctl.Degree(), segments)
	res := make([]vec.Vec2, len(blending))
	for i, weights := range blending {
		var p vec.Vec2
		for k, w := range weights {
			p.X += w * ctl[k].X
			p.Y += w * ctl[k].Y
		}
		res[i] = p
	}
	return res
}
