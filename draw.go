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
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// DrawPrimitive draws the edges between consecutive vertices of p.
// If connect is true, the edge from the last vertex back to the first one
// is drawn as well. No transformation is applied.
//
// If p is invalid, nothing is drawn and an error is returned.
func (r *Renderer) DrawPrimitive(p Primitive, connect bool, c color.Color) error {
	if err := validatePrimitive("DrawPrimitive", p); err != nil {
		return reject(err)
	}

	r.drawPolyline(p.Verts, c)
	if connect {
		r.DrawLine(p.Verts[len(p.Verts)-1], p.Verts[0], c)
	}
	return nil
}

// CurveOptions selects what DrawCurve draws.
type CurveOptions struct {
	// ShowLine draws the sampled curve as a polyline.
	ShowLine bool

	// ShowPoints marks every sample with a point glyph.
	ShowPoints bool

	// ShowControl draws the control structure: control points and the
	// control polygon, or the tangent handles of a Hermite curve.
	ShowControl bool
}

// DrawCurve samples the curve described by ctl and draws the parts selected
// by opts. The samples are returned, in world coordinates.
//
// If ctl is malformed or segments is not positive, nothing is drawn and an
// error is returned.
func (r *Renderer) DrawCurve(ctl Controls, segments int, opts CurveOptions, c color.Color) ([]vec.Vec2, error) {
	samples, err := r.Basis.evaluate("DrawCurve", ctl, segments)
	if err != nil {
		return nil, reject(err)
	}

	if opts.ShowLine {
		r.drawPolyline(samples, c)
	}
	if opts.ShowPoints {
		for _, p := range samples {
			r.DrawPoint(p, r.MarkerColor)
		}
	}
	if opts.ShowControl {
		r.drawControls(ctl)
	}
	return samples, nil
}

func (r *Renderer) drawPolyline(pts []vec.Vec2, c color.Color) {
	for i := 1; i < len(pts); i++ {
		r.DrawLine(pts[i-1], pts[i], c)
	}
}

// drawControls draws the control overlay of a validated curve.
func (r *Renderer) drawControls(ctl Controls) {
	switch ctl := ctl.(type) {
	case Hermite:
		p0, t0, p1, t1 := ctl[0], ctl[1], ctl[2], ctl[3]
		r.DrawPoint(p0, r.ControlColor)
		r.DrawPoint(p1, r.ControlColor)
		r.DrawLine(p0, p0.Add(t0.Mul(r.HandleScale)), r.HandleColor)
		r.DrawLine(p1, p1.Add(t1.Mul(r.HandleScale)), r.HandleColor)
	case Cardinal:
		r.drawControlPolygon(ctl.Points)
	case Bezier:
		r.drawControlPolygon(ctl)
	}
}

func (r *Renderer) drawControlPolygon(pts []vec.Vec2) {
	for _, p := range pts {
		r.DrawPoint(p, r.ControlColor)
	}
	r.drawPolyline(pts, r.HandleColor)
}
