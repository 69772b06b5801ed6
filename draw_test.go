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
	"errors"
	"image"
	"image/color"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

// square has its corners at device pixels (2,2), (6,2), (6,6) and (2,6)
// on a 10×10 grid.
var square = Primitive{
	Verts: []vec.Vec2{
		{X: -0.6, Y: -0.6},
		{X: 0.2, Y: -0.6},
		{X: 0.2, Y: 0.2},
		{X: -0.6, Y: 0.2},
	},
}

func TestDrawPrimitiveConnect(t *testing.T) {
	open := &recorder{}
	closed := &recorder{}
	if err := NewRenderer(open, 10, 10).DrawPrimitive(square, false, color.White); err != nil {
		t.Fatal(err)
	}
	if err := NewRenderer(closed, 10, 10).DrawPrimitive(square, true, color.White); err != nil {
		t.Fatal(err)
	}

	closing := image.Point{X: 2, Y: 4}
	if slices.Contains(open.pixels, closing) {
		t.Errorf("open primitive contains %v from the closing edge", closing)
	}
	if !slices.Contains(closed.pixels, closing) {
		t.Errorf("closed primitive is missing %v", closing)
	}
	// three edges of five pixels each, then the closing edge
	if len(open.pixels) != 15 || len(closed.pixels) != 20 {
		t.Errorf("got %d and %d writes, want 15 and 20", len(open.pixels), len(closed.pixels))
	}
	if d := cmp.Diff(open.pixels, closed.pixels[:15]); d != "" {
		t.Errorf("closed primitive does not start with the open one (-open +closed):\n%s", d)
	}
}

func TestDrawPrimitiveInvalid(t *testing.T) {
	rec := &recorder{}
	r := NewRenderer(rec, 10, 10)

	cases := map[string]Primitive{
		"empty":      {},
		"single":     {Verts: []vec.Vec2{{}}},
		"nan_vert":   {Verts: []vec.Vec2{{}, {X: math.NaN()}, {X: 1}}},
		"inf_vert":   {Verts: []vec.Vec2{{Y: math.Inf(1)}, {}}},
		"nan_center": {Verts: []vec.Vec2{{}, {X: 0.5}}, Center: vec.Vec2{X: math.NaN()}},
	}
	for name, p := range cases {
		if err := r.DrawPrimitive(p, true, color.White); err == nil {
			t.Errorf("%s: no error", name)
		}
	}
	if len(rec.pixels) != 0 {
		t.Errorf("invalid primitives wrote %d pixels", len(rec.pixels))
	}
}

func TestDrawCurveOptions(t *testing.T) {
	ctl := Bezier{{X: -0.5, Y: -0.5}, {X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5}}
	const segments = 6

	colours := func(opts CurveOptions) map[color.Color]int {
		rec := &recorder{}
		samples, err := NewRenderer(rec, 40, 40).DrawCurve(ctl, segments, opts, color.White)
		if err != nil {
			t.Fatal(err)
		}
		if len(samples) != segments+1 {
			t.Errorf("%d samples, want %d", len(samples), segments+1)
		}
		res := make(map[color.Color]int)
		for _, c := range rec.colors {
			res[c]++
		}
		return res
	}

	none := colours(CurveOptions{})
	if len(none) != 0 {
		t.Errorf("empty options drew %v", none)
	}

	line := colours(CurveOptions{ShowLine: true})
	if len(line) != 1 || line[color.White] == 0 {
		t.Errorf("ShowLine drew %v", line)
	}

	points := colours(CurveOptions{ShowPoints: true})
	if points[defaultMarkerColor] != 5*(segments+1) || len(points) != 1 {
		t.Errorf("ShowPoints drew %v", points)
	}

	control := colours(CurveOptions{ShowControl: true})
	if control[defaultControlColor] != 5*len(ctl) || control[defaultHandleColor] == 0 {
		t.Errorf("ShowControl drew %v", control)
	}
	if control[color.White] != 0 {
		t.Error("ShowControl drew the curve")
	}
}

func TestDrawCurveHermiteHandles(t *testing.T) {
	rec := &recorder{}
	r := NewRenderer(rec, 20, 20)
	r.HandleScale = 0.5
	ctl := Hermite{{X: 0, Y: 0}, {X: 0.4, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: -0.4}}
	_, err := r.DrawCurve(ctl, 4, CurveOptions{ShowControl: true}, color.White)
	if err != nil {
		t.Fatal(err)
	}

	handle := &recorder{}
	for i, c := range rec.colors {
		if c == defaultHandleColor {
			handle.SetPixel(rec.pixels[i].X, rec.pixels[i].Y, c)
		}
	}
	// the first handle runs from (10,10) to (12,10), the second one from
	// (15,15) to (15,13)
	want := []image.Point{{10, 10}, {11, 10}, {12, 10}, {15, 13}, {15, 14}, {15, 15}}
	if d := cmp.Diff(want, handle.sorted()); d != "" {
		t.Errorf("unexpected handle pixels (-want +got):\n%s", d)
	}
}

func TestDrawCurveInvalid(t *testing.T) {
	rec := &recorder{}
	r := NewRenderer(rec, 10, 10)
	opts := CurveOptions{ShowLine: true, ShowPoints: true, ShowControl: true}

	samples, err := r.DrawCurve(Hermite{{}, {}}, 4, opts, color.White)
	var shapeErr *InvalidShapeError
	if !errors.As(err, &shapeErr) || samples != nil {
		t.Errorf("short Hermite: got %v, %v", samples, err)
	}
	samples, err = r.DrawCurve(Bezier{{}, {X: 1}}, 0, opts, color.White)
	if !errors.Is(err, ErrNonPositive) || samples != nil {
		t.Errorf("zero segments: got %v, %v", samples, err)
	}
	if len(rec.pixels) != 0 {
		t.Errorf("invalid curves wrote %d pixels", len(rec.pixels))
	}
}
