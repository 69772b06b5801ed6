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
	"cmp"
	"image"
	"image/color"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

// recorder is a Sink which remembers every write, in order.
type recorder struct {
	pixels  []image.Point
	colors  []color.Color
	cleared int
}

func (r *recorder) Clear() {
	r.cleared++
	r.pixels = r.pixels[:0]
	r.colors = r.colors[:0]
}

func (r *recorder) SetPixel(x, y int, c color.Color) {
	r.pixels = append(r.pixels, image.Point{X: x, Y: y})
	r.colors = append(r.colors, c)
}

// sorted returns the recorded pixels in a canonical order.
func (r *recorder) sorted() []image.Point {
	res := slices.Clone(r.pixels)
	slices.SortFunc(res, func(a, b image.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return res
}

func TestClassify(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   octant
	}{
		{5, 2, 0},
		{5, 5, 0},
		{0, 0, 0},
		{5, 0, 0},
		{2, 5, 1},
		{0, 5, 1},
		{-2, 5, 2},
		{-5, 2, 3},
		{-5, 0, 3},
		{-5, 5, 3},
		{-5, -2, 4},
		{-5, -5, 4},
		{-2, -5, 5},
		{2, -5, 6},
		{0, -5, 6},
		{5, -2, 7},
		{5, -5, 7},
	}
	for _, c := range cases {
		if got := classify(c.dx, c.dy); got != c.want {
			t.Errorf("classify(%d, %d) = %d, want %d", c.dx, c.dy, got, c.want)
		}
	}
}

// TestLineOrderIndependence checks that swapping the end points of a line
// does not change the set of pixels drawn.
func TestLineOrderIndependence(t *testing.T) {
	const n = 6
	fwd := &recorder{}
	bwd := &recorder{}
	rf := NewRenderer(fwd, 16, 16)
	rb := NewRenderer(bwd, 16, 16)

	for x0 := -n; x0 <= n; x0++ {
		for y0 := -n; y0 <= n; y0++ {
			for x1 := -n; x1 <= n; x1++ {
				for y1 := -n; y1 <= n; y1++ {
					fwd.Clear()
					bwd.Clear()
					rf.DrawLineDevice(x0, y0, x1, y1, color.White)
					rb.DrawLineDevice(x1, y1, x0, y0, color.White)
					if d := gocmp.Diff(fwd.sorted(), bwd.sorted()); d != "" {
						t.Fatalf("(%d,%d)-(%d,%d): pixel sets differ (-fwd +bwd):\n%s",
							x0, y0, x1, y1, d)
					}
				}
			}
		}
	}
}

// TestLinePixelCount checks that every major-axis coordinate receives
// exactly one write and that the trace is 8-connected.
func TestLinePixelCount(t *testing.T) {
	rec := &recorder{}
	r := NewRenderer(rec, 64, 64)

	ends := []image.Point{
		{0, 0}, {7, 3}, {3, 7}, {-3, 7}, {-7, 3}, {-7, -3}, {-3, -7}, {3, -7}, {7, -3},
		{10, 0}, {0, 10}, {-10, 0}, {0, -10}, {9, 9}, {-9, 9}, {-9, -9}, {9, -9},
	}
	for _, a := range ends {
		for _, b := range ends {
			rec.Clear()
			r.DrawLineDevice(a.X, a.Y, b.X, b.Y, color.White)

			want := max(abs(b.X-a.X), abs(b.Y-a.Y)) + 1
			if len(rec.pixels) != want {
				t.Errorf("%v-%v: %d pixels, want %d", a, b, len(rec.pixels), want)
				continue
			}
			if s := rec.sorted(); len(slices.Compact(s)) != want {
				t.Errorf("%v-%v: duplicate pixels", a, b)
			}
			for i := 1; i < len(rec.pixels); i++ {
				d := rec.pixels[i].Sub(rec.pixels[i-1])
				if abs(d.X) > 1 || abs(d.Y) > 1 {
					t.Errorf("%v-%v: gap between %v and %v", a, b, rec.pixels[i-1], rec.pixels[i])
				}
			}
			if !slices.Contains(rec.pixels, a) || !slices.Contains(rec.pixels, b) {
				t.Errorf("%v-%v: end points not drawn", a, b)
			}
		}
	}
}

func TestLineDegenerate(t *testing.T) {
	rec := &recorder{}
	r := NewRenderer(rec, 8, 8)
	r.DrawLineDevice(3, 4, 3, 4, color.White)

	want := []image.Point{{3, 4}}
	if d := gocmp.Diff(want, rec.pixels); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}
}

// TestLineErrorStepping checks the exact pixels of a shallow line in
// octant 0. The half-way tie at x=2 stays on the lower row.
func TestLineErrorStepping(t *testing.T) {
	rec := &recorder{}
	r := NewRenderer(rec, 8, 8)
	r.DrawLineDevice(0, 0, 4, 1, color.White)

	want := []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 1}}
	if d := gocmp.Diff(want, rec.pixels); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}
}

// TestWorldDiagonal draws the world diagonal from (-1,-1) to (1,1) on a
// 500×500 grid.
func TestWorldDiagonal(t *testing.T) {
	rec := &recorder{}
	r := NewRenderer(rec, 500, 500)
	r.DrawLine(vec.Vec2{X: -1, Y: -1}, vec.Vec2{X: 1, Y: 1}, color.White)

	if len(rec.pixels) == 0 || rec.pixels[0] != (image.Point{}) {
		t.Fatalf("trace does not start at (0,0): %v", rec.pixels[:min(len(rec.pixels), 3)])
	}
	for i, p := range rec.pixels {
		if p.X != i || p.Y != i {
			t.Fatalf("pixel %d is %v, want (%d,%d)", i, p, i, i)
		}
	}

	// x = 1 maps to column 500, just outside the grid; the framebuffer
	// drops that write.
	fb := NewFramebuffer(500, 500)
	r = NewRenderer(fb, 500, 500)
	r.DrawLine(vec.Vec2{X: -1, Y: -1}, vec.Vec2{X: 1, Y: 1}, color.White)
	lit := 0
	for y := range 500 {
		for x := range 500 {
			if fb.At(x, y) == (color.RGBA{255, 255, 255, 255}) {
				lit++
				if x != y {
					t.Errorf("unexpected pixel (%d,%d)", x, y)
				}
			}
		}
	}
	if lit != 500 {
		t.Errorf("%d pixels lit, want 500", lit)
	}
}

func TestDrawPoint(t *testing.T) {
	rec := &recorder{}
	r := NewRenderer(rec, 10, 10)
	r.DrawPoint(vec.Vec2{X: 0, Y: 0}, color.White)

	want := []image.Point{{4, 4}, {6, 4}, {5, 5}, {4, 6}, {6, 6}}
	if d := gocmp.Diff(want, rec.sorted()); d != "" {
		t.Errorf("unexpected glyph (-want +got):\n%s", d)
	}
}

func TestDrawPixel(t *testing.T) {
	rec := &recorder{}
	r := NewRenderer(rec, 10, 20)
	r.DrawPixel(vec.Vec2{X: -0.5, Y: 0.5}, color.White)
	r.DrawPixelDevice(7, 8, color.White)

	want := []image.Point{{2, 15}, {7, 8}}
	if d := gocmp.Diff(want, rec.pixels); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}
}
