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
	"testing"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func TestFramebufferSetPixel(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetPixel(1, 2, color.White)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		fb.SetPixel(p[0], p[1], color.White)
	}

	for y := range 3 {
		for x := range 4 {
			want := black
			if x == 1 && y == 2 {
				want = white
			}
			if got := fb.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	fb.SetPixel(2, 2, color.White)
	fb.Background = color.RGBA{R: 10, G: 20, B: 30, A: 255}
	fb.Clear()
	for y := range 5 {
		for x := range 5 {
			if got := fb.At(x, y); got != fb.Background {
				t.Fatalf("pixel (%d,%d) = %v after Clear", x, y, got)
			}
		}
	}

	r := NewRenderer(fb, 5, 5)
	r.DrawPixelDevice(0, 0, color.White)
	r.Clear()
	if got := fb.At(0, 0); got != fb.Background {
		t.Errorf("Renderer.Clear left pixel %v", got)
	}
}

func TestPresent(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetPixel(2, 1, color.White)

	img := fb.Present(4, nil)
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("image size %dx%d, want 12x8", b.Dx(), b.Dy())
	}
	for y := range 8 {
		for x := range 12 {
			want := black
			if x >= 8 && y >= 4 {
				want = white
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	grid := color.RGBA{G: 128, A: 255}
	img = fb.Present(4, grid)
	for _, p := range [][2]int{{0, 0}, {4, 1}, {1, 4}, {8, 6}} {
		if got := img.RGBAAt(p[0], p[1]); got != grid {
			t.Errorf("grid pixel (%d,%d) = %v, want %v", p[0], p[1], got, grid)
		}
	}
	if got := img.RGBAAt(10, 6); got != white {
		t.Errorf("interior pixel = %v, want %v", got, white)
	}

	// no grid for small scales
	img = fb.Present(2, grid)
	if got := img.RGBAAt(0, 0); got != black {
		t.Errorf("pixel (0,0) = %v, want %v", got, black)
	}
}
