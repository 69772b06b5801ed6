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
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Sink receives the pixels produced by a Renderer.
//
// Coordinates passed to SetPixel may lie outside the device grid.
// Implementations must ignore or clip such writes.
type Sink interface {
	// Clear resets every pixel to the background colour.
	Clear()

	// SetPixel sets the pixel in column x and row y to c.
	SetPixel(x, y int, c color.Color)
}

// Framebuffer is a Sink which stores pixels in memory.
type Framebuffer struct {
	// Img holds the pixel data. Row 0 is the top row of the image.
	Img *image.RGBA

	// Background is the colour used by Clear.
	Background color.Color
}

// NewFramebuffer allocates a black width×height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		Background: color.Black,
	}
	fb.Clear()
	return fb
}

// Clear implements the Sink interface.
func (fb *Framebuffer) Clear() {
	draw.Draw(fb.Img, fb.Img.Bounds(), image.NewUniform(fb.Background), image.Point{}, draw.Src)
}

// SetPixel implements the Sink interface.
// Writes outside the image bounds are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(fb.Img.Rect) {
		return
	}
	fb.Img.Set(x, y, c)
}

// At returns the colour of the pixel at (x, y).
func (fb *Framebuffer) At(x, y int) color.RGBA {
	return fb.Img.RGBAAt(x, y)
}

// Present returns an enlarged copy of the framebuffer in which every pixel
// becomes a scale×scale block. If grid is non-nil, the boundaries between
// the blocks are drawn in that colour, which makes individual pixels
// visible.
func (fb *Framebuffer) Present(scale int, grid color.Color) *image.RGBA {
	scale = max(scale, 1)
	b := fb.Img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), fb.Img, b, draw.Src, nil)

	if grid == nil || scale < 3 {
		return dst
	}
	src := image.NewUniform(grid)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	for x := 0; x <= w; x += scale {
		draw.Draw(dst, image.Rect(x, 0, x+1, h), src, image.Point{}, draw.Over)
	}
	for y := 0; y <= h; y += scale {
		draw.Draw(dst, image.Rect(0, y, w, y+1), src, image.Point{}, draw.Over)
	}
	return dst
}
