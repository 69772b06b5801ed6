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

// Renderer draws lines, primitives and curves onto a Sink.
//
// World coordinates are mapped to the device grid with Device before
// rasterization. Out-of-range pixels are passed to the sink unchanged;
// clipping is the sink's responsibility.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Device is the size of the pixel grid. It must not change after the
	// first draw call.
	Device Device

	// Sink receives all pixel writes.
	Sink Sink

	// Basis holds the blending tables used for curve evaluation.
	// Renderers created by NewRenderer share the package-wide tables.
	Basis *Basis

	// MarkerColor is used for the sample markers of DrawCurve.
	MarkerColor color.Color

	// ControlColor is used for control point markers.
	ControlColor color.Color

	// HandleColor is used for the control polygon and tangent handles.
	HandleColor color.Color

	// HandleScale shortens Hermite tangent handles before drawing,
	// since raw tangents often reach far outside the visible area.
	HandleScale float64
}

// NewRenderer returns a Renderer for a width×height grid which writes to
// sink, using the default overlay colours.
func NewRenderer(sink Sink, width, height int) *Renderer {
	return &Renderer{
		Device:       Device{Width: width, Height: height},
		Sink:         sink,
		Basis:        defaultBasis,
		MarkerColor:  defaultMarkerColor,
		ControlColor: defaultControlColor,
		HandleColor:  defaultHandleColor,
		HandleScale:  defaultHandleScale,
	}
}

// Default overlay settings.
var (
	defaultMarkerColor  color.Color = color.RGBA{R: 255, A: 255}
	defaultControlColor color.Color = color.RGBA{B: 255, A: 255}
	defaultHandleColor  color.Color = color.RGBA{G: 255, A: 255}
)

const defaultHandleScale = 0.25

// Clear wipes the sink.
func (r *Renderer) Clear() {
	r.Sink.Clear()
}

// DrawPixel sets the pixel containing the world-space point p.
func (r *Renderer) DrawPixel(p vec.Vec2, c color.Color) {
	q := r.Device.WorldToDevice(p)
	r.Sink.SetPixel(q.X, q.Y, c)
}

// DrawPixelDevice sets a single device pixel.
func (r *Renderer) DrawPixelDevice(x, y int, c color.Color) {
	r.Sink.SetPixel(x, y, c)
}

// DrawPoint draws a marker centred on the world-space point p.
func (r *Renderer) DrawPoint(p vec.Vec2, c color.Color) {
	q := r.Device.WorldToDevice(p)
	r.DrawPointDevice(q.X, q.Y, c)
}

// DrawPointDevice draws a five pixel marker: the centre pixel and its four
// diagonal neighbours.
func (r *Renderer) DrawPointDevice(x, y int, c color.Color) {
	r.Sink.SetPixel(x-1, y-1, c)
	r.Sink.SetPixel(x+1, y-1, c)
	r.Sink.SetPixel(x, y, c)
	r.Sink.SetPixel(x+1, y+1, c)
	r.Sink.SetPixel(x-1, y+1, c)
}

// DrawLine draws the segment between two world-space points.
func (r *Renderer) DrawLine(p0, p1 vec.Vec2, c color.Color) {
	q0 := r.Device.WorldToDevice(p0)
	q1 := r.Device.WorldToDevice(p1)
	r.DrawLineDevice(q0.X, q0.Y, q1.X, q1.Y, c)
}

// octant identifies one of the eight slope regions of a line segment.
//
//	octant  dx   dy   major axis
//	0       >=0  >=0  x, |dx| >= |dy|
//	1       >=0  >=0  y
//	2       <0   >=0  y
//	3       <0   >=0  x, descending
//	4       <0   <0   x, descending
//	5       <0   <0   y, descending
//	6       >=0  <0   y, descending
//	7       >=0  <0   x
type octant int

func classify(dx, dy int) octant {
	adx, ady := abs(dx), abs(dy)
	switch {
	case dx >= 0 && dy >= 0:
		if adx >= ady {
			return 0
		}
		return 1
	case dx < 0 && dy >= 0:
		if adx >= ady {
			return 3
		}
		return 2
	case dx < 0 && dy < 0:
		if adx >= ady {
			return 4
		}
		return 5
	default:
		if adx >= ady {
			return 7
		}
		return 6
	}
}

// DrawLineDevice draws a line between two device pixels using Bresenham's
// algorithm. Both end points are included, and every integer coordinate
// along the major axis receives exactly one pixel. The set of pixels does
// not depend on the order of the end points.
func (r *Renderer) DrawLineDevice(x0, y0, x1, y1 int, c color.Color) {
	switch classify(x1-x0, y1-y0) {
	case 0:
		r.lineOctant0(x0, y0, x1, y1, c)
	case 1:
		r.lineOctant1(x0, y0, x1, y1, c)
	case 2:
		r.lineOctant2(x0, y0, x1, y1, c)
	case 3:
		r.lineOctant3(x0, y0, x1, y1, c)
	case 4:
		r.lineOctant4(x0, y0, x1, y1, c)
	case 5:
		r.lineOctant5(x0, y0, x1, y1, c)
	case 6:
		r.lineOctant6(x0, y0, x1, y1, c)
	case 7:
		r.lineOctant7(x0, y0, x1, y1, c)
	}
}

// The descending handlers (octants 3 to 6) start from the opposite end
// point of their mirror octant. Their error term is biased by one so that
// ties are resolved towards the same pixel as in the ascending handler.

// lineOctant0 steps x upwards, y upwards.
func (r *Renderer) lineOctant0(x0, y0, x1, y1 int, c color.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0
	e := 2*dy - dx
	y := y0
	for x := x0; x <= x1; x++ {
		r.Sink.SetPixel(x, y, c)
		if e > 0 {
			y++
			e += 2 * (dy - dx)
		} else {
			e += 2 * dy
		}
	}
}

// lineOctant1 steps y upwards, x upwards.
func (r *Renderer) lineOctant1(x0, y0, x1, y1 int, c color.Color) {
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0
	e := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		r.Sink.SetPixel(x, y, c)
		if e > 0 {
			x++
			e += 2 * (dx - dy)
		} else {
			e += 2 * dx
		}
	}
}

// lineOctant2 steps y upwards, x downwards.
func (r *Renderer) lineOctant2(x0, y0, x1, y1 int, c color.Color) {
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x0 - x1
	dy := y1 - y0
	e := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		r.Sink.SetPixel(x, y, c)
		if e > 0 {
			x--
			e += 2 * (dx - dy)
		} else {
			e += 2 * dx
		}
	}
}

// lineOctant3 steps x downwards, y upwards.
func (r *Renderer) lineOctant3(x0, y0, x1, y1 int, c color.Color) {
	if x0 < x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x0 - x1
	dy := y1 - y0
	e := 2*dy - dx + 1
	y := y0
	for x := x0; x >= x1; x-- {
		r.Sink.SetPixel(x, y, c)
		if e > 0 {
			y++
			e += 2 * (dy - dx)
		} else {
			e += 2 * dy
		}
	}
}

// lineOctant4 steps x downwards, y downwards.
func (r *Renderer) lineOctant4(x0, y0, x1, y1 int, c color.Color) {
	if x0 < x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x0 - x1
	dy := y0 - y1
	e := 2*dy - dx + 1
	y := y0
	for x := x0; x >= x1; x-- {
		r.Sink.SetPixel(x, y, c)
		if e > 0 {
			y--
			e += 2 * (dy - dx)
		} else {
			e += 2 * dy
		}
	}
}

// lineOctant5 steps y downwards, x downwards.
func (r *Renderer) lineOctant5(x0, y0, x1, y1 int, c color.Color) {
	if y0 < y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x0 - x1
	dy := y0 - y1
	e := 2*dx - dy + 1
	x := x0
	for y := y0; y >= y1; y-- {
		r.Sink.SetPixel(x, y, c)
		if e > 0 {
			x--
			e += 2 * (dx - dy)
		} else {
			e += 2 * dx
		}
	}
}

// lineOctant6 steps y downwards, x upwards.
func (r *Renderer) lineOctant6(x0, y0, x1, y1 int, c color.Color) {
	if y0 < y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y0 - y1
	e := 2*dx - dy + 1
	x := x0
	for y := y0; y >= y1; y-- {
		r.Sink.SetPixel(x, y, c)
		if e > 0 {
			x++
			e += 2 * (dx - dy)
		} else {
			e += 2 * dx
		}
	}
}

// lineOctant7 steps x upwards, y downwards.
func (r *Renderer) lineOctant7(x0, y0, x1, y1 int, c color.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y0 - y1
	e := 2*dy - dx
	y := y0
	for x := x0; x <= x1; x++ {
		r.Sink.SetPixel(x, y, c)
		if e > 0 {
			y--
			e += 2 * (dy - dx)
		} else {
			e += 2 * dy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
