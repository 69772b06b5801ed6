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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Device describes a fixed-size pixel grid.
//
// World space spans [-1, 1] along each axis, independent of the grid size.
// World x = -1 maps to device column 0 and world y = -1 maps to device row 0.
type Device struct {
	Width  int
	Height int
}

// Bounds returns the device rectangle covered by the grid.
func (d Device) Bounds() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(d.Width),
		URy: float64(d.Height),
	}
}

// WorldToDevice maps a world-space point to the device grid.
// Coordinates are truncated towards zero, not rounded.
func (d Device) WorldToDevice(p vec.Vec2) image.Point {
	halfW := float64(d.Width) / 2
	halfH := float64(d.Height) / 2
	return image.Point{
		X: int(halfW + p.X*halfW),
		Y: int(halfH + p.Y*halfH),
	}
}

// DeviceToWorld maps a device pixel back to world space.
// This is the exact algebraic inverse of the mapping used by WorldToDevice,
// before truncation.
func (d Device) DeviceToWorld(q image.Point) vec.Vec2 {
	halfW := float64(d.Width) / 2
	halfH := float64(d.Height) / 2
	return vec.Vec2{
		X: (float64(q.X) - halfW) / halfW,
		Y: (float64(q.Y) - halfH) / halfH,
	}
}

// WorldToDeviceAll maps every point of ps to the device grid.
func (d Device) WorldToDeviceAll(ps []vec.Vec2) []image.Point {
	res := make([]image.Point, len(ps))
	for i, p := range ps {
		res[i] = d.WorldToDevice(p)
	}
	return res
}

// DeviceToWorldAll maps every device pixel of qs back to world space.
func (d Device) DeviceToWorldAll(qs []image.Point) []vec.Vec2 {
	res := make([]vec.Vec2, len(qs))
	for i, q := range qs {
		res[i] = d.DeviceToWorld(q)
	}
	return res
}
