package testcases

import "math"

var lineCases = []TestCase{
	{
		Name:   "diagonal",
		Shape:  Line{P0: pt(-1, -1), P1: pt(1, 1)},
		Width:  500,
		Height: 500,
	},
	{
		Name:   "horizontal",
		Shape:  Line{P0: pt(-0.8, 0), P1: pt(0.8, 0)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "vertical",
		Shape:  Line{P0: pt(0, -0.8), P1: pt(0, 0.8)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "shallow",
		Shape:  Line{P0: pt(-0.9, -0.1), P1: pt(0.9, 0.2)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "steep",
		Shape:  Line{P0: pt(0.1, -0.9), P1: pt(-0.2, 0.9)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "degenerate",
		Shape:  Line{P0: pt(0.25, 0.25), P1: pt(0.25, 0.25)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "outside",
		Shape:  Line{P0: pt(-1.5, 0.3), P1: pt(1.5, -0.3)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "fan",
		Shape:  fan(16, 0.9),
		Width:  64,
		Height: 64,
	},
}

// fan returns an open primitive with n spokes leaving the origin,
// so that every octant is visited.
func fan(n int, radius float64) Polyline {
	var p Polyline
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		p.Primitive.Verts = append(p.Primitive.Verts,
			pt(0, 0),
			pt(radius*math.Cos(phi), radius*math.Sin(phi)))
	}
	return p
}
