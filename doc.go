// Package sketch implements a pixel-level renderer for lines, polylines and
// parametric curves.
//
// Shapes are given in a normalized world space, where both axes span the
// interval [-1, 1]. A [Renderer] maps world coordinates onto a fixed-size
// device grid and rasterizes line segments with Bresenham's algorithm,
// writing one pixel at a time to a [Sink]. No anti-aliasing is performed.
//
// Curves are described by one of the [Controls] types [Hermite], [Cardinal]
// and [Bezier]. [Evaluate] turns a curve into a polyline by sampling it at
// equally spaced parameter values, using blending tables which are cached
// in a [Basis]. The functions [Translate], [Scale] and [Rotate], and their
// curve counterparts, transform shapes before they are drawn.
package sketch

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
