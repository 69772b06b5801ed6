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
	"log/slog"
	"sync"
)

// Basis memoizes the blending tables used by the curve evaluators.
//
// Tables are computed on first use and never invalidated: segment counts
// and degrees are small and are reused from frame to frame. A returned
// table is shared between callers and must not be modified.
//
// A Basis is safe for concurrent use.
type Basis struct {
	mu        sync.Mutex
	hermite   map[int][][4]float64
	power     map[int][][4]float64
	bernstein map[bernsteinKey][][]float64
	binomial  map[binomialKey]float64
}

type bernsteinKey struct {
	degree, segments int
}

type binomialKey struct {
	n, k int
}

// NewBasis returns an empty set of basis tables.
func NewBasis() *Basis {
	return &Basis{
		hermite:   make(map[int][][4]float64),
		power:     make(map[int][][4]float64),
		bernstein: make(map[bernsteinKey][][]float64),
		binomial:  make(map[binomialKey]float64),
	}
}

// defaultBasis is shared by Evaluate and by all renderers from NewRenderer.
var defaultBasis = NewBasis()

// cubicBezierMatrix converts the power basis (t³, t², t, 1) into the cubic
// Bernstein weights: (t³, t², t, 1) · M = ((1-t)³, 3t(1-t)², 3t²(1-t), t³).
var cubicBezierMatrix = [4][4]float64{
	{-1, 3, -3, 1},
	{3, -6, 3, 0},
	{-3, 3, 0, 0},
	{1, 0, 0, 0},
}

// Hermite returns the Hermite weights (h0, h1, h2, h3) at t = i/segments
// for i = 0, ..., segments. Weights h0 and h1 belong to the end points,
// h2 and h3 to the tangents.
func (b *Basis) Hermite(segments int) [][4]float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if tab, ok := b.hermite[segments]; ok {
		return tab
	}
	Logger().Debug("computing basis", slog.String("table", "hermite"), slog.Int("segments", segments))

	tab := make([][4]float64, segments+1)
	for i := range tab {
		t := float64(i) / float64(segments)
		t2 := t * t
		t3 := t2 * t
		tab[i] = [4]float64{
			2*t3 - 3*t2 + 1,
			-2*t3 + 3*t2,
			t3 - 2*t2 + t,
			t3 - t2,
		}
	}
	b.hermite[segments] = tab
	return tab
}

// Power returns the power basis (t³, t², t, 1) at t = i/segments
// for i = 0, ..., segments.
func (b *Basis) Power(segments int) [][4]float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if tab, ok := b.power[segments]; ok {
		return tab
	}
	Logger().Debug("computing basis", slog.String("table", "power"), slog.Int("segments", segments))

	tab := make([][4]float64, segments+1)
	for i := range tab {
		t := float64(i) / float64(segments)
		tab[i] = [4]float64{t * t * t, t * t, t, 1}
	}
	b.power[segments] = tab
	return tab
}

// Bernstein returns the Bernstein weights B_{k,degree}(t) for
// k = 0, ..., degree at t = i/segments for i = 0, ..., segments.
func (b *Basis) Bernstein(degree, segments int) [][]float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := bernsteinKey{degree: degree, segments: segments}
	if tab, ok := b.bernstein[key]; ok {
		return tab
	}
	Logger().Debug("computing basis", slog.String("table", "bernstein"),
		slog.Int("degree", degree), slog.Int("segments", segments))

	tab := make([][]float64, segments+1)
	for i := range tab {
		t := float64(i) / float64(segments)
		row := make([]float64, degree+1)
		for k := range row {
			row[k] = b.binomialLocked(degree, k) * powi(t, k) * powi(1-t, degree-k)
		}
		tab[i] = row
	}
	b.bernstein[key] = tab
	return tab
}

// Binomial returns the binomial coefficient C(n, k) for 0 <= k <= n.
func (b *Basis) Binomial(n, k int) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.binomialLocked(n, k)
}

// binomialLocked evaluates Pascal's rule with memoization.
// The caller must hold b.mu.
func (b *Basis) binomialLocked(n, k int) float64 {
	if k == 0 || k == n {
		return 1
	}
	key := binomialKey{n: n, k: k}
	if c, ok := b.binomial[key]; ok {
		return c
	}
	c := b.binomialLocked(n-1, k-1) + b.binomialLocked(n-1, k)
	b.binomial[key] = c
	return c
}

// powi returns x**n for n >= 0, with powi(0, 0) == 1.
func powi(x float64, n int) float64 {
	res := 1.0
	for range n {
		res *= x
	}
	return res
}
