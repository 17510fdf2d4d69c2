// seehuhn.de/go/slant - skew and rotate glyph outlines
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

package outline

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// tEps is the smallest distance, in curve parameter space, between a new
// extreme point and an existing on-curve point.
const tEps = 1e-6

// ExtremePoints adds on-curve points at all horizontal and vertical extrema
// of the curve segments of the glyph.  If round is true, the coordinates of
// new points are rounded to integers.
func (g *Glyph) ExtremePoints(round bool) {
	for _, c := range g.Contours {
		c.ExtremePoints(round)
	}
}

// ExtremePoints adds on-curve points at all horizontal and vertical extrema
// of the curve segments of the contour.
//
// Each cubic segment is split at every interior parameter value where the
// tangent is horizontal or vertical.  New points are marked as smooth.
func (c *Contour) ExtremePoints(round bool) {
	pp := c.Points
	var onIdx []int
	for i, p := range pp {
		if p.Type.IsOnCurve() {
			onIdx = append(onIdx, i)
		}
	}
	if len(onIdx) == 0 {
		return
	}

	changed := false
	split := func(start *Point, offs []*Point, end *Point) []*Point {
		if end.Type != Curve || len(offs) != 2 {
			return offs
		}
		seq := splitAtExtrema(start, offs[0], offs[1], end, round)
		if len(seq) != len(offs) {
			changed = true
		}
		return seq
	}

	first, last := onIdx[0], onIdx[len(onIdx)-1]

	var head, tail []*Point
	if c.IsOpen() {
		head = pp[:first]
		tail = pp[last+1:]
	} else {
		wrapped := slices.Concat(pp[last+1:], pp[:first])
		seq := split(pp[last], wrapped, pp[first])
		if len(seq) == len(wrapped) {
			tail = pp[last+1:]
			head = pp[:first]
		} else {
			head = seq
		}
	}

	res := slices.Clone(head)
	res = append(res, pp[first])
	for k := 1; k < len(onIdx); k++ {
		i0, i1 := onIdx[k-1], onIdx[k]
		res = append(res, split(pp[i0], pp[i0+1:i1], pp[i1])...)
		res = append(res, pp[i1])
	}
	res = append(res, tail...)

	if changed {
		c.Points = res
	}
}

// splitAtExtrema splits the cubic Bézier curve p0, p1, p2, p3 at all
// interior extrema.  The returned slice contains the points which replace
// p1 and p2: the control points of the pieces, interleaved with the new
// on-curve points.  The original control point objects are reused for the
// last piece.
func splitAtExtrema(p0, p1, p2, p3 *Point, round bool) []*Point {
	a, b, c, d := p0.Vec(), p1.Vec(), p2.Vec(), p3.Vec()

	ts := slices.Concat(
		derivativeRoots(a.X, b.X, c.X, d.X),
		derivativeRoots(a.Y, b.Y, c.Y, d.Y),
	)
	slices.Sort(ts)

	var res []*Point
	tPrev := 0.0
	for _, t := range ts {
		if t-tPrev < tEps {
			continue
		}
		// map t into the parameter range of the remaining piece
		s := (t - tPrev) / (1 - tPrev)
		l1, l2, m, r1, r2 := deCasteljau(a, b, c, d, s)
		if round {
			m = vec.Vec2{X: Round(m.X), Y: Round(m.Y)}
		}
		res = append(res,
			&Point{X: l1.X, Y: l1.Y, Type: OffCurve},
			&Point{X: l2.X, Y: l2.Y, Type: OffCurve},
			&Point{X: m.X, Y: m.Y, Type: Curve, Smooth: true},
		)
		a, b, c = m, r1, r2
		tPrev = t
	}
	if res == nil {
		return []*Point{p1, p2}
	}

	p1.X, p1.Y = b.X, b.Y
	p2.X, p2.Y = c.X, c.Y
	return append(res, p1, p2)
}

// derivativeRoots returns the parameter values in (tEps, 1-tEps) where the
// derivative of the one-dimensional cubic Bézier curve a, b, c, d vanishes.
func derivativeRoots(a, b, c, d float64) []float64 {
	// B'(t)/3 = A t^2 + B t + C
	A := -a + 3*b - 3*c + d
	B := 2 * (a - 2*b + c)
	C := b - a

	var cand []float64
	const eps = 1e-12
	switch {
	case math.Abs(A) < eps:
		if math.Abs(B) >= eps {
			cand = append(cand, -C/B)
		}
	default:
		disc := B*B - 4*A*C
		if disc < 0 {
			return nil
		}
		sq := math.Sqrt(disc)
		cand = append(cand, (-B+sq)/(2*A), (-B-sq)/(2*A))
	}

	var res []float64
	for _, t := range cand {
		if t > tEps && t < 1-tEps {
			res = append(res, t)
		}
	}
	return res
}

// deCasteljau splits the cubic Bézier curve a, b, c, d at parameter t.
// The left piece is a, l1, l2, m and the right piece is m, r1, r2, d.
func deCasteljau(a, b, c, d vec.Vec2, t float64) (l1, l2, m, r1, r2 vec.Vec2) {
	lerp := func(p, q vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
	}
	ab := lerp(a, b)
	bc := lerp(b, c)
	cd := lerp(c, d)
	abc := lerp(ab, bc)
	bcd := lerp(bc, cd)
	m = lerp(abc, bcd)
	return ab, abc, m, bcd, cd
}
