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

import "seehuhn.de/go/geom/vec"

// BPoint describes an on-curve point together with its neighbouring
// control points.
type BPoint struct {
	Anchor *Point

	// In and Out are the positions of the incoming and outgoing control
	// points, relative to the anchor.  The zero vector is used on sides
	// where the anchor has no control point.
	In, Out vec.Vec2
}

// BPoints returns one BPoint for every on-curve point of the contour.
func (c *Contour) BPoints() []BPoint {
	pp := c.Points
	n := len(pp)
	closed := !c.IsOpen()

	var res []BPoint
	for i, p := range pp {
		if !p.Type.IsOnCurve() {
			continue
		}
		bp := BPoint{Anchor: p}

		prev := i - 1
		if prev < 0 && closed {
			prev = n - 1
		}
		if prev >= 0 && prev != i && pp[prev].Type == OffCurve {
			bp.In = vec.Vec2{X: pp[prev].X - p.X, Y: pp[prev].Y - p.Y}
		}

		next := i + 1
		if next >= n && closed {
			next = 0
		}
		if next < n && next != i && pp[next].Type == OffCurve {
			bp.Out = vec.Vec2{X: pp[next].X - p.X, Y: pp[next].Y - p.Y}
		}

		res = append(res, bp)
	}
	return res
}
