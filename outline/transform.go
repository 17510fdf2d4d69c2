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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// TransformBy maps all points of the contour through M.
func (c *Contour) TransformBy(M matrix.Matrix) {
	for _, p := range c.Points {
		p.X, p.Y = M.Apply(p.X, p.Y)
	}
}

// TransformBy appends M to the component transformation.
// This transforms the placed outline as a whole, including the shape of the
// base glyph.
func (c *Component) TransformBy(M matrix.Matrix) {
	c.Transformation = c.Transformation.Mul(M)
}

// MoveOffsetBy maps the component offset through M.
// The linear part of the transformation is not changed.
func (c *Component) MoveOffsetBy(M matrix.Matrix) {
	o := c.Offset()
	x, y := M.Apply(o.X, o.Y)
	c.SetOffset(vec.Vec2{X: x, Y: y})
}

// TransformBy maps all contours and components of the glyph through M.
func (g *Glyph) TransformBy(M matrix.Matrix) {
	for _, c := range g.Contours {
		c.TransformBy(M)
	}
	for _, c := range g.Components {
		c.TransformBy(M)
	}
}

// Round rounds all point coordinates and component offsets to integers.
func (g *Glyph) Round() {
	for p := range g.AllPoints() {
		p.X = Round(p.X)
		p.Y = Round(p.Y)
	}
	for _, c := range g.Components {
		c.Transformation[4] = Round(c.Transformation[4])
		c.Transformation[5] = Round(c.Transformation[5])
	}
}

// Round rounds x to the nearest integer.  Ties are rounded up, as is
// customary for font coordinates.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}
