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

package slant

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/slant/outline"
)

// ExtremeLabel marks points which were axis-aligned tangent points before
// the transformation.  The label is only used while [Transform] runs.
const ExtremeLabel = "extremePoint"

// Params describes a slant transformation.
type Params struct {
	// Skew is the shear angle in degrees.  Positive values lean the glyph
	// to the right.
	Skew float64

	// Rotation is the rotation angle in degrees.  Positive values rotate
	// clockwise.
	Rotation float64

	// KeepComponents leaves component references in place.  If false, all
	// components are decomposed into contours before the glyph is
	// transformed.
	KeepComponents bool

	// ReprojectComponents moves each component offset separately, using
	// the centre of the component's base glyph as reference, instead of
	// transforming the components together with the contours.  This only
	// has an effect if KeepComponents is set.
	ReprojectComponents bool
}

// IsIdentity reports whether p describes no change of the outline geometry.
func (p Params) IsIdentity() bool {
	return p.Skew == 0 && p.Rotation == 0
}

// Transform returns a skewed and rotated copy of g.
//
// The transformation is centred at the middle of the bounding box of g.
// Open contours are removed from the result and, unless p.KeepComponents
// is set, components are decomposed.  All coordinates of the result are
// rounded to integers and no points are selected.  Points which had a
// horizontal or vertical tangent before the transformation are marked as
// smooth, and new on-curve points are inserted at the extrema of the
// transformed curves.
//
// Component base glyphs are looked up in layer, which may be nil.
// The glyph g is not modified.
func Transform(layer outline.Layer, g *outline.Glyph, p Params) *outline.Glyph {
	dest := g.Copy()

	if !p.KeepComponents {
		dest.Decompose(layer)
	}
	dest.RemoveOpenContours()

	if p.IsIdentity() {
		dest.ClearSelection()
		return dest
	}

	skew := p.Skew * math.Pi / 180
	rotation := -p.Rotation * math.Pi / 180

	markTangents(dest, rotation != 0)

	center, _ := g.Center(layer)
	M := Matrix(skew, rotation, center)

	if !p.KeepComponents || !p.ReprojectComponents {
		dest.TransformBy(M)
	} else {
		for _, c := range dest.Contours {
			c.TransformBy(M)
		}
		for _, c := range dest.Components {
			reproject(layer, c, skew, rotation, center)
		}
	}

	dest.ExtremePoints(false)
	for pt := range dest.AllPoints() {
		if pt.HasLabel(ExtremeLabel) {
			pt.Selected = true
			pt.Smooth = true
			pt.RemoveLabel(ExtremeLabel)
		} else {
			pt.Selected = false
		}
	}
	dest.ClearSelection()
	dest.Round()

	return dest
}

// markTangents labels every on-curve point which has control points on
// both sides and a vertical tangent.  If rotated is true, points with a
// horizontal tangent are labelled as well.
func markTangents(g *outline.Glyph, rotated bool) {
	for _, c := range g.Contours {
		for _, bp := range c.BPoints() {
			in, out := bp.In, bp.Out
			if in == (vec.Vec2{}) || out == (vec.Vec2{}) {
				continue
			}
			if in.X == out.X && in.Y != out.Y {
				bp.Anchor.AddLabel(ExtremeLabel)
			}
			if rotated && in.X != out.X && in.Y == out.Y {
				bp.Anchor.AddLabel(ExtremeLabel)
			}
		}
	}
}

// reproject moves the offset of a component.  The reference point for the
// transformation is the outer centre, expressed relative to the centre of
// the component's base glyph.  Components with unknown or empty base
// glyphs are left unchanged.
func reproject(layer outline.Layer, c *outline.Component, skew, rotation float64, center vec.Vec2) {
	if layer == nil {
		return
	}
	base := layer.Glyph(c.BaseGlyph)
	if base == nil {
		return
	}
	baseCenter, ok := base.Center(layer)
	if !ok {
		return
	}
	pivot := vec.Vec2{X: center.X - baseCenter.X, Y: center.Y - baseCenter.Y}
	c.MoveOffsetBy(Matrix(skew, rotation, pivot))
}

// Matrix returns the transformation which first shears the plane by the
// angle skew and then rotates it by the angle rotation, both about the
// point pivot.  Angles are given in radians; positive rotation angles turn
// counterclockwise.
func Matrix(skew, rotation float64, pivot vec.Vec2) matrix.Matrix {
	return matrix.Translate(-pivot.X, -pivot.Y).
		Mul(Skew(skew)).
		Mul(matrix.Rotate(rotation)).
		Mul(matrix.Translate(pivot.X, pivot.Y))
}

// Skew returns a horizontal shear transformation.  A point at height y is
// moved right by y*tan(phi).
func Skew(phi float64) matrix.Matrix {
	return matrix.Matrix{1, 0, math.Tan(phi), 1, 0, 0}
}
