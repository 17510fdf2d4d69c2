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

// Package outline implements an editable model of glyph outlines.
//
// A [Glyph] consists of contours and of components.  Each [Contour] is a
// list of points, where on-curve points are either the end points of
// straight lines or of cubic Bézier curves, and the two control points of a
// curve precede its end point.  Off-curve points which come before the first
// on-curve point of a closed contour belong to the segment which wraps
// around from the end of the list.
//
// A [Component] places the outline of another glyph, looked up by name in a
// [Layer], into the current glyph.
package outline

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// PointType describes the role of a point within a contour.
type PointType uint8

// These are the supported point types.
const (
	OffCurve PointType = iota // control point of a cubic Bézier curve
	Move                      // start of an open contour
	Line                      // end point of a straight line segment
	Curve                     // end point of a cubic Bézier segment
)

func (t PointType) String() string {
	switch t {
	case OffCurve:
		return "offcurve"
	case Move:
		return "move"
	case Line:
		return "line"
	case Curve:
		return "curve"
	default:
		return fmt.Sprintf("PointType(%d)", uint8(t))
	}
}

// IsOnCurve reports whether points of this type lie on the outline.
func (t PointType) IsOnCurve() bool {
	return t != OffCurve
}

// Point is a single point of a contour.
type Point struct {
	X, Y float64
	Type PointType

	// Smooth indicates that the outline has a continuous tangent at this
	// point.
	Smooth bool

	Selected bool

	// Labels holds free-form string tags attached to the point.
	Labels []string
}

// Vec returns the position of the point.
func (p *Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// HasLabel reports whether the point carries the given label.
func (p *Point) HasLabel(label string) bool {
	return slices.Contains(p.Labels, label)
}

// AddLabel attaches a label to the point.  Adding a label twice has no
// effect.
func (p *Point) AddLabel(label string) {
	if !p.HasLabel(label) {
		p.Labels = append(p.Labels, label)
	}
}

// RemoveLabel removes a label from the point.
func (p *Point) RemoveLabel(label string) {
	p.Labels = slices.DeleteFunc(p.Labels, func(l string) bool {
		return l == label
	})
	if len(p.Labels) == 0 {
		p.Labels = nil
	}
}

func (p *Point) copy() *Point {
	q := *p
	q.Labels = slices.Clone(p.Labels)
	return &q
}

// Contour is a closed or open sequence of points.
type Contour struct {
	Points []*Point
}

// IsOpen reports whether the contour is open.
// Open contours start with a point of type [Move].
func (c *Contour) IsOpen() bool {
	return len(c.Points) > 0 && c.Points[0].Type == Move
}

// Copy returns a deep copy of the contour.
func (c *Contour) Copy() *Contour {
	res := &Contour{
		Points: make([]*Point, len(c.Points)),
	}
	for i, p := range c.Points {
		res.Points[i] = p.copy()
	}
	return res
}

// Component places the outline of another glyph into a glyph.
type Component struct {
	// BaseGlyph is the name of the referenced glyph.
	BaseGlyph string

	// Transformation maps the coordinates of the base glyph into the
	// coordinate system of the containing glyph.
	Transformation matrix.Matrix
}

// Offset returns the translation part of the component transformation.
func (c *Component) Offset() vec.Vec2 {
	return vec.Vec2{X: c.Transformation[4], Y: c.Transformation[5]}
}

// SetOffset replaces the translation part of the component transformation.
func (c *Component) SetOffset(v vec.Vec2) {
	c.Transformation[4] = v.X
	c.Transformation[5] = v.Y
}

// Copy returns a copy of the component.
func (c *Component) Copy() *Component {
	res := *c
	return &res
}

// Glyph is the outline of a single glyph, together with its metrics.
type Glyph struct {
	Name     string
	Width    float64
	Unicodes []rune

	Contours   []*Contour
	Components []*Component
}

// New allocates a new, empty glyph.
func New(name string) *Glyph {
	return &Glyph{Name: name}
}

// Copy returns a deep copy of the glyph.
// Modifications to the copy never affect the original.
func (g *Glyph) Copy() *Glyph {
	res := &Glyph{
		Name:     g.Name,
		Width:    g.Width,
		Unicodes: slices.Clone(g.Unicodes),
	}
	res.AppendGlyph(g)
	return res
}

// Clear removes all contours and components from the glyph.
// Name, width and unicode values are kept.
func (g *Glyph) Clear() {
	g.Contours = nil
	g.Components = nil
}

// AppendGlyph appends copies of the contours and components of other to g.
func (g *Glyph) AppendGlyph(other *Glyph) {
	for _, c := range other.Contours {
		g.Contours = append(g.Contours, c.Copy())
	}
	for _, c := range other.Components {
		g.Components = append(g.Components, c.Copy())
	}
}

// IsEmpty reports whether the glyph has neither contours nor components.
func (g *Glyph) IsEmpty() bool {
	return len(g.Contours) == 0 && len(g.Components) == 0
}

// RemoveOpenContours deletes all open contours from the glyph.
func (g *Glyph) RemoveOpenContours() {
	g.Contours = slices.DeleteFunc(g.Contours, (*Contour).IsOpen)
}

// AllPoints returns an iterator over all points of all contours.
func (g *Glyph) AllPoints() iter.Seq[*Point] {
	return func(yield func(*Point) bool) {
		for _, c := range g.Contours {
			for _, p := range c.Points {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// PointPositions returns the positions of all contour points, in order.
func (g *Glyph) PointPositions() []vec.Vec2 {
	var res []vec.Vec2
	for p := range g.AllPoints() {
		res = append(res, p.Vec())
	}
	return res
}

// SelectedPoints returns all selected points of the glyph.
func (g *Glyph) SelectedPoints() []*Point {
	var res []*Point
	for p := range g.AllPoints() {
		if p.Selected {
			res = append(res, p)
		}
	}
	return res
}

// ClearSelection deselects all points.
func (g *Glyph) ClearSelection() {
	for p := range g.AllPoints() {
		p.Selected = false
	}
}

// String returns a multi-line, human readable description of the glyph.
func (g *Glyph) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "glyph %q width=%g\n", g.Name, g.Width)
	for i, c := range g.Contours {
		kind := "closed"
		if c.IsOpen() {
			kind = "open"
		}
		fmt.Fprintf(b, "  contour %d (%s)\n", i, kind)
		for _, p := range c.Points {
			fmt.Fprintf(b, "    %-8s %g %g", p.Type, p.X, p.Y)
			if p.Smooth {
				b.WriteString(" smooth")
			}
			if p.Selected {
				b.WriteString(" selected")
			}
			b.WriteString("\n")
		}
	}
	for _, c := range g.Components {
		M := c.Transformation
		fmt.Fprintf(b, "  component %q [%g %g %g %g %g %g]\n",
			c.BaseGlyph, M[0], M[1], M[2], M[3], M[4], M[5])
	}
	return b.String()
}
