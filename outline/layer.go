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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Layer gives access to the glyphs referenced by components.
type Layer interface {
	// Glyph returns the glyph with the given name, or nil if the layer
	// has no such glyph.
	Glyph(name string) *Glyph
}

// Glyphs is a simple [Layer], mapping glyph names to glyphs.
type Glyphs map[string]*Glyph

// Glyph implements the [Layer] interface.
func (gg Glyphs) Glyph(name string) *Glyph {
	return gg[name]
}

// Add stores the glyph under its name.
func (gg Glyphs) Add(g *Glyph) {
	gg[g.Name] = g
}

// Bounds returns the bounding box of all on-curve and off-curve points of
// the glyph, including the points of component base glyphs.
// Components are resolved using layer, which may be nil.
// The second return value is false if the glyph has no points.
func (g *Glyph) Bounds(layer Layer) (rect.Rect, bool) {
	b := &bounds{}
	b.addGlyph(g, layer, matrix.Identity, visiting(g, layer))
	return b.Rect, b.ok
}

// Center returns the centre of the bounding box of the glyph, as computed
// by [Glyph.Bounds].  The second return value is false if the glyph has no
// points.
func (g *Glyph) Center(layer Layer) (vec.Vec2, bool) {
	r, ok := g.Bounds(layer)
	if !ok {
		return vec.Vec2{}, false
	}
	return vec.Vec2{
		X: r.LLx + (r.URx-r.LLx)*0.5,
		Y: r.LLy + (r.URy-r.LLy)*0.5,
	}, true
}

type bounds struct {
	rect.Rect
	ok bool
}

func (b *bounds) add(v vec.Vec2) {
	if !b.ok {
		b.Rect = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
		b.ok = true
		return
	}
	b.LLx = math.Min(b.LLx, v.X)
	b.LLy = math.Min(b.LLy, v.Y)
	b.URx = math.Max(b.URx, v.X)
	b.URy = math.Max(b.URy, v.Y)
}

// addGlyph adds the points of g, mapped through M.  The glyphs in active
// are currently being visited and are skipped to avoid cycles.
func (b *bounds) addGlyph(g *Glyph, layer Layer, M matrix.Matrix, active map[*Glyph]bool) {
	for p := range g.AllPoints() {
		x, y := M.Apply(p.X, p.Y)
		b.add(vec.Vec2{X: x, Y: y})
	}
	if layer == nil {
		return
	}
	for _, c := range g.Components {
		base := layer.Glyph(c.BaseGlyph)
		if base == nil || active[base] {
			continue
		}
		active[base] = true
		b.addGlyph(base, layer, c.Transformation.Mul(M), active)
		delete(active, base)
	}
}

// visiting returns the initial set of active glyphs for a traversal
// starting at g.  If g is a copy of a glyph stored in layer, the stored
// glyph is included, so that references back to it are recognised.
func visiting(g *Glyph, layer Layer) map[*Glyph]bool {
	active := map[*Glyph]bool{g: true}
	if layer != nil {
		if orig := layer.Glyph(g.Name); orig != nil {
			active[orig] = true
		}
	}
	return active
}

// Decompose replaces all components by the outlines of their base glyphs.
// Nested components are resolved recursively.  Components which refer to
// glyphs missing from layer, or which refer back to g or to a glyph
// currently being decomposed, are dropped.  A glyph in layer with the same
// name as g counts as g itself.
func (g *Glyph) Decompose(layer Layer) {
	comps := g.Components
	g.Components = nil
	active := visiting(g, layer)
	for _, c := range comps {
		g.appendDecomposed(layer, c.BaseGlyph, c.Transformation, active)
	}
}

func (g *Glyph) appendDecomposed(layer Layer, name string, M matrix.Matrix, active map[*Glyph]bool) {
	if layer == nil {
		return
	}
	base := layer.Glyph(name)
	if base == nil || active[base] {
		return
	}
	active[base] = true
	defer delete(active, base)

	for _, c := range base.Contours {
		cc := c.Copy()
		cc.TransformBy(M)
		g.Contours = append(g.Contours, cc)
	}
	for _, c := range base.Components {
		g.appendDecomposed(layer, c.BaseGlyph, c.Transformation.Mul(M), active)
	}
}
