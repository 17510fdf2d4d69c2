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
	"slices"

	"seehuhn.de/go/slant/outline"
)

// Info contains font-wide metadata.
type Info struct {
	FamilyName string
	StyleName  string
	UnitsPerEm int
	Ascender   float64
	Descender  float64 // negative

	// ItalicAngle is given in degrees counterclockwise from vertical.
	ItalicAngle float64
}

// Font is a named collection of glyphs.
// A Font implements the [outline.Layer] interface.
type Font struct {
	Info     Info
	Features string

	// GlyphOrder lists glyph names in their preferred order.  The list
	// need not mention every glyph of the font.
	GlyphOrder []string

	glyphs map[string]*outline.Glyph
}

// NewFont allocates a new, empty font.
func NewFont() *Font {
	return &Font{
		glyphs: make(map[string]*outline.Glyph),
	}
}

// Glyph returns the glyph with the given name, or nil if there is no such
// glyph.
func (f *Font) Glyph(name string) *outline.Glyph {
	return f.glyphs[name]
}

// NewGlyph creates an empty glyph with the given name, replacing any
// existing glyph of that name.  New names are appended to the glyph order.
func (f *Font) NewGlyph(name string) *outline.Glyph {
	g := outline.New(name)
	f.AddGlyph(g)
	return g
}

// AddGlyph stores g in the font, replacing any existing glyph with the same
// name.  New names are appended to the glyph order.
func (f *Font) AddGlyph(g *outline.Glyph) {
	if f.glyphs == nil {
		f.glyphs = make(map[string]*outline.Glyph)
	}
	if !slices.Contains(f.GlyphOrder, g.Name) {
		f.GlyphOrder = append(f.GlyphOrder, g.Name)
	}
	f.glyphs[g.Name] = g
}

// RemoveGlyph deletes a glyph from the font and from the glyph order.
func (f *Font) RemoveGlyph(name string) {
	delete(f.glyphs, name)
	f.GlyphOrder = slices.DeleteFunc(f.GlyphOrder, func(n string) bool {
		return n == name
	})
}

// Len returns the number of glyphs in the font.
func (f *Font) Len() int {
	return len(f.glyphs)
}

// Names returns the names of all glyphs in the font.  Glyphs listed in the
// glyph order come first, in that order, followed by the remaining glyphs in
// alphabetical order.
func (f *Font) Names() []string {
	res := make([]string, 0, len(f.glyphs))
	seen := make(map[string]bool, len(f.glyphs))
	for _, name := range f.GlyphOrder {
		if _, ok := f.glyphs[name]; ok && !seen[name] {
			res = append(res, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range f.glyphs {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(res, rest...)
}
