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

// Package slant skews and rotates glyph outlines.
//
// The central function is [Transform], which returns a sheared and rotated
// copy of a glyph.  The transformation is centred at the middle of the
// glyph's bounding box:
//
//	p := slant.Params{Skew: 7}
//	out := slant.Transform(font, font.Glyph("a"), p)
//
// Three ways of using the transformation are provided:
//
//   - A [Preview] recomputes the transformed version of the glyph currently
//     being edited, whenever the glyph or the parameters change.
//   - [Apply] replaces the outlines of selected glyphs in place.
//   - [Export] creates a new font in which all glyphs are transformed.
//
// Glyph outlines are represented using the types from
// [seehuhn.de/go/slant/outline].
package slant
