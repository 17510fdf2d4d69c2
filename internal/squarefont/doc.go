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

// Package squarefont provides small hand-drawn glyphs for unit tests.
//
// # Glyphs
//
// The layer returned by [Layer] contains the following glyphs:
//
//   - "square": the square [0, 100] × [0, 100], as a single closed contour
//     made of straight lines.
//   - "o": a circle of radius [Radius] around ([CenterX], [CenterY]), made
//     of four cubic Bézier arcs with horizontal and vertical tangents at the
//     on-curve points.
//   - "stroke": an open contour together with a closed triangle.
//   - "base": the square [0, 50] × [0, 50].
//   - "dot": the square [0, 20] × [0, 20].
//   - "composite": the square [0, 50] × [0, 50] plus a reference to "base"
//     at offset (50, 0), giving the bounding box [0, 100] × [0, 50].
//   - "pair": references to "base" at offset (0, 0) and to "dot" at offset
//     (200, 100), without contours of its own.
//   - "nested": a reference to "composite", scaled by a factor 2.
//   - "space": no outline at all.
package squarefont
