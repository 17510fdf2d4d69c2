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

// Package convert translates TrueType glyph outlines into editable
// outlines.
package convert

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/slant"
	"seehuhn.de/go/slant/outline"
)

// ErrNotGlyf is returned by [FromGlyf] for fonts without TrueType outlines.
var ErrNotGlyf = errors.New("font has no glyf outlines")

// maxRune is the largest code point considered when collecting unicode
// values for glyphs.
const maxRune = 0xFFFF

// FromGlyf converts the TrueType outlines of info into an editable font.
// Quadratic curves are converted to cubic ones and composite glyphs become
// glyphs with components.  The glyph bounding boxes stored in the font file
// are returned alongside.
//
// Glyph names are assigned to info if the font has none.
func FromGlyf(info *sfnt.Font) (*slant.Font, map[string]funit.Rect16, error) {
	origOutlines, ok := info.Outlines.(*glyf.Outlines)
	if !ok {
		return nil, nil, ErrNotGlyf
	}
	info.EnsureGlyphNames()

	res := slant.NewFont()
	res.Info = slant.Info{
		FamilyName:  info.FamilyName,
		StyleName:   info.Subfamily(),
		UnitsPerEm:  int(info.UnitsPerEm),
		Ascender:    float64(info.Ascent),
		Descender:   float64(info.Descent),
		ItalicAngle: info.ItalicAngle,
	}

	unicodes := make(map[glyph.ID][]rune)
	if cmap, err := info.CMapTable.GetBest(); err == nil {
		for r := rune(0); r <= maxRune; r++ {
			if gid := cmap.Lookup(r); gid != 0 {
				unicodes[gid] = append(unicodes[gid], r)
			}
		}
	}

	extents := make(map[string]funit.Rect16)
	names := make([]string, len(origOutlines.Glyphs))
	for i := range origOutlines.Glyphs {
		names[i] = info.GlyphName(glyph.ID(i))
	}

	for i, origGlyph := range origOutlines.Glyphs {
		gid := glyph.ID(i)
		name := names[i]

		newGlyph := res.NewGlyph(name)
		newGlyph.Width = float64(info.GlyphWidth(gid))
		newGlyph.Unicodes = unicodes[gid]
		if origGlyph == nil {
			continue
		}
		extents[name] = info.GlyphBBox(gid)

		switch g := origGlyph.Data.(type) {
		case glyf.SimpleGlyph:
			glyphInfo, err := g.Unpack()
			if err != nil {
				return nil, nil, fmt.Errorf("glyph %q: %w", name, err)
			}
			pen := newGlyph.Pen()
			for _, cc := range glyphInfo.Contours {
				drawContour(pen, cc)
			}
		case glyf.CompositeGlyph:
			for _, comp := range g.Components {
				idx := int(comp.GlyphIndex)
				if idx >= len(names) {
					return nil, nil, fmt.Errorf("glyph %q: component %d out of range", name, idx)
				}
				M, err := componentMatrix(uint16(comp.Flags), comp.Data)
				if err != nil {
					return nil, nil, fmt.Errorf("glyph %q: %w", name, err)
				}
				newGlyph.Pen().AddComponent(names[idx], M)
			}
		}
	}

	return res, extents, nil
}

// drawContour converts a closed quadratic TrueType contour into cubic
// Bézier segments.
func drawContour(pen *outline.Pen, cc glyf.Contour) {
	// insert the implied on-curve points between consecutive off-curve points
	var extended glyf.Contour
	var prev glyf.Point
	onCurve := true
	for _, cur := range cc {
		if !onCurve && !cur.OnCurve {
			extended = append(extended, glyf.Point{
				X:       (cur.X + prev.X) / 2,
				Y:       (cur.Y + prev.Y) / 2,
				OnCurve: true,
			})
		}
		extended = append(extended, cur)
		prev = cur
		onCurve = cur.OnCurve
	}
	n := len(extended)
	if n == 0 {
		return
	}

	if first, last := extended[0], extended[n-1]; !first.OnCurve && !last.OnCurve {
		// the wrap-around segment also has an implied on-curve point
		extended = append(extended, glyf.Point{
			X:       (first.X + last.X) / 2,
			Y:       (first.Y + last.Y) / 2,
			OnCurve: true,
		})
		n++
	}

	offs := 0
	for !extended[offs].OnCurve {
		offs++
	}

	pen.MoveTo(float64(extended[offs].X), float64(extended[offs].Y))
	i := 0
	for i < n {
		i0 := (i + offs) % n
		i1 := (i0 + 1) % n
		if extended[i1].OnCurve {
			if i == n-1 {
				break
			}
			pen.LineTo(float64(extended[i1].X), float64(extended[i1].Y))
			i++
		} else {
			// degree elevation, see https://pomax.github.io/bezierinfo/#reordering
			i2 := (i1 + 1) % n
			pen.CurveTo(
				float64(extended[i0].X)/3+float64(extended[i1].X)*2/3,
				float64(extended[i0].Y)/3+float64(extended[i1].Y)*2/3,
				float64(extended[i1].X)*2/3+float64(extended[i2].X)/3,
				float64(extended[i1].Y)*2/3+float64(extended[i2].Y)/3,
				float64(extended[i2].X),
				float64(extended[i2].Y))
			i += 2
		}
	}
	pen.ClosePath()
}

// Flags of TrueType composite glyph components.
const (
	argsAreWords   = 0x0001
	argsAreXY      = 0x0002
	weHaveAScale   = 0x0008
	weHaveXYScale  = 0x0040
	weHaveTwoByTwo = 0x0080
)

var errShortComponent = errors.New("incomplete composite glyph component")

// componentMatrix decodes the placement arguments of a composite glyph
// component.  Components which are positioned by matching points, instead
// of by an offset, are placed at the origin.
func componentMatrix(flags uint16, args []byte) (matrix.Matrix, error) {
	M := matrix.Identity

	var dx, dy float64
	if flags&argsAreWords != 0 {
		if len(args) < 4 {
			return M, errShortComponent
		}
		dx = float64(int16(uint16(args[0])<<8 | uint16(args[1])))
		dy = float64(int16(uint16(args[2])<<8 | uint16(args[3])))
		args = args[4:]
	} else {
		if len(args) < 2 {
			return M, errShortComponent
		}
		dx = float64(int8(args[0]))
		dy = float64(int8(args[1]))
		args = args[2:]
	}
	if flags&argsAreXY == 0 {
		dx, dy = 0, 0
	}

	f2dot14 := func(i int) float64 {
		return float64(int16(uint16(args[2*i])<<8|uint16(args[2*i+1]))) / 16384
	}
	switch {
	case flags&weHaveAScale != 0:
		if len(args) < 2 {
			return M, errShortComponent
		}
		s := f2dot14(0)
		M[0], M[3] = s, s
	case flags&weHaveXYScale != 0:
		if len(args) < 4 {
			return M, errShortComponent
		}
		M[0], M[3] = f2dot14(0), f2dot14(1)
	case flags&weHaveTwoByTwo != 0:
		if len(args) < 8 {
			return M, errShortComponent
		}
		M[0], M[1], M[2], M[3] = f2dot14(0), f2dot14(1), f2dot14(2), f2dot14(3)
	}
	M[4], M[5] = dx, dy
	return M, nil
}
