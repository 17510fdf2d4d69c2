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

import "seehuhn.de/go/geom/matrix"

// Pen draws new contours into a glyph.
type Pen struct {
	g   *Glyph
	cur *Contour
}

// Pen returns a pen which appends to the glyph.
func (g *Glyph) Pen() *Pen {
	return &Pen{g: g}
}

// MoveTo starts a new contour at (x, y).
// A contour which is still being drawn is left open.
func (p *Pen) MoveTo(x, y float64) {
	p.EndPath()
	p.cur = &Contour{
		Points: []*Point{{X: x, Y: y, Type: Move}},
	}
}

// LineTo adds a straight line from the current point to (x, y).
func (p *Pen) LineTo(x, y float64) {
	p.check()
	p.cur.Points = append(p.cur.Points, &Point{X: x, Y: y, Type: Line})
}

// CurveTo adds a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x3, y3).
func (p *Pen) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.check()
	p.cur.Points = append(p.cur.Points,
		&Point{X: x1, Y: y1, Type: OffCurve},
		&Point{X: x2, Y: y2, Type: OffCurve},
		&Point{X: x3, Y: y3, Type: Curve},
	)
}

// ClosePath closes the current contour.
//
// If the last segment ends at the start point, the final on-curve point
// replaces the start point at index 0, so that the contour keeps its
// original starting position.  Otherwise the contour is closed by a
// straight line.
func (p *Pen) ClosePath() {
	p.check()
	pp := p.cur.Points
	first, last := pp[0], pp[len(pp)-1]
	if len(pp) > 1 && last.X == first.X && last.Y == first.Y {
		pp[0] = last
		pp = pp[:len(pp)-1]
	} else {
		first.Type = Line
	}
	p.cur.Points = pp
	p.g.Contours = append(p.g.Contours, p.cur)
	p.cur = nil
}

// EndPath finishes the current contour without closing it.
// Calling EndPath when no contour is being drawn has no effect.
func (p *Pen) EndPath() {
	if p.cur == nil {
		return
	}
	p.g.Contours = append(p.g.Contours, p.cur)
	p.cur = nil
}

// AddComponent adds a reference to the glyph with the given name.
// This finishes the current contour, as if [Pen.EndPath] was called.
func (p *Pen) AddComponent(baseGlyph string, M matrix.Matrix) {
	p.EndPath()
	p.g.Components = append(p.g.Components, &Component{
		BaseGlyph:      baseGlyph,
		Transformation: M,
	})
}

func (p *Pen) check() {
	if p.cur == nil {
		panic("outline: no current point")
	}
}
