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

package squarefont

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/slant/outline"
)

// Geometry of the "o" glyph.
const (
	CenterX = 250
	CenterY = 250
	Radius  = 200
)

// Kappa is the relative length of the control point handles used to
// approximate a quarter circle by a cubic Bézier curve.
const Kappa = 0.5522847498

// Sample represents a test glyph with a constructor function.
type Sample struct {
	Name      string
	MakeGlyph func() *outline.Glyph
}

// All contains all available test glyphs.
var All = []*Sample{
	{"square", makeSquare},
	{"o", makeO},
	{"stroke", makeStroke},
	{"base", makeBase},
	{"dot", makeDot},
	{"composite", makeComposite},
	{"pair", makePair},
	{"nested", makeNested},
	{"space", makeSpace},
}

// Layer returns a new layer containing all test glyphs.
// Every call returns fresh copies, which can be modified freely.
func Layer() outline.Glyphs {
	res := make(outline.Glyphs, len(All))
	for _, s := range All {
		res.Add(s.MakeGlyph())
	}
	return res
}

// Glyph returns a fresh copy of the test glyph with the given name.
// It returns nil if there is no such glyph.
func Glyph(name string) *outline.Glyph {
	for _, s := range All {
		if s.Name == name {
			return s.MakeGlyph()
		}
	}
	return nil
}

// DrawSquare draws an axis-parallel rectangle, counterclockwise, starting
// at the lower left corner.
func DrawSquare(path interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}, left, bottom, right, top float64) {
	path.MoveTo(left, bottom)
	path.LineTo(right, bottom)
	path.LineTo(right, top)
	path.LineTo(left, top)
	path.LineTo(left, bottom)
	path.ClosePath()
}

func makeSquare() *outline.Glyph {
	g := outline.New("square")
	g.Width = 100
	g.Unicodes = []rune{'■'}
	DrawSquare(g.Pen(), 0, 0, 100, 100)
	return g
}

func makeO() *outline.Glyph {
	g := outline.New("o")
	g.Width = 500
	g.Unicodes = []rune{'o'}

	const k = Kappa * Radius
	pen := g.Pen()
	pen.MoveTo(CenterX+Radius, CenterY)
	pen.CurveTo(CenterX+Radius, CenterY+k, CenterX+k, CenterY+Radius, CenterX, CenterY+Radius)
	pen.CurveTo(CenterX-k, CenterY+Radius, CenterX-Radius, CenterY+k, CenterX-Radius, CenterY)
	pen.CurveTo(CenterX-Radius, CenterY-k, CenterX-k, CenterY-Radius, CenterX, CenterY-Radius)
	pen.CurveTo(CenterX+k, CenterY-Radius, CenterX+Radius, CenterY-k, CenterX+Radius, CenterY)
	pen.ClosePath()
	return g
}

func makeStroke() *outline.Glyph {
	g := outline.New("stroke")
	g.Width = 300
	pen := g.Pen()
	pen.MoveTo(0, 0)
	pen.LineTo(100, 200)
	pen.EndPath()
	pen.MoveTo(0, 0)
	pen.LineTo(200, 0)
	pen.LineTo(100, 100)
	pen.ClosePath()
	return g
}

func makeBase() *outline.Glyph {
	g := outline.New("base")
	g.Width = 50
	DrawSquare(g.Pen(), 0, 0, 50, 50)
	return g
}

func makeDot() *outline.Glyph {
	g := outline.New("dot")
	g.Width = 20
	DrawSquare(g.Pen(), 0, 0, 20, 20)
	return g
}

func makeComposite() *outline.Glyph {
	g := outline.New("composite")
	g.Width = 100
	pen := g.Pen()
	DrawSquare(pen, 0, 0, 50, 50)
	pen.AddComponent("base", matrix.Translate(50, 0))
	return g
}

func makePair() *outline.Glyph {
	g := outline.New("pair")
	g.Width = 220
	pen := g.Pen()
	pen.AddComponent("base", matrix.Identity)
	pen.AddComponent("dot", matrix.Translate(200, 100))
	return g
}

func makeNested() *outline.Glyph {
	g := outline.New("nested")
	g.Width = 200
	g.Pen().AddComponent("composite", matrix.Scale(2, 2))
	return g
}

func makeSpace() *outline.Glyph {
	g := outline.New("space")
	g.Width = 250
	g.Unicodes = []rune{' '}
	return g
}
