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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestBoundsEmpty(t *testing.T) {
	g := New("space")
	if _, ok := g.Bounds(nil); ok {
		t.Error("empty glyph has bounds")
	}
	if c, ok := g.Center(nil); ok || c != (vec.Vec2{}) {
		t.Errorf("empty glyph has centre %v", c)
	}
}

func TestBoundsIncludesControlPoints(t *testing.T) {
	g := New("bump")
	pen := g.Pen()
	pen.MoveTo(0, 0)
	pen.CurveTo(0, 80, 100, 80, 100, 0)
	pen.ClosePath()

	got, ok := g.Bounds(nil)
	if !ok {
		t.Fatal("no bounds")
	}
	want := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 80}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestBoundsWithComponents(t *testing.T) {
	base := square(0, 0, 50, 50)
	base.Name = "base"
	layer := Glyphs{}
	layer.Add(base)

	g := square(0, 0, 10, 10)
	g.Name = "composite"
	g.Pen().AddComponent("base", matrix.Translate(100, 20))
	g.Pen().AddComponent("missing", matrix.Translate(-500, -500))

	got, _ := g.Bounds(layer)
	want := rect.Rect{LLx: 0, LLy: 0, URx: 150, URy: 70}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	// without a layer, only the contours count
	got, _ = g.Bounds(nil)
	want = rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	c, _ := base.Center(layer)
	if c != (vec.Vec2{X: 25, Y: 25}) {
		t.Errorf("wrong centre %v", c)
	}
}

func TestDecompose(t *testing.T) {
	layer := Glyphs{}
	base := square(0, 0, 10, 10)
	base.Name = "base"
	layer.Add(base)

	mid := New("mid")
	mid.Pen().AddComponent("base", matrix.Translate(5, 0))
	layer.Add(mid)

	g := New("top")
	g.Pen().AddComponent("mid", matrix.Scale(2, 2))
	g.Pen().AddComponent("missing", matrix.Identity)

	g.Decompose(layer)

	if len(g.Components) != 0 {
		t.Errorf("%d components left", len(g.Components))
	}
	if len(g.Contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(g.Contours))
	}

	// base is first shifted by 5 and then scaled by 2
	got := g.PointPositions()
	want := []vec.Vec2{{X: 10, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 20}, {X: 10, Y: 20}}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	// the base glyph must not be modified
	if d := cmp.Diff(square(0, 0, 10, 10).Contours, base.Contours); d != "" {
		t.Error(d)
	}
}

func TestDecomposeCycle(t *testing.T) {
	layer := Glyphs{}
	a := square(0, 0, 1, 1)
	a.Name = "a"
	a.Pen().AddComponent("b", matrix.Translate(10, 0))
	b := New("b")
	b.Pen().AddComponent("a", matrix.Translate(10, 0))
	layer.Add(a)
	layer.Add(b)

	g := a.Copy()
	g.Decompose(layer)
	if len(g.Components) != 0 {
		t.Errorf("%d components left", len(g.Components))
	}
	// the reference from b back to a is dropped
	if len(g.Contours) != 1 {
		t.Errorf("got %d contours, want 1", len(g.Contours))
	}

	if _, ok := a.Bounds(layer); !ok {
		t.Error("no bounds for cyclic glyph")
	}
}

func TestDecomposeSelfReference(t *testing.T) {
	loop := square(0, 0, 10, 10)
	loop.Name = "loop"
	loop.Pen().AddComponent("loop", matrix.Translate(20, 0))
	layer := Glyphs{}
	layer.Add(loop)

	cases := []struct {
		name string
		g    *Glyph
	}{
		{"stored", loop},
		{"copy", loop.Copy()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, ok := c.g.Bounds(layer)
			if !ok {
				t.Fatal("no bounds")
			}
			want := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
			if d := cmp.Diff(want, r); d != "" {
				t.Errorf("bounds (-want +got):\n%s", d)
			}

			g := c.g.Copy()
			g.Decompose(layer)
			if d := cmp.Diff(square(0, 0, 10, 10).Contours, g.Contours); d != "" {
				t.Errorf("contours (-want +got):\n%s", d)
			}
		})
	}
}

func TestComponentTransform(t *testing.T) {
	c := &Component{BaseGlyph: "x", Transformation: matrix.Translate(10, 0)}
	c.TransformBy(matrix.Scale(2, 3))
	if d := cmp.Diff(matrix.Matrix{2, 0, 0, 3, 20, 0}, c.Transformation); d != "" {
		t.Error(d)
	}

	c = &Component{BaseGlyph: "x", Transformation: matrix.Matrix{2, 0, 0, 2, 10, 10}}
	c.MoveOffsetBy(matrix.Translate(1, -1))
	if d := cmp.Diff(matrix.Matrix{2, 0, 0, 2, 11, 9}, c.Transformation); d != "" {
		t.Error(d)
	}
}
