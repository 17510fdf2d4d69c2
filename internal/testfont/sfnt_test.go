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

package testfont

import (
	"testing"
)

func TestGoRegular(t *testing.T) {
	f := GoRegular()
	if f.Len() < 100 {
		t.Fatalf("only %d glyphs", f.Len())
	}
	if f.Info.UnitsPerEm != 2048 {
		t.Errorf("UnitsPerEm = %d", f.Info.UnitsPerEm)
	}

	a := f.Glyph("A")
	if a == nil {
		t.Fatal("glyph A missing")
	}
	if len(a.Unicodes) != 1 || a.Unicodes[0] != 'A' {
		t.Errorf("unicodes of A = %v", a.Unicodes)
	}
	for _, c := range a.Contours {
		if c.IsOpen() {
			t.Error("open contour in converted glyph")
		}
	}
}

func TestGoRegularFresh(t *testing.T) {
	f1 := GoRegular()
	f2 := GoRegular()
	f1.Glyph("A").Clear()
	if f2.Glyph("A").IsEmpty() {
		t.Error("fonts share glyph data")
	}
}

// TestExtents checks that the bounding boxes computed from the converted
// outlines agree with the boxes stored in the font file.
func TestExtents(t *testing.T) {
	f := GoRegular()
	ext := Extents()
	for _, name := range []string{"A", "O", "a", "g", "period", "zero"} {
		g := f.Glyph(name)
		if g == nil {
			t.Fatalf("glyph %q missing", name)
		}
		want := ext[name]
		got, ok := g.Bounds(f)
		if !ok {
			t.Errorf("%s: no bounds", name)
			continue
		}
		// The file stores the box of the quadratic control polygon.  Degree
		// elevation moves the control points towards the curve, so the
		// computed box can only be smaller.
		if got.LLx < float64(want.LLx) || got.LLy < float64(want.LLy) ||
			got.URx > float64(want.URx) || got.URy > float64(want.URy) {
			t.Errorf("%s: bounds %v outside of %v", name, got, want)
		}
	}
}
