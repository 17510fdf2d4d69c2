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

package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/sfnt/glyf"

	"seehuhn.de/go/slant/outline"
)

func TestComponentMatrix(t *testing.T) {
	cases := []struct {
		flags uint16
		args  []byte
		want  matrix.Matrix
	}{
		{argsAreWords | argsAreXY, []byte{0x00, 0x64, 0xFF, 0x9C}, matrix.Translate(100, -100)},
		{argsAreXY | weHaveAScale, []byte{10, 0xF6, 0x20, 0x00}, matrix.Matrix{0.5, 0, 0, 0.5, 10, -10}},
		{argsAreXY | weHaveXYScale, []byte{0, 0, 0x40, 0x00, 0xC0, 0x00}, matrix.Matrix{1, 0, 0, -1, 0, 0}},
		{argsAreXY | weHaveTwoByTwo, []byte{1, 2, 0, 0, 0x40, 0x00, 0x40, 0x00, 0, 0}, matrix.Matrix{0, 1, 1, 0, 1, 2}},
		{0, []byte{1, 2}, matrix.Identity}, // point matching
	}
	for i, c := range cases {
		got, err := componentMatrix(c.flags, c.args)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%d: (-want +got):\n%s", i, d)
		}
	}

	for _, flags := range []uint16{argsAreWords, weHaveAScale, weHaveTwoByTwo} {
		if _, err := componentMatrix(flags, []byte{0, 0}); err != errShortComponent {
			t.Errorf("flags %#x: got %v, want errShortComponent", flags, err)
		}
	}
}

func TestDrawContour(t *testing.T) {
	g := outline.New("test")
	drawContour(g.Pen(), glyf.Contour{
		{X: 0, Y: 0, OnCurve: true},
		{X: 100, Y: 0},
		{X: 100, Y: 100, OnCurve: true},
	})

	if len(g.Contours) != 1 {
		t.Fatalf("%d contours", len(g.Contours))
	}
	var types []outline.PointType
	for p := range g.AllPoints() {
		types = append(types, p.Type)
	}
	wantTypes := []outline.PointType{outline.Line, outline.OffCurve, outline.OffCurve, outline.Curve}
	if d := cmp.Diff(wantTypes, types); d != "" {
		t.Errorf("point types (-want +got):\n%s", d)
	}

	pp := g.Contours[0].Points
	if d := cmp.Diff(100.0/3, pp[2].Y, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("second control point (-want +got):\n%s", d)
	}
}

func TestDrawContourOffCurveOnly(t *testing.T) {
	g := outline.New("test")
	drawContour(g.Pen(), glyf.Contour{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 100, Y: 100},
		{X: 0, Y: 100},
	})

	// four implied on-curve points, one quadratic segment each
	n := 0
	for p := range g.AllPoints() {
		if p.Type.IsOnCurve() {
			n++
		}
	}
	if n != 4 {
		t.Errorf("%d on-curve points, want 4:\n%s", n, g)
	}
	if g.Contours[0].IsOpen() {
		t.Error("contour is open")
	}
}
