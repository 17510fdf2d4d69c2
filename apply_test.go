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
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

func TestApply(t *testing.T) {
	f := sampleFont()
	orig := f.Glyph("composite").Copy()
	h := &History{}

	err := Apply(f, []string{"composite", "square"}, Params{Skew: 7, KeepComponents: true}, h)
	if err != nil {
		t.Fatal(err)
	}

	g := f.Glyph("composite")
	if len(g.Components) != 0 {
		t.Errorf("components not decomposed")
	}
	if len(g.Contours) != 2 {
		t.Errorf("%d contours, want 2", len(g.Contours))
	}
	if h.Len() != 2 {
		t.Errorf("%d undo steps, want 2", h.Len())
	}

	sq := f.Glyph("square")
	want := []vec.Vec2{{X: -6, Y: 0}, {X: 94, Y: 0}, {X: 106, Y: 100}, {X: 6, Y: 100}}
	if d := cmp.Diff(want, sq.PointPositions()); d != "" {
		t.Errorf("square (-want +got):\n%s", d)
	}

	for range 2 {
		title, ok := h.Undo()
		if !ok || title != UndoTitle {
			t.Errorf("Undo() = %q, %t", title, ok)
		}
	}
	if _, ok := h.Undo(); ok {
		t.Error("undo history not empty")
	}
	if d := cmp.Diff(orig, f.Glyph("composite")); d != "" {
		t.Errorf("undo did not restore the glyph (-want +got):\n%s", d)
	}
}

func TestApplyUnknownGlyph(t *testing.T) {
	f := sampleFont()
	err := Apply(f, []string{"square", "nonexistent", "o"}, Params{Skew: 7}, nil)
	if !IsUnknownGlyph(err) {
		t.Fatalf("got %v, want UnknownGlyphError", err)
	}
	var unknown *UnknownGlyphError
	if errors.As(err, &unknown) && unknown.Name != "nonexistent" {
		t.Errorf("wrong glyph name %q", unknown.Name)
	}

	orig := sampleFont()
	for _, name := range []string{"square", "o"} {
		if d := cmp.Diff(orig.Glyph(name), f.Glyph(name)); d != "" {
			t.Errorf("%s modified (-want +got):\n%s", name, d)
		}
	}
}

// A composite must come out the same whether or not its base glyph is
// changed in the same call.
func TestApplyBaseAndComposite(t *testing.T) {
	p := Params{Skew: 7}

	alone := sampleFont()
	if err := Apply(alone, []string{"composite"}, p, nil); err != nil {
		t.Fatal(err)
	}
	batch := sampleFont()
	if err := Apply(batch, []string{"base", "composite"}, p, nil); err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(alone.Glyph("composite"), batch.Glyph("composite")); d != "" {
		t.Errorf("composite (-alone +batch):\n%s", d)
	}

	want := []vec.Vec2{
		{X: -3, Y: 0}, {X: 47, Y: 0}, {X: 53, Y: 50}, {X: 3, Y: 50},
		{X: 47, Y: 0}, {X: 97, Y: 0}, {X: 103, Y: 50}, {X: 53, Y: 50},
	}
	if d := cmp.Diff(want, batch.Glyph("composite").PointPositions()); d != "" {
		t.Errorf("composite (-want +got):\n%s", d)
	}
	wantBase := []vec.Vec2{{X: -3, Y: 0}, {X: 47, Y: 0}, {X: 53, Y: 50}, {X: 3, Y: 50}}
	if d := cmp.Diff(wantBase, batch.Glyph("base").PointPositions()); d != "" {
		t.Errorf("base (-want +got):\n%s", d)
	}
}

func TestExport(t *testing.T) {
	f := sampleFont()
	before := sampleFont()

	buf := &bytes.Buffer{}
	logger := log.New(buf)
	logger.SetLevel(log.DebugLevel)

	res, err := Export(context.Background(), f, 7, 0, &ExportOptions{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(f.Names(), res.Names()); d != "" {
		t.Errorf("glyph names (-want +got):\n%s", d)
	}
	if res.Info != f.Info || res.Features != f.Features {
		t.Error("font info not copied")
	}
	for _, name := range f.Names() {
		if d := cmp.Diff(before.Glyph(name), f.Glyph(name)); d != "" {
			t.Errorf("%s: source glyph modified (-want +got):\n%s", name, d)
		}
		if res.Glyph(name).Width != f.Glyph(name).Width {
			t.Errorf("%s: width changed", name)
		}
		if d := cmp.Diff(f.Glyph(name).Unicodes, res.Glyph(name).Unicodes); d != "" {
			t.Errorf("%s: unicodes changed", name)
		}
	}

	comp := res.Glyph("composite")
	if len(comp.Components) != 1 {
		t.Fatalf("%d components in exported composite", len(comp.Components))
	}
	if off := comp.Components[0].Offset(); off != (vec.Vec2{X: 50, Y: 0}) {
		t.Errorf("component offset %v, want (50, 0)", off)
	}

	if !bytes.Contains(buf.Bytes(), []byte("export complete")) {
		t.Errorf("missing log output:\n%s", buf.String())
	}
}

func TestExportDeterministic(t *testing.T) {
	f := sampleFont()
	res1, err := Export(context.Background(), f, 11, -4, &ExportOptions{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	res2, err := Export(context.Background(), f, 11, -4, &ExportOptions{Workers: 8})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range f.Names() {
		if d := cmp.Diff(res1.Glyph(name), res2.Glyph(name)); d != "" {
			t.Errorf("%s: results differ (-1 +8):\n%s", name, d)
		}
	}
}

func TestExportErrors(t *testing.T) {
	f := sampleFont()

	_, err := Export(context.Background(), f, math.NaN(), 0, nil)
	if !errors.Is(err, ErrInvalidAngle) {
		t.Errorf("got %v, want ErrInvalidAngle", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Export(ctx, f, 7, 0, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
