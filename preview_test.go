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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/slant/outline"
)

type recorder struct {
	calls  int
	glyph  *outline.Glyph
	points []vec.Vec2
}

func (r *recorder) update(g *outline.Glyph, points []vec.Vec2) {
	r.calls++
	r.glyph = g
	r.points = points
}

func TestPreview(t *testing.T) {
	f := sampleFont()
	rec := &recorder{}
	pv := NewPreview(DefaultParams(), rec.update)

	pv.SetGlyph(f, f.Glyph("square"))
	if rec.calls != 1 {
		t.Fatalf("%d updates, want 1", rec.calls)
	}
	want := []vec.Vec2{{X: -6, Y: 0}, {X: 94, Y: 0}, {X: 106, Y: 100}, {X: 6, Y: 100}}
	if d := cmp.Diff(want, rec.points); d != "" {
		t.Errorf("preview points (-want +got):\n%s", d)
	}

	// editing the glyph refreshes the preview
	f.Glyph("square").Contours[0].Points[1].X = 200
	pv.GlyphChanged()
	if rec.calls != 2 || rec.points[1].X != 194 {
		t.Errorf("preview not refreshed: %d calls, %v", rec.calls, rec.points)
	}

	pv.SetParams(Params{})
	if rec.calls != 3 {
		t.Errorf("%d updates, want 3", rec.calls)
	}
	if rec.glyph.Contours[0].Points[0].X != 0 {
		t.Errorf("identity preview moved points:\n%s", rec.glyph)
	}

	pv.SetGlyph(nil, nil)
	if rec.calls != 4 || rec.glyph != nil || rec.points != nil {
		t.Errorf("preview not cleared")
	}
	pv.GlyphChanged()
	if rec.calls != 5 {
		t.Errorf("%d updates, want 5", rec.calls)
	}
}

func TestPreviewSuspend(t *testing.T) {
	f := sampleFont()
	rec := &recorder{}
	pv := NewPreview(DefaultParams(), rec.update)
	pv.SetGlyph(f, f.Glyph("o"))

	pv.Suspend()
	pv.Suspend()
	pv.GlyphChanged()
	pv.Resume()
	if !pv.Suspended() {
		t.Error("nested suspend not honoured")
	}
	pv.GlyphChanged()
	pv.Resume()
	if pv.Suspended() {
		t.Error("still suspended")
	}
	if rec.calls != 1 {
		t.Errorf("%d updates while suspended", rec.calls-1)
	}
	pv.GlyphChanged()
	if rec.calls != 2 {
		t.Errorf("%d updates, want 2", rec.calls)
	}

	// extra calls to Resume are ignored
	pv.Resume()
	pv.Suspend()
	if !pv.Suspended() {
		t.Error("not suspended")
	}
}

func TestPreviewApply(t *testing.T) {
	f := sampleFont()
	rec := &recorder{}
	pv := NewPreview(Params{Skew: 7}, rec.update)
	pv.SetGlyph(f, f.Glyph("square"))

	h := &History{}
	if err := pv.Apply(f, []string{"square"}, h); err != nil {
		t.Fatal(err)
	}
	if pv.Suspended() {
		t.Error("preview still suspended")
	}
	if rec.calls != 2 {
		t.Errorf("%d updates, want 2", rec.calls)
	}
	// the preview now shows the applied glyph, skewed a second time
	if got := f.Glyph("square").Contours[0].Points[0].X; got != -6 {
		t.Errorf("glyph not changed, x = %g", got)
	}
	if rec.points[0].X >= -6 {
		t.Errorf("preview not refreshed: %v", rec.points)
	}
	if h.Len() != 1 {
		t.Errorf("%d undo steps", h.Len())
	}
}

func TestPreviewRender(t *testing.T) {
	f := sampleFont()
	pv := NewPreview(Params{Rotation: 90}, nil)
	pv.SetGlyph(f, f.Glyph("o"))
	if pv.Render(f, nil) != nil {
		t.Error("rendering nil glyph")
	}
	out := pv.Render(f, f.Glyph("square"))
	if len(out.Contours) != 1 {
		t.Errorf("unexpected result:\n%s", out)
	}
	if pv.Params().Rotation != 90 {
		t.Error("wrong parameters")
	}
}
