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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/slant/outline"
)

// UpdateFunc receives the result of a preview computation.  The points
// slice lists the positions of all points of out, for highlighting.
// Both arguments are nil if there is no current glyph.
type UpdateFunc func(out *outline.Glyph, points []vec.Vec2)

// Preview keeps a transformed copy of the glyph currently being edited
// up to date.
//
// The host application calls [Preview.SetParams] when the parameters
// change, [Preview.SetGlyph] when a different glyph becomes current, and
// [Preview.GlyphChanged] whenever the current glyph is edited.  Each of
// these recomputes the preview and passes the result to the update
// function.
//
// A Preview must only be used from a single goroutine.
type Preview struct {
	params Params
	update UpdateFunc

	layer outline.Layer
	glyph *outline.Glyph

	holds int
}

// NewPreview returns a new Preview without a current glyph.
// The update function may be nil.
func NewPreview(p Params, update UpdateFunc) *Preview {
	return &Preview{
		params: p,
		update: update,
	}
}

// Params returns the current parameters.
func (pv *Preview) Params() Params {
	return pv.params
}

// SetParams changes the parameters and refreshes the preview.
func (pv *Preview) SetParams(p Params) {
	pv.params = p
	pv.refresh()
}

// SetGlyph makes g the current glyph and refreshes the preview.
// Components of g are resolved using layer.  A nil glyph clears the
// preview.
func (pv *Preview) SetGlyph(layer outline.Layer, g *outline.Glyph) {
	pv.layer = layer
	pv.glyph = g
	pv.refresh()
}

// GlyphChanged must be called after the current glyph was modified.
// While updates are suspended, the call has no effect.
func (pv *Preview) GlyphChanged() {
	if pv.holds > 0 {
		return
	}
	pv.refresh()
}

// Suspend stops [Preview.GlyphChanged] from refreshing the preview, until
// a matching call to [Preview.Resume].  Calls can be nested.
func (pv *Preview) Suspend() {
	pv.holds++
}

// Resume undoes one call to [Preview.Suspend].
func (pv *Preview) Resume() {
	if pv.holds > 0 {
		pv.holds--
	}
}

// Suspended reports whether glyph change notifications are currently
// ignored.
func (pv *Preview) Suspended() bool {
	return pv.holds > 0
}

// Render returns a transformed copy of g, using the current parameters.
// This can be used to draw previews of glyphs other than the current one.
func (pv *Preview) Render(layer outline.Layer, g *outline.Glyph) *outline.Glyph {
	if g == nil {
		return nil
	}
	return Transform(layer, g, pv.params)
}

// Apply writes the transformed outlines into the named glyphs of f, see
// [Apply].  Glyph change notifications are suspended while the glyphs are
// modified, and the preview is refreshed once at the end.
func (pv *Preview) Apply(f *Font, names []string, undo UndoRecorder) error {
	pv.Suspend()
	err := Apply(f, names, pv.params, undo)
	pv.Resume()
	pv.refresh()
	return err
}

func (pv *Preview) refresh() {
	if pv.update == nil {
		return
	}
	if pv.glyph == nil {
		pv.update(nil, nil)
		return
	}
	out := Transform(pv.layer, pv.glyph, pv.params)
	pv.update(out, out.PointPositions())
}
